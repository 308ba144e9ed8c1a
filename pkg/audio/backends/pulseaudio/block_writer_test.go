package pulseaudio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

func float32le(values ...float32) []byte {
	b := make([]byte, 0, len(values)*float32Size)
	for _, v := range values {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

func TestBlockWriter(t *testing.T) {
	var (
		blocks [][]float32
		frames []int
	)
	w := newBlockWriter(2, 2, func(samples []float32, frameCount int, _ types.CallbackInfo, _ types.StatusFlags) {
		blocks = append(blocks, append([]float32(nil), samples...))
		frames = append(frames, frameCount)
	})

	data := float32le(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7)

	// split in the middle of a sample on purpose
	n, err := w.Write(data[:5])
	require.NoError(t, err)
	require.Equal(t, 5, n)
	n, err = w.Write(data[5:])
	require.NoError(t, err)
	require.Equal(t, len(data)-5, n)

	require.Equal(t, [][]float32{{0.1, 0.2, 0.3, 0.4}}, blocks)
	require.Equal(t, []int{2}, frames)

	w.Flush()
	require.Equal(t, [][]float32{{0.1, 0.2, 0.3, 0.4}, {0.5, 0.6}}, blocks, "the half frame (0.7) is dropped")
	require.Equal(t, []int{2, 1}, frames)
}

func TestBlockWriterDropsWritesAfterFlush(t *testing.T) {
	var blocks [][]float32
	w := newBlockWriter(1, 4, func(samples []float32, frameCount int, _ types.CallbackInfo, _ types.StatusFlags) {
		blocks = append(blocks, append([]float32(nil), samples...))
	})

	_, err := w.Write(float32le(0.1, 0.2))
	require.NoError(t, err)
	require.Empty(t, blocks)

	w.Flush()
	require.Equal(t, [][]float32{{0.1, 0.2}}, blocks)

	data := float32le(0.3, 0.4, 0.5, 0.6, 0.7)
	n, err := w.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	w.Flush()
	require.Equal(t, [][]float32{{0.1, 0.2}}, blocks, "nothing is delivered after the flush")
}
