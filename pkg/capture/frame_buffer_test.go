package capture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameBuffer(t *testing.T) {
	var b FrameBuffer
	require.True(t, b.IsEmpty())

	b.Append(Chunk{Samples: []float32{1, 2, 3, 4}, Frames: 2})
	b.Append(Chunk{Samples: []float32{5, 6}, Frames: 1})
	require.Equal(t, 2, b.Len())
	require.Equal(t, 3, b.TotalFrames())
	require.Equal(t, []float32{1, 2, 3, 4, 5, 6}, b.Samples())
	require.Equal(t, [][]float32{{1, 2, 3, 4}, {5, 6}}, b.Blocks())

	b.Reset()
	require.True(t, b.IsEmpty())
	require.Zero(t, b.TotalFrames())
}
