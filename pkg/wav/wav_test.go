package wav

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat32ToPCM16(t *testing.T) {
	for name, tc := range map[string]struct {
		In  float32
		Out int16
	}{
		"zero":            {0, 0},
		"full_scale":      {1, 32767},
		"negative_scale":  {-1, -32767},
		"half":            {0.5, 16384},
		"rounding_down":   {1.0 / 32767 * 0.4, 0},
		"rounding_up":     {1.0 / 32767 * 0.6, 1},
		"clip_positive":   {1.5, math.MaxInt16},
		"clip_negative":   {-1.5, math.MinInt16},
		"clip_huge":       {1e9, math.MaxInt16},
		"nan":             {float32(math.NaN()), 0},
		"positive_inf":    {float32(math.Inf(1)), math.MaxInt16},
		"negative_inf":    {float32(math.Inf(-1)), math.MinInt16},
		"slightly_over_1": {1.00002, math.MaxInt16},
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.Out, Float32ToPCM16([]float32{tc.In})[0])
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for name, tc := range map[string]struct {
		SampleRate int
		Channels   int
	}{
		"mono_16k":   {16000, 1},
		"stereo_48k": {48000, 2},
	} {
		t.Run(name, func(t *testing.T) {
			const frames = 1000
			floats := make([]float32, frames*tc.Channels)
			for i := range floats {
				floats[i] = float32(math.Sin(float64(i) / 10))
			}
			samples := Float32ToPCM16(floats)

			path := filepath.Join(t.TempDir(), "out.wav")
			require.NoError(t, WriteFile(path, samples, tc.SampleRate, tc.Channels))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, int64(44+len(samples)*2), info.Size())

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "RIFF", string(raw[0:4]))
			assert.Equal(t, "WAVE", string(raw[8:12]))
			assert.Equal(t, uint16(tc.Channels), binary.LittleEndian.Uint16(raw[22:24]))
			assert.Equal(t, uint32(tc.SampleRate), binary.LittleEndian.Uint32(raw[24:28]))
			assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(raw[34:36]))
			assert.Equal(t, "data", string(raw[36:40]))
			assert.Equal(t, uint32(len(samples)*2), binary.LittleEndian.Uint32(raw[40:44]))

			a, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.SampleRate, a.SampleRate)
			assert.Equal(t, tc.Channels, a.Channels)
			assert.Equal(t, BitDepth, a.BitDepth)
			assert.Equal(t, frames, a.Frames())
			require.Equal(t, samples, a.Samples)

			for i, v := range a.Samples {
				assert.InDelta(t, float64(floats[i])*32767, float64(v), 0.5)
			}
		})
	}
}

func TestEncodeInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	require.Error(t, WriteFile(path, []int16{1, 2, 3}, 16000, 2))
	require.Error(t, WriteFile(path, []int16{1, 2}, 0, 1))
	require.Error(t, WriteFile(path, []int16{1, 2}, 16000, 0))
	require.Error(t, WriteFile(filepath.Join(t.TempDir(), "missing", "out.wav"), []int16{1}, 16000, 1))
}

func TestReadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a RIFF file, but long enough to be parsed"), 0o644))
	_, err := ReadFile(path)
	require.Error(t, err)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.wav"))
	require.Error(t, err)
}

func TestPCMS16LE(t *testing.T) {
	a := &Audio{Samples: []int16{1, -1, 0x1234}, SampleRate: 16000, Channels: 1, BitDepth: BitDepth}
	assert.Equal(t, []byte{0x01, 0x00, 0xff, 0xff, 0x34, 0x12}, a.PCMS16LE())
}

func TestWriteFloat32BlocksFile(t *testing.T) {
	const channels = 2
	blocks := [][]float32{
		{0.1, -0.1, 0.2, -0.2},
		{},
		{1.5, -1.5},
		{0.25, 0.5, 0.75, 1, -0.25, -0.5},
	}
	var flat []float32
	for _, block := range blocks {
		flat = append(flat, block...)
	}

	dir := t.TempDir()
	blocksPath := filepath.Join(dir, "blocks.wav")
	flatPath := filepath.Join(dir, "flat.wav")
	require.NoError(t, WriteFloat32BlocksFile(blocksPath, blocks, 16000, channels))
	require.NoError(t, WriteFile(flatPath, Float32ToPCM16(flat), 16000, channels))

	blocksRaw, err := os.ReadFile(blocksPath)
	require.NoError(t, err)
	flatRaw, err := os.ReadFile(flatPath)
	require.NoError(t, err)
	require.Equal(t, flatRaw, blocksRaw)

	a, err := ReadFile(blocksPath)
	require.NoError(t, err)
	assert.Equal(t, len(flat)/channels, a.Frames())
	assert.Equal(t, Float32ToPCM16(flat), a.Samples)
}

func TestWriteFloat32BlocksFileInvalidBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	err := WriteFloat32BlocksFile(path, [][]float32{{0.1, 0.2}, {0.3}}, 16000, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block #1")
}

func TestWriterEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := NewWriter(f, 16000, 1)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, raw, 44)
	assert.Equal(t, "data", string(raw[36:40]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(raw[40:44]))
}
