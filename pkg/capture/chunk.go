package capture

import (
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

// Chunk is a block of interleaved float32 samples delivered by the driver.
// It owns its Samples (they are copied out of the driver buffer).
type Chunk struct {
	Samples []float32
	Frames  int
	Info    types.CallbackInfo
	Status  types.StatusFlags
}

func newChunk(
	samples []float32,
	frames int,
	info types.CallbackInfo,
	status types.StatusFlags,
) Chunk {
	c := Chunk{
		Samples: make([]float32, len(samples)),
		Frames:  frames,
		Info:    info,
		Status:  status,
	}
	copy(c.Samples, samples)
	return c
}
