package wav

import (
	"math"
)

// Float32ToPCM16 converts [-1; 1] float samples to signed 16-bit ones,
// rounding to the nearest value and clipping the out-of-range samples.
func Float32ToPCM16(samples []float32) []int16 {
	result := make([]int16, len(samples))
	for idx, sample := range samples {
		result[idx] = float32ToPCM16(sample)
	}
	return result
}

func float32ToPCM16(sample float32) int16 {
	if sample != sample { // NaN
		return 0
	}
	v := math.Round(float64(sample) * math.MaxInt16)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
