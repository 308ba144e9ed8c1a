package types

import (
	"fmt"
)

type SampleRate uint32

type Channel uint32

type PCMFormat uint

const (
	PCMFormatUndefined = PCMFormat(iota)
	PCMFormatU8
	PCMFormatS16LE
	PCMFormatFloat32LE
	PCMFormatS32LE
	PCMFormatFloat64LE
	PCMFormatS64LE
	EndOfPCMFormat
)

func (f PCMFormat) String() string {
	switch f {
	case PCMFormatUndefined:
		return "undefined"
	case PCMFormatU8:
		return "u8"
	case PCMFormatS16LE:
		return "s16le"
	case PCMFormatFloat32LE:
		return "f32le"
	case PCMFormatS32LE:
		return "s32le"
	case PCMFormatFloat64LE:
		return "f64le"
	case PCMFormatS64LE:
		return "s64le"
	default:
		return fmt.Sprintf("unknown_format_%d", uint(f))
	}
}

// Size returns the size of a single sample of a single channel in bytes.
func (f PCMFormat) Size() uint {
	switch f {
	case PCMFormatU8:
		return 1
	case PCMFormatS16LE:
		return 2
	case PCMFormatFloat32LE, PCMFormatS32LE:
		return 4
	case PCMFormatFloat64LE, PCMFormatS64LE:
		return 8
	default:
		return 0
	}
}
