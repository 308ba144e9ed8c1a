package audio

import (
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

type SampleRate = types.SampleRate
type Channel = types.Channel
type PCMFormat = types.PCMFormat
type StatusFlags = types.StatusFlags
type CallbackInfo = types.CallbackInfo
type CaptureCallback = types.CaptureCallback

type CapturerPCM = types.CapturerPCM
type CaptureStream = types.CaptureStream
type PlayerPCM = types.PlayerPCM
type Stream = types.Stream
type PlayStream = types.PlayStream

const (
	PCMFormatUndefined = types.PCMFormatUndefined
	PCMFormatU8        = types.PCMFormatU8
	PCMFormatS16LE     = types.PCMFormatS16LE
	PCMFormatFloat32LE = types.PCMFormatFloat32LE
	PCMFormatS32LE     = types.PCMFormatS32LE
	PCMFormatFloat64LE = types.PCMFormatFloat64LE
	PCMFormatS64LE     = types.PCMFormatS64LE
)
