package types

import (
	"context"
	"io"
)

// CaptureCallback is invoked by a driver each time a block of frames is ready.
//
// The samples are interleaved float32 values (frames*channels of them). The slice
// is owned by the driver and is reused right after the callback returns, so
// implementations must copy it if they need to keep it. The callback is executed
// on a realtime-sensitive thread and must never block.
type CaptureCallback func(
	samples []float32,
	frames int,
	info CallbackInfo,
	status StatusFlags,
)

type CapturerPCM interface {
	io.Closer
	Ping(context.Context) error
	OpenInputStream(
		ctx context.Context,
		sampleRate SampleRate,
		channels Channel,
		blockSize int,
		callback CaptureCallback,
	) (CaptureStream, error)
}

type CaptureStream interface {
	io.Closer
	Start() error
	Stop() error
}
