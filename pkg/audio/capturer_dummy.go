package audio

import (
	"context"
	"fmt"
)

// CapturerPCMDummy is used when no capture backend is available. It refuses to
// open streams, so a session never silently records nothing.
type CapturerPCMDummy struct {
	Reason error
}

var _ CapturerPCM = CapturerPCMDummy{}

func (CapturerPCMDummy) Close() error {
	return nil
}

func (CapturerPCMDummy) Ping(context.Context) error {
	return nil
}

func (c CapturerPCMDummy) OpenInputStream(
	ctx context.Context,
	sampleRate SampleRate,
	channels Channel,
	blockSize int,
	callback CaptureCallback,
) (CaptureStream, error) {
	if c.Reason != nil {
		return nil, fmt.Errorf("no capture backend is available: %w", c.Reason)
	}
	return nil, fmt.Errorf("no capture backend is available")
}
