package audio

import (
	"context"
	"fmt"
	"io"
	"time"
)

// PlayerPCMDummy is used when no playback backend is available; like
// CapturerPCMDummy it fails instead of pretending to play.
type PlayerPCMDummy struct {
	Reason error
}

var _ PlayerPCM = PlayerPCMDummy{}

func (PlayerPCMDummy) Close() error {
	return nil
}

func (PlayerPCMDummy) Ping(context.Context) error {
	return nil
}

func (p PlayerPCMDummy) PlayPCM(
	ctx context.Context,
	sampleRate SampleRate,
	channels Channel,
	format PCMFormat,
	bufferSize time.Duration,
	reader io.Reader,
) (PlayStream, error) {
	if p.Reason != nil {
		return nil, fmt.Errorf("no playback backend is available: %w", p.Reason)
	}
	return nil, fmt.Errorf("no playback backend is available")
}
