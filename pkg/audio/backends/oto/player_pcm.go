package oto

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

// PlayerPCM plays through the process-wide oto context; bufferSize is
// ignored as oto manages its own buffering.
type PlayerPCM struct{}

var _ types.PlayerPCM = (*PlayerPCM)(nil)

func NewPlayerPCM() *PlayerPCM {
	return &PlayerPCM{}
}

func (*PlayerPCM) Close() error {
	return nil
}

// Ping reports the error of the output context if it was already created.
// Before the first playback there is nothing to check.
func (*PlayerPCM) Ping(ctx context.Context) error {
	c := currentOtoContext()
	if c == nil {
		logger.Tracef(ctx, "the oto context is not created yet")
		return nil
	}
	return c.Err()
}

func (*PlayerPCM) PlayPCM(
	ctx context.Context,
	sampleRate types.SampleRate,
	channels types.Channel,
	format types.PCMFormat,
	bufferSize time.Duration,
	reader io.Reader,
) (_ types.PlayStream, _err error) {
	logger.Debugf(ctx, "PlayPCM: %d Hz, %d channels, %s", sampleRate, channels, format)
	defer func() { logger.Debugf(ctx, "/PlayPCM: %v", _err) }()

	c, err := getOtoContext(contextParams{
		SampleRate: sampleRate,
		Channels:   channels,
		Format:     format,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get the output context: %w", err)
	}

	s := newStream(c.NewPlayer(reader))
	s.Player.Play()
	return s, nil
}
