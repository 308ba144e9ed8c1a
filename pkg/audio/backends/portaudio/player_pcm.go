package portaudio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/gordonklaus/portaudio"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

// PlayerPCM plays signed 16-bit PCM through the default output device.
type PlayerPCM struct{}

var _ types.PlayerPCM = (*PlayerPCM)(nil)

func NewPlayerPCM() (*PlayerPCM, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("unable to initialize PortAudio: %w", err)
	}
	return &PlayerPCM{}, nil
}

func (*PlayerPCM) Close() error {
	return portaudio.Terminate()
}

func (*PlayerPCM) Ping(
	ctx context.Context,
) error {
	info, err := portaudio.DefaultOutputDevice()
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "device info: %#+v", info)
	return nil
}

func (*PlayerPCM) PlayPCM(
	ctx context.Context,
	sampleRate types.SampleRate,
	channels types.Channel,
	format types.PCMFormat,
	bufferSize time.Duration,
	rawReader io.Reader,
) (_ types.PlayStream, _err error) {
	logger.Debugf(ctx, "PlayPCM: %d Hz, %d channels, %s, %v", sampleRate, channels, format, bufferSize)
	defer func() { logger.Debugf(ctx, "/PlayPCM: %v", _err) }()

	if format != types.PCMFormatS16LE {
		return nil, fmt.Errorf("PCM format %s is not supported, only %s is", format, types.PCMFormatS16LE)
	}
	if channels == 0 {
		return nil, fmt.Errorf("at least one channel is required")
	}
	blockFrames := int(bufferSize.Seconds() * float64(sampleRate))
	if blockFrames <= 0 {
		return nil, fmt.Errorf("buffer size %v is too small for %d Hz", bufferSize, sampleRate)
	}

	s, err := newPlayStream(ctx, int(sampleRate), int(channels), blockFrames, rawReader)
	if err != nil {
		return nil, fmt.Errorf("unable to open the output stream: %w", err)
	}
	return s, nil
}
