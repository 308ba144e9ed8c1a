package portaudio

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/gordonklaus/portaudio"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

type CapturerPCM struct{}

var _ types.CapturerPCM = (*CapturerPCM)(nil)

func NewCapturerPCM() (*CapturerPCM, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("unable to initialize PortAudio: %w", err)
	}
	return &CapturerPCM{}, nil
}

func (*CapturerPCM) Close() error {
	return portaudio.Terminate()
}

func (*CapturerPCM) Ping(
	ctx context.Context,
) error {
	info, err := portaudio.DefaultInputDevice()
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "device info: %#+v", info)

	if devices, err := portaudio.Devices(); err == nil {
		for idx, device := range devices {
			logger.Tracef(ctx, "devices[%d]: %#+v", idx, device)
		}
	}
	return nil
}

func (*CapturerPCM) OpenInputStream(
	ctx context.Context,
	sampleRate types.SampleRate,
	channels types.Channel,
	blockSize int,
	callback types.CaptureCallback,
) (types.CaptureStream, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", blockSize)
	}
	if channels == 0 {
		return nil, fmt.Errorf("at least one channel is required")
	}
	logger.Debugf(ctx, "OpenInputStream: %d Hz, %d channels, %d frames per block", sampleRate, channels, blockSize)
	return newCaptureStream(int(sampleRate), int(channels), blockSize, callback)
}
