package pulseaudio

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

type CapturerPCM struct {
	PulseClient *pulse.Client
}

var _ types.CapturerPCM = (*CapturerPCM)(nil)

func NewCapturerPCM() (*CapturerPCM, error) {
	c, err := pulse.NewClient()
	if err != nil {
		return nil, fmt.Errorf("unable to open a client to Pulse: %w", err)
	}
	return &CapturerPCM{
		PulseClient: c,
	}, nil
}

func (c *CapturerPCM) Close() error {
	c.PulseClient.Close()
	return nil
}

func (c *CapturerPCM) Ping(ctx context.Context) error {
	source, err := c.PulseClient.DefaultSource()
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "default source: %#+v", source)
	return nil
}

func (c *CapturerPCM) OpenInputStream(
	ctx context.Context,
	sampleRate types.SampleRate,
	channels types.Channel,
	blockSize int,
	callback types.CaptureCallback,
) (_ types.CaptureStream, _err error) {
	logger.Debugf(ctx, "OpenInputStream: %d Hz, %d channels, %d frames per block", sampleRate, channels, blockSize)
	defer func() { logger.Debugf(ctx, "/OpenInputStream: %v", _err) }()

	if blockSize <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", blockSize)
	}

	var chanMap proto.ChannelMap
	switch channels {
	case 1:
		chanMap = proto.ChannelMap{proto.ChannelMono}
	case 2:
		chanMap = proto.ChannelMap{proto.ChannelLeft, proto.ChannelRight}
	default:
		return nil, fmt.Errorf("do not know how to configure %d channels", channels)
	}

	writer := newBlockWriter(int(channels), blockSize, callback)
	stream, err := c.PulseClient.NewRecord(
		writer,
		pulse.RecordSampleRate(int(sampleRate)),
		pulse.RecordChannels(chanMap),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize a record stream: %w", err)
	}

	return newCaptureStream(stream, writer), nil
}
