package audio

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/creek/pkg/audio/registry"
)

type Capturer struct {
	CapturerPCM
}

var _ CapturerPCM = (*Capturer)(nil)

func NewCapturer(capturerPCM CapturerPCM) *Capturer {
	return &Capturer{
		CapturerPCM: capturerPCM,
	}
}

var lastSuccessfulCapturerFactory lastSuccessful[registry.CapturerPCMFactory]

// NewCapturerAuto tries the registered capture backends (the highest priority
// first) and returns the first one that could be initialized and pinged.
//
// If none works, the returned Capturer fails on OpenInputStream with the
// aggregated reasons.
func NewCapturerAuto(
	ctx context.Context,
) *Capturer {
	capturer, err := autoSelect(
		ctx,
		&lastSuccessfulCapturerFactory,
		registry.CapturerFactories(),
		func(factory registry.CapturerPCMFactory) (CapturerPCM, error) {
			return factory.NewCapturerPCM()
		},
	)
	if err != nil {
		logger.Infof(ctx, "was unable to initialize any PCM capturer: %v", err)
		return NewCapturer(CapturerPCMDummy{Reason: err})
	}
	return NewCapturer(capturer)
}

// IsDummy reports if no real capture backend is behind the Capturer.
func (c *Capturer) IsDummy() bool {
	_, ok := c.CapturerPCM.(CapturerPCMDummy)
	return ok
}
