package oto

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

type contextParams struct {
	SampleRate types.SampleRate
	Channels   types.Channel
	Format     types.PCMFormat
}

// oto allows only one context per process, so the first playback decides
// the output parameters for all the following ones.
var (
	otoCtxLocker sync.Mutex
	otoCtx       *oto.Context
	otoCtxParams contextParams
)

func otoFormat(format types.PCMFormat) (oto.Format, error) {
	switch format {
	case types.PCMFormatU8:
		return oto.FormatUnsignedInt8, nil
	case types.PCMFormatS16LE:
		return oto.FormatSignedInt16LE, nil
	case types.PCMFormatFloat32LE:
		return oto.FormatFloat32LE, nil
	default:
		return 0, fmt.Errorf("PCM format %s is not supported by oto", format)
	}
}

func currentOtoContext() *oto.Context {
	otoCtxLocker.Lock()
	defer otoCtxLocker.Unlock()
	return otoCtx
}

func getOtoContext(params contextParams) (*oto.Context, error) {
	otoCtxLocker.Lock()
	defer otoCtxLocker.Unlock()

	if otoCtx != nil {
		if params != otoCtxParams {
			return nil, fmt.Errorf("the output is already initialized with %#+v, cannot switch to %#+v", otoCtxParams, params)
		}
		return otoCtx, nil
	}

	format, err := otoFormat(params.Format)
	if err != nil {
		return nil, err
	}

	c, readyChan, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(params.SampleRate),
		ChannelCount: int(params.Channels),
		Format:       format,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to initialize an oto context: %w", err)
	}
	<-readyChan

	otoCtx, otoCtxParams = c, params
	return otoCtx, nil
}
