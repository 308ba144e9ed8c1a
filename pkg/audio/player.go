package audio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/creek/pkg/audio/registry"
)

const BufferSize = 100 * time.Millisecond

type Player struct {
	PlayerPCM
}

var _ PlayerPCM = (*Player)(nil)

func NewPlayer(playerPCM PlayerPCM) *Player {
	return &Player{
		PlayerPCM: playerPCM,
	}
}

var lastSuccessfulPlayerFactory lastSuccessful[registry.PlayerPCMFactory]

// NewPlayerAuto is the playback counterpart of NewCapturerAuto.
func NewPlayerAuto(
	ctx context.Context,
) *Player {
	player, err := autoSelect(
		ctx,
		&lastSuccessfulPlayerFactory,
		registry.PlayerFactories(),
		func(factory registry.PlayerPCMFactory) (PlayerPCM, error) {
			return factory.NewPlayerPCM()
		},
	)
	if err != nil {
		logger.Infof(ctx, "was unable to initialize any PCM player: %v", err)
		return NewPlayer(PlayerPCMDummy{Reason: err})
	}
	return NewPlayer(player)
}

func (p *Player) IsDummy() bool {
	_, ok := p.PlayerPCM.(PlayerPCMDummy)
	return ok
}

// PlayPCMS16LE plays interleaved signed 16-bit little-endian samples, which is
// what the recordings are stored as.
func (p *Player) PlayPCMS16LE(
	ctx context.Context,
	sampleRate SampleRate,
	channels Channel,
	pcmReader io.Reader,
) (PlayStream, error) {
	stream, err := p.PlayerPCM.PlayPCM(
		ctx,
		sampleRate,
		channels,
		PCMFormatS16LE,
		BufferSize,
		pcmReader,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to playback as PCM: %w", err)
	}
	return stream, nil
}
