package oto

import (
	"github.com/xaionaro-go/creek/pkg/audio/registry"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

// Priority is above the PortAudio player: oto needs no native library.
const Priority = 50

func init() {
	registry.RegisterPlayerFactory(Priority, PlayerFactory{})
}

type PlayerFactory struct{}

func (PlayerFactory) NewPlayerPCM() (types.PlayerPCM, error) {
	return NewPlayerPCM(), nil
}
