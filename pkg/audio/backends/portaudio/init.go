package portaudio

import (
	"github.com/xaionaro-go/creek/pkg/audio/registry"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

const (
	Priority = 60

	// PlayerPriority is below the oto backend's.
	PlayerPriority = 40
)

func init() {
	registry.RegisterCapturerFactory(Priority, CapturerPCMFactory{})
	registry.RegisterPlayerFactory(PlayerPriority, PlayerPCMFactory{})
}

type CapturerPCMFactory struct{}

func (CapturerPCMFactory) NewCapturerPCM() (types.CapturerPCM, error) {
	return NewCapturerPCM()
}

type PlayerPCMFactory struct{}

func (PlayerPCMFactory) NewPlayerPCM() (types.PlayerPCM, error) {
	return NewPlayerPCM()
}
