package registry

import (
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

type PlayerPCMFactory interface {
	NewPlayerPCM() (types.PlayerPCM, error)
}

var playerFactories = newFactoryRegistry[PlayerPCMFactory]("PlayerPCM")

func RegisterPlayerFactory(
	priority int,
	playerPCMFactory PlayerPCMFactory,
) {
	playerFactories.register(priority, playerPCMFactory)
}

// PlayerFactories returns the registered factories, the highest priority first.
func PlayerFactories() []PlayerPCMFactory {
	return playerFactories.sorted()
}
