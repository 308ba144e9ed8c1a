package registry

import (
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

type CapturerPCMFactory interface {
	NewCapturerPCM() (types.CapturerPCM, error)
}

var capturerFactories = newFactoryRegistry[CapturerPCMFactory]("CapturerPCM")

func RegisterCapturerFactory(
	priority int,
	capturerPCMFactory CapturerPCMFactory,
) {
	capturerFactories.register(priority, capturerPCMFactory)
}

// CapturerFactories returns the registered factories, the highest priority first.
func CapturerFactories() []CapturerPCMFactory {
	return capturerFactories.sorted()
}
