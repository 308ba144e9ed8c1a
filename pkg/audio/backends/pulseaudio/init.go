package pulseaudio

import (
	"github.com/xaionaro-go/creek/pkg/audio/registry"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

const (
	Priority = 100
)

func init() {
	registry.RegisterCapturerFactory(Priority, CapturerPCMPulseFactory{})
}

type CapturerPCMPulseFactory struct{}

func (CapturerPCMPulseFactory) NewCapturerPCM() (types.CapturerPCM, error) {
	return NewCapturerPCM()
}
