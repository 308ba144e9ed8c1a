package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

type lowPriorityCapturerFactory struct{}

func (lowPriorityCapturerFactory) NewCapturerPCM() (types.CapturerPCM, error) {
	return nil, nil
}

type highPriorityCapturerFactory struct{}

func (*highPriorityCapturerFactory) NewCapturerPCM() (types.CapturerPCM, error) {
	return nil, nil
}

func TestCapturerFactories(t *testing.T) {
	RegisterCapturerFactory(-100, lowPriorityCapturerFactory{})
	RegisterCapturerFactory(100, &highPriorityCapturerFactory{})

	factories := CapturerFactories()
	require.GreaterOrEqual(t, len(factories), 2)
	require.IsType(t, &highPriorityCapturerFactory{}, factories[0])
	require.IsType(t, lowPriorityCapturerFactory{}, factories[len(factories)-1])

	require.Panics(t, func() {
		RegisterCapturerFactory(0, &highPriorityCapturerFactory{})
	})
}

type playerFactoryA struct{}

func (playerFactoryA) NewPlayerPCM() (types.PlayerPCM, error) {
	return nil, nil
}

type playerFactoryB struct{}

func (playerFactoryB) NewPlayerPCM() (types.PlayerPCM, error) {
	return nil, nil
}

func TestPlayerFactoriesTieOrder(t *testing.T) {
	r := newFactoryRegistry[PlayerPCMFactory]("PlayerPCM")
	r.register(1, playerFactoryB{})
	r.register(1, playerFactoryA{})

	factories := r.sorted()
	require.Len(t, factories, 2)
	require.IsType(t, playerFactoryA{}, factories[0])
	require.IsType(t, playerFactoryB{}, factories[1])

	require.Panics(t, func() {
		r.register(2, &playerFactoryB{})
	})
}
