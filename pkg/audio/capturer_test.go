package audio

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapturerPCMDummy(t *testing.T) {
	ctx := context.Background()

	t.Run("with_reason", func(t *testing.T) {
		reason := fmt.Errorf("no devices")
		c := NewCapturer(CapturerPCMDummy{Reason: reason})
		require.True(t, c.IsDummy())
		require.NoError(t, c.Ping(ctx))

		stream, err := c.OpenInputStream(ctx, 16000, 1, 1024, func([]float32, int, CallbackInfo, StatusFlags) {})
		require.Nil(t, stream)
		require.ErrorIs(t, err, reason)
	})

	t.Run("without_reason", func(t *testing.T) {
		c := NewCapturer(CapturerPCMDummy{})
		_, err := c.OpenInputStream(ctx, 16000, 1, 1024, nil)
		require.Error(t, err)
	})
}
