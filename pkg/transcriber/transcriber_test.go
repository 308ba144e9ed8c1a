package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/creek/pkg/wav"
)

func TestPlaceholderTranscribe(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "recording.wav")
	require.NoError(t, wav.WriteFile(path, make([]int16, 16000), 16000, 1))

	text, err := NewPlaceholder().Transcribe(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, PlaceholderText, text)
}

func TestPlaceholderTranscribeInvalid(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	_, err := NewPlaceholder().Transcribe(ctx, filepath.Join(dir, "missing.wav"))
	require.Error(t, err)

	garbage := filepath.Join(dir, "garbage.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("this is not a WAV file at all, really"), 0o644))
	_, err = NewPlaceholder().Transcribe(ctx, garbage)
	require.Error(t, err)
}
