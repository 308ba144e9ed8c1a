package recorder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListRecordings(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	for name, age := range map[string]time.Duration{
		"recording_a.wav": 2 * time.Hour,
		"recording_b.wav": time.Hour,
		"recording_c.WAV": 3 * time.Hour,
		"notes.txt":       0,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
		require.NoError(t, os.Chtimes(path, now.Add(-age), now.Add(-age)))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.wav"), 0o755))

	recordings, err := ListRecordings(dir)
	require.NoError(t, err)
	require.Len(t, recordings, 3)

	var names []string
	for _, rec := range recordings {
		names = append(names, rec.Name)
		require.Equal(t, filepath.Join(dir, rec.Name), rec.Path)
		require.Equal(t, int64(len(rec.Name)), rec.Size)
	}
	require.Equal(t, []string{"recording_b.wav", "recording_a.wav", "recording_c.WAV"}, names)
}

func TestListRecordingsMissingDir(t *testing.T) {
	recordings, err := ListRecordings(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	require.Empty(t, recordings)
}
