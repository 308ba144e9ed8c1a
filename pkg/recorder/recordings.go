package recorder

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type RecordingInfo struct {
	Name       string
	Path       string
	Size       int64
	ModifiedAt time.Time
}

// ListRecordings returns the WAV files in dir, the most recently modified first.
// A missing directory is not an error.
func ListRecordings(dir string) ([]RecordingInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to read directory '%s': %w", dir, err)
	}

	var result []RecordingInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), fileNameSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("unable to stat '%s': %w", entry.Name(), err)
		}
		result = append(result, RecordingInfo{
			Name:       entry.Name(),
			Path:       filepath.Join(dir, entry.Name()),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ModifiedAt.After(result[j].ModifiedAt)
	})
	return result, nil
}
