// Package transcriber converts recorded WAV files to text.
package transcriber

import (
	"context"
	"fmt"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/creek/pkg/wav"
)

type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

const PlaceholderText = "This is a placeholder for the transcribed text."

// Placeholder validates the recording and returns PlaceholderText.
type Placeholder struct {
	Text string
}

var _ Transcriber = (*Placeholder)(nil)

func NewPlaceholder() *Placeholder {
	return &Placeholder{Text: PlaceholderText}
}

func (t *Placeholder) Transcribe(ctx context.Context, path string) (_ret string, _err error) {
	logger.Debugf(ctx, "Transcribe(ctx, '%s')", path)
	defer func() { logger.Debugf(ctx, "/Transcribe(ctx, '%s'): %v", path, _err) }()

	recording, err := wav.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read the recording '%s': %w", path, err)
	}
	if recording.SampleRate <= 0 {
		return "", fmt.Errorf("the recording '%s' has an invalid sample rate: %d", path, recording.SampleRate)
	}
	duration := time.Duration(recording.Frames()) * time.Second / time.Duration(recording.SampleRate)
	logger.Infof(ctx, "transcribing '%s': %d Hz, %d channel(s), %v", path, recording.SampleRate, recording.Channels, duration)
	return t.Text, nil
}
