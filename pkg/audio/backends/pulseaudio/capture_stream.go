package pulseaudio

import (
	"fmt"

	"github.com/jfreymuth/pulse"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

type CaptureStream struct {
	*pulse.RecordStream
	writer *blockWriter
}

var _ types.CaptureStream = (*CaptureStream)(nil)

func newCaptureStream(
	pulseStream *pulse.RecordStream,
	writer *blockWriter,
) *CaptureStream {
	return &CaptureStream{
		RecordStream: pulseStream,
		writer:       writer,
	}
}

func (stream *CaptureStream) Start() error {
	stream.RecordStream.Start()
	if err := stream.RecordStream.Error(); err != nil {
		return fmt.Errorf("unable to start recording: %w", err)
	}
	return nil
}

func (stream *CaptureStream) Stop() error {
	stream.RecordStream.Stop()
	if err := stream.RecordStream.Error(); err != nil {
		return fmt.Errorf("an error occurred during recording: %w", err)
	}
	return nil
}

// Close closes the Pulse stream and only then delivers the trailing
// incomplete block, so fragments received after Stop are not lost.
func (stream *CaptureStream) Close() (err error) {
	defer stream.writer.Flush()
	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("got a panic: %v", r)
		}
	}()
	stream.RecordStream.Close()
	return
}
