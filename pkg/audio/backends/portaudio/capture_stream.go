package portaudio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

type CaptureStream struct {
	PortAudioStream *portaudio.Stream
	Channels        int
	Callback        types.CaptureCallback
}

var _ types.CaptureStream = (*CaptureStream)(nil)

func newCaptureStream(
	sampleRate int,
	channels int,
	blockSize int,
	callback types.CaptureCallback,
) (*CaptureStream, error) {
	s := &CaptureStream{
		Channels: channels,
		Callback: callback,
	}
	stream, err := portaudio.OpenDefaultStream(channels, 0, float64(sampleRate), blockSize, s.onBlock)
	if err != nil {
		return nil, fmt.Errorf("unable to open the default input stream: %w", err)
	}
	s.PortAudioStream = stream
	return s, nil
}

// onBlock is executed by PortAudio on its realtime thread.
func (s *CaptureStream) onBlock(
	in []float32,
	timeInfo portaudio.StreamCallbackTimeInfo,
	flags portaudio.StreamCallbackFlags,
) {
	s.Callback(
		in,
		len(in)/s.Channels,
		types.CallbackInfo{
			InputBufferADCTime: timeInfo.InputBufferAdcTime,
			CurrentTime:        timeInfo.CurrentTime,
		},
		statusFlags(flags),
	)
}

func statusFlags(flags portaudio.StreamCallbackFlags) types.StatusFlags {
	var result types.StatusFlags
	if flags&portaudio.InputUnderflow != 0 {
		result |= types.StatusInputUnderflow
	}
	if flags&portaudio.InputOverflow != 0 {
		result |= types.StatusInputOverflow
	}
	if flags&portaudio.OutputUnderflow != 0 {
		result |= types.StatusOutputUnderflow
	}
	if flags&portaudio.OutputOverflow != 0 {
		result |= types.StatusOutputOverflow
	}
	if flags&portaudio.PrimingOutput != 0 {
		result |= types.StatusPrimingOutput
	}
	return result
}

func (s *CaptureStream) Start() error {
	return s.PortAudioStream.Start()
}

// Stop waits until the pending blocks are delivered; no callbacks happen after it returns.
func (s *CaptureStream) Stop() error {
	return s.PortAudioStream.Stop()
}

func (s *CaptureStream) Close() error {
	return s.PortAudioStream.Close()
}
