package recorder

import (
	"context"
	"sync"
	"time"

	"github.com/xaionaro-go/creek/pkg/audio/types"
)

type fakeStream struct {
	locker    sync.Mutex
	callback  types.CaptureCallback
	blockSize int
	buf       []float32
	started   bool
	stopped   bool
	closed    bool
	startErr  error

	autoDriveInterval time.Duration
	autoDriveValue    float32
}

var _ types.CaptureStream = (*fakeStream)(nil)

func (s *fakeStream) Start() error {
	s.locker.Lock()
	defer s.locker.Unlock()
	if s.startErr != nil {
		return s.startErr
	}
	s.started = true
	if s.autoDriveInterval > 0 {
		go s.autoDrive()
	}
	return nil
}

func (s *fakeStream) autoDrive() {
	t := time.NewTicker(s.autoDriveInterval)
	defer t.Stop()
	for range t.C {
		if !s.deliver(s.autoDriveValue) {
			return
		}
	}
}

func (s *fakeStream) Stop() error {
	s.locker.Lock()
	defer s.locker.Unlock()
	s.stopped = true
	return nil
}

func (s *fakeStream) Close() error {
	s.locker.Lock()
	defer s.locker.Unlock()
	s.closed = true
	return nil
}

func (s *fakeStream) isClosed() bool {
	s.locker.Lock()
	defer s.locker.Unlock()
	return s.closed
}

// deliver imitates a driver callback; like a real driver it reuses one buffer.
func (s *fakeStream) deliver(value float32) bool {
	s.locker.Lock()
	defer s.locker.Unlock()
	if !s.started || s.stopped {
		return false
	}
	for i := range s.buf {
		s.buf[i] = value
	}
	s.callback(s.buf, s.blockSize, types.CallbackInfo{}, 0)
	return true
}

type fakeCapturer struct {
	locker            sync.Mutex
	openErr           error
	startErr          error
	autoDriveInterval time.Duration
	streams           []*fakeStream
}

var _ types.CapturerPCM = (*fakeCapturer)(nil)

func (c *fakeCapturer) Close() error {
	return nil
}

func (c *fakeCapturer) Ping(context.Context) error {
	return nil
}

func (c *fakeCapturer) OpenInputStream(
	ctx context.Context,
	sampleRate types.SampleRate,
	channels types.Channel,
	blockSize int,
	callback types.CaptureCallback,
) (types.CaptureStream, error) {
	c.locker.Lock()
	defer c.locker.Unlock()
	if c.openErr != nil {
		return nil, c.openErr
	}
	s := &fakeStream{
		callback:          callback,
		blockSize:         blockSize,
		buf:               make([]float32, blockSize*int(channels)),
		startErr:          c.startErr,
		autoDriveInterval: c.autoDriveInterval,
		autoDriveValue:    0.5,
	}
	c.streams = append(c.streams, s)
	return s, nil
}

func (c *fakeCapturer) lastStream() *fakeStream {
	c.locker.Lock()
	defer c.locker.Unlock()
	if len(c.streams) == 0 {
		return nil
	}
	return c.streams[len(c.streams)-1]
}
