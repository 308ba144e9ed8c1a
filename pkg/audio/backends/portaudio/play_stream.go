package portaudio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/gordonklaus/portaudio"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/creek/pkg/audio/types"
	"github.com/xaionaro-go/observability"
)

const playQueueBlocks = 4

// ErrClosedBeforeDrained is returned by Drain if the stream was closed before
// all the read samples were played.
var ErrClosedBeforeDrained = errors.New("the stream was closed before all the samples were played")

// PlayStream feeds the output callback from a reader goroutine; the callback
// itself never blocks and plays silence when no block is ready.
type PlayStream struct {
	PortAudioStream *portaudio.Stream
	Channels        int
	BlockFrames     int

	blocks    chan []int16
	pending   []int16
	readErr   error
	readDone  chan struct{}
	played    chan struct{}
	playedSet atomic.Bool
	underflow atomic.Uint64
	closed    chan struct{}
	closeOnce sync.Once
	cancelFn  context.CancelFunc
}

var _ types.PlayStream = (*PlayStream)(nil)

func newPlayStream(
	ctx context.Context,
	sampleRate int,
	channels int,
	blockFrames int,
	r io.Reader,
) (*PlayStream, error) {
	s := newPlayStreamState(channels, blockFrames)
	stream, err := portaudio.OpenDefaultStream(0, channels, float64(sampleRate), blockFrames, s.onBlock)
	if err != nil {
		return nil, err
	}
	s.PortAudioStream = stream

	s.startReader(ctx, r)

	if err := stream.Start(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("unable to start the stream: %w", err)
	}
	return s, nil
}

func newPlayStreamState(channels, blockFrames int) *PlayStream {
	return &PlayStream{
		Channels:    channels,
		BlockFrames: blockFrames,
		blocks:      make(chan []int16, playQueueBlocks),
		readDone:    make(chan struct{}),
		played:      make(chan struct{}),
		closed:      make(chan struct{}),
		cancelFn:    func() {},
	}
}

func (s *PlayStream) startReader(ctx context.Context, r io.Reader) {
	ctx, s.cancelFn = context.WithCancel(ctx)
	observability.Go(ctx, func() {
		s.readerLoop(ctx, r)
	})
}

func (s *PlayStream) readerLoop(ctx context.Context, r io.Reader) {
	logger.Debugf(ctx, "readerLoop")
	defer func() { logger.Debugf(ctx, "/readerLoop: %v", s.readErr) }()
	defer close(s.readDone)
	defer close(s.blocks)

	raw := make([]byte, 2*s.BlockFrames*s.Channels)
	for {
		n, err := io.ReadFull(r, raw)
		if n > 0 {
			block := make([]int16, n/2)
			for idx := range block {
				block[idx] = int16(binary.LittleEndian.Uint16(raw[2*idx:]))
			}
			select {
			case s.blocks <- block:
			case <-ctx.Done():
				return
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return
		default:
			s.readErr = fmt.Errorf("unable to read: %w", err)
			return
		}
	}
}

func (s *PlayStream) onBlock(out []int16) {
	for len(out) > 0 {
		if len(s.pending) == 0 {
			select {
			case block, ok := <-s.blocks:
				if !ok {
					clear(out)
					s.markPlayed()
					return
				}
				s.pending = block
			default:
				s.underflow.Add(1)
				clear(out)
				return
			}
		}
		n := copy(out, s.pending)
		out = out[n:]
		s.pending = s.pending[n:]
	}
}

func (s *PlayStream) markPlayed() {
	if s.playedSet.CompareAndSwap(false, true) {
		close(s.played)
	}
}

// Drain waits until all the read samples were handed to the device, or
// until the stream is closed.
func (s *PlayStream) Drain() error {
	<-s.played
	select {
	case <-s.readDone:
	case <-s.closed:
		select {
		case <-s.readDone:
		default:
			return ErrClosedBeforeDrained
		}
	}
	if n := s.underflow.Load(); n > 0 {
		logger.Default().Debugf("output underflows: %d", n)
	}
	return s.readErr
}

func (s *PlayStream) Close() error {
	var mErr *multierror.Error
	s.closeOnce.Do(func() {
		s.cancelFn()
		if s.PortAudioStream != nil {
			if err := s.PortAudioStream.Stop(); err != nil {
				mErr = multierror.Append(mErr, fmt.Errorf("unable to stop the stream: %w", err))
			}
			if err := s.PortAudioStream.Close(); err != nil {
				mErr = multierror.Append(mErr, fmt.Errorf("unable to close the stream: %w", err))
			}
		}
		// the callback will not be called anymore, so nothing else can release Drain
		close(s.closed)
		s.markPlayed()
	})
	return mErr.ErrorOrNil()
}
