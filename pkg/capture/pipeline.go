package capture

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/creek/pkg/audio/types"
	"github.com/xaionaro-go/creek/pkg/metrics"
	"github.com/xaionaro-go/observability"
)

const (
	DefaultPollInterval = 500 * time.Millisecond
)

// ProgressFunc is called from the drain goroutine once per drained chunk.
// It must return quickly: draining is paused while it runs.
type ProgressFunc func(elapsed time.Duration, frames int)

type Config struct {
	SampleRate types.SampleRate
	Channels   types.Channel
	BlockSize  int

	// PollInterval bounds how long the drain goroutine waits for a chunk
	// before re-checking if the session is still active.
	PollInterval time.Duration

	// HighWaterMark is the queue length at which a warning is logged;
	// zero disables the warning. The producer is never throttled.
	HighWaterMark int
}

func (cfg Config) Validate() error {
	if cfg.SampleRate == 0 {
		return fmt.Errorf("sample rate must be positive")
	}
	if cfg.Channels == 0 {
		return fmt.Errorf("at least one channel is required")
	}
	if cfg.BlockSize <= 0 {
		return fmt.Errorf("block size must be positive, got %d", cfg.BlockSize)
	}
	if cfg.HighWaterMark < 0 {
		return fmt.Errorf("high-water mark must not be negative, got %d", cfg.HighWaterMark)
	}
	return nil
}

type Pipeline struct {
	Config  Config
	Queue   *ChunkQueue
	Metrics *metrics.Metrics

	onProgress     ProgressFunc
	frames         FrameBuffer
	recording      atomic.Bool
	drainedChunks  atomic.Int64
	started        atomic.Bool
	doneCh         chan struct{}
	aboveHighWater bool
}

func NewPipeline(
	cfg Config,
	onProgress ProgressFunc,
	m *metrics.Metrics,
) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid capture config: %w", err)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	return &Pipeline{
		Config:     cfg,
		Queue:      NewChunkQueue(),
		Metrics:    m,
		onProgress: onProgress,
		doneCh:     make(chan struct{}),
	}, nil
}

// OnAudioAvailable is the driver callback: it copies the block and enqueues it.
// It never blocks on the consumer.
func (p *Pipeline) OnAudioAvailable(
	samples []float32,
	frames int,
	info types.CallbackInfo,
	status types.StatusFlags,
) {
	p.Queue.Push(newChunk(samples, frames, info, status))
}

// Start launches the drain goroutine.
func (p *Pipeline) Start(ctx context.Context) error {
	if !p.started.CompareAndSwap(false, true) {
		return fmt.Errorf("the pipeline is already started")
	}
	p.recording.Store(true)
	observability.Go(ctx, func() {
		defer close(p.doneCh)
		p.drainLoop(ctx)
	})
	return nil
}

// Stop signals the end of the session and waits until every chunk that was
// pushed before the call is drained. The driver must be stopped before
// calling it, otherwise late chunks may be left in the queue.
func (p *Pipeline) Stop(ctx context.Context) *FrameBuffer {
	logger.Debugf(ctx, "Stop")
	defer logger.Debugf(ctx, "/Stop")

	if !p.started.Load() {
		return &p.frames
	}
	p.recording.Store(false)
	p.Queue.Wake()
	<-p.doneCh
	return &p.frames
}

func (p *Pipeline) IsRecording() bool {
	return p.recording.Load()
}

// Elapsed returns the duration of the audio drained so far.
func (p *Pipeline) Elapsed() time.Duration {
	return p.elapsed(p.drainedChunks.Load())
}

func (p *Pipeline) elapsed(chunks int64) time.Duration {
	frames := chunks * int64(p.Config.BlockSize)
	return time.Duration(frames) * time.Second / time.Duration(p.Config.SampleRate)
}

func (p *Pipeline) drainLoop(ctx context.Context) {
	logger.Debugf(ctx, "drainLoop")
	defer func() { logger.Debugf(ctx, "/drainLoop: %d chunks", p.frames.Len()) }()

	for {
		chunk, ok := p.Queue.Pop(p.Config.PollInterval)
		if !ok {
			if !p.recording.Load() && p.Queue.Len() == 0 {
				return
			}
			continue
		}
		p.handleChunk(ctx, chunk)
	}
}

func (p *Pipeline) handleChunk(ctx context.Context, chunk Chunk) {
	p.frames.Append(chunk)
	drained := p.drainedChunks.Add(1)
	queueLength := p.Queue.Len()
	p.Metrics.ObserveChunk(chunk.Frames, queueLength)

	if chunk.Status != 0 {
		logger.Warnf(ctx, "audio driver reported: %s", chunk.Status)
		p.Metrics.ObserveDriverStatus(chunk.Status.Names())
	}
	p.checkHighWaterMark(ctx, queueLength)
	p.notifyProgress(ctx, p.elapsed(drained), chunk.Frames)
}

func (p *Pipeline) checkHighWaterMark(ctx context.Context, queueLength int) {
	if p.Config.HighWaterMark <= 0 {
		return
	}
	switch {
	case queueLength >= p.Config.HighWaterMark && !p.aboveHighWater:
		p.aboveHighWater = true
		p.Metrics.ObserveHighWaterMark()
		logger.Warnf(ctx, "the capture queue is growing: %d chunks are waiting (high-water mark: %d)", queueLength, p.Config.HighWaterMark)
	case queueLength < p.Config.HighWaterMark && p.aboveHighWater:
		p.aboveHighWater = false
		logger.Infof(ctx, "the capture queue is back below the high-water mark: %d chunks are waiting", queueLength)
	}
}

func (p *Pipeline) notifyProgress(ctx context.Context, elapsed time.Duration, frames int) {
	if p.onProgress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.Metrics.ObserveProgressCallbackPanic()
			logger.Errorf(ctx, "the progress callback panicked: %v\n%s", r, debug.Stack())
		}
	}()
	p.onProgress(elapsed, frames)
}
