// Package recorder implements recording sessions on top of the capture
// pipeline: start, stop, record-for-a-duration, and saving the result as WAV.
package recorder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/creek/pkg/audio/types"
	"github.com/xaionaro-go/creek/pkg/capture"
	"github.com/xaionaro-go/creek/pkg/metrics"
	"github.com/xaionaro-go/creek/pkg/wav"
)

const (
	fileNamePrefix  = "recording_"
	fileNameLayout  = "20060102_150405"
	fileNameSuffix  = ".wav"
	maxNameAttempts = 1000
)

// Session is an active recording.
type Session struct {
	ID         uuid.UUID
	StartedAt  time.Time
	OutputPath string

	// Metadata is passed by the caller of Start and is never modified by
	// the recorder (for example, the speaker and the title of the recording).
	Metadata map[string]any

	stream   types.CaptureStream
	pipeline *capture.Pipeline
}

// Status is a snapshot of the recorder state.
type Status struct {
	Recording  bool
	SessionID  uuid.UUID
	StartedAt  time.Time
	Elapsed    time.Duration
	OutputPath string
	Metadata   map[string]any
}

// Recorder allows at most one active session at a time.
type Recorder struct {
	Capturer types.CapturerPCM
	Config   Config
	Metrics  *metrics.Metrics

	// operationLocker serializes Start and Stop; locker protects session.
	operationLocker sync.Mutex
	locker          sync.Mutex
	session         *Session

	now func() time.Time
}

func New(
	capturer types.CapturerPCM,
	cfg Config,
	m *metrics.Metrics,
) (*Recorder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recorder config: %w", err)
	}
	return &Recorder{
		Capturer: capturer,
		Config:   cfg,
		Metrics:  m,
		now:      time.Now,
	}, nil
}

func (r *Recorder) currentSession() *Session {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.session
}

func (r *Recorder) setSession(session *Session) {
	r.locker.Lock()
	defer r.locker.Unlock()
	r.session = session
}

func (r *Recorder) IsRecording() bool {
	return r.currentSession() != nil
}

func (r *Recorder) Status() Status {
	session := r.currentSession()
	if session == nil {
		return Status{}
	}
	return Status{
		Recording:  true,
		SessionID:  session.ID,
		StartedAt:  session.StartedAt,
		Elapsed:    session.pipeline.Elapsed(),
		OutputPath: session.OutputPath,
		Metadata:   session.Metadata,
	}
}

// Start opens the input stream and begins capturing. It returns the path the
// recording will be saved to by Stop; the file does not exist until then.
//
// The metadata is copied into the session (see Session.Metadata), it may be nil.
func (r *Recorder) Start(
	ctx context.Context,
	metadata map[string]any,
	onProgress capture.ProgressFunc,
) (_ string, _err error) {
	logger.Debugf(ctx, "Start")
	defer func() { logger.Debugf(ctx, "/Start: %v", _err) }()

	r.operationLocker.Lock()
	defer r.operationLocker.Unlock()

	if r.IsRecording() {
		return "", ErrAlreadyRecording
	}

	startedAt := r.now()
	outputPath, err := r.newOutputPath(startedAt)
	if err != nil {
		return "", fmt.Errorf("unable to prepare the output path: %w", err)
	}

	pipeline, err := capture.NewPipeline(r.Config.captureConfig(), onProgress, r.Metrics)
	if err != nil {
		return "", fmt.Errorf("unable to initialize the capture pipeline: %w", err)
	}

	stream, err := r.Capturer.OpenInputStream(
		ctx,
		r.Config.SampleRate,
		r.Config.Channels,
		r.Config.BlockSize,
		pipeline.OnAudioAvailable,
	)
	if err != nil {
		return "", &DeviceOpenError{Err: err}
	}

	if err := pipeline.Start(context.WithoutCancel(ctx)); err != nil {
		_ = stream.Close()
		return "", fmt.Errorf("unable to start the capture pipeline: %w", err)
	}

	if err := stream.Start(); err != nil {
		pipeline.Stop(ctx)
		if closeErr := stream.Close(); closeErr != nil {
			logger.Errorf(ctx, "unable to close the audio input stream: %v", closeErr)
		}
		return "", &DeviceOpenError{Err: fmt.Errorf("unable to start the stream: %w", err)}
	}

	session := &Session{
		ID:         uuid.New(),
		StartedAt:  startedAt,
		OutputPath: outputPath,
		Metadata:   copyMetadata(metadata),
		stream:     stream,
		pipeline:   pipeline,
	}
	r.setSession(session)
	r.Metrics.ObserveSessionStarted()
	logger.Infof(ctx, "recording session %s started: %d Hz, %d channels, %d frames per block; output: '%s'",
		session.ID, r.Config.SampleRate, r.Config.Channels, r.Config.BlockSize, outputPath)
	return outputPath, nil
}

// Stop ends the active session: it stops the input stream, waits until all the
// captured chunks are drained and writes them to the output path.
//
// If nothing was captured, no file is written and the returned path does not exist.
func (r *Recorder) Stop(
	ctx context.Context,
) (_ string, _err error) {
	logger.Debugf(ctx, "Stop")
	defer func() { logger.Debugf(ctx, "/Stop: %v", _err) }()

	r.operationLocker.Lock()
	defer r.operationLocker.Unlock()

	session := r.currentSession()
	if session == nil {
		return "", ErrNotRecording
	}
	defer func() {
		r.setSession(nil)
		r.Metrics.ObserveSessionStopped()
	}()

	var mErr *multierror.Error
	if err := session.stream.Stop(); err != nil {
		mErr = multierror.Append(mErr, fmt.Errorf("unable to stop the audio input stream: %w", err))
	}
	if err := session.stream.Close(); err != nil {
		mErr = multierror.Append(mErr, fmt.Errorf("unable to close the audio input stream: %w", err))
	}
	if err := mErr.ErrorOrNil(); err != nil {
		logger.Errorf(ctx, "%v", err)
	}

	frames := session.pipeline.Stop(ctx)
	if frames.IsEmpty() {
		logger.Warnf(ctx, "recording session %s captured no audio; '%s' is not written", session.ID, session.OutputPath)
		return session.OutputPath, nil
	}

	encodeStartedAt := time.Now()
	err := wav.WriteFloat32BlocksFile(
		session.OutputPath,
		frames.Blocks(),
		int(r.Config.SampleRate),
		int(r.Config.Channels),
	)
	if err != nil {
		return session.OutputPath, &EncodeError{Path: session.OutputPath, Err: err}
	}
	r.Metrics.ObserveRecordingSaved(time.Since(encodeStartedAt))

	logger.Infof(ctx, "recording session %s saved: %d frames (%v) to '%s'",
		session.ID, frames.TotalFrames(), session.pipeline.Elapsed(), session.OutputPath)
	return session.OutputPath, nil
}

// RecordFor records for the given duration (or Config.MaxDuration if it is
// not positive). Cancelling ctx ends the recording early; in all cases the
// session is stopped and the captured audio is saved.
func (r *Recorder) RecordFor(
	ctx context.Context,
	duration time.Duration,
	metadata map[string]any,
	onProgress capture.ProgressFunc,
) (outputPath string, _err error) {
	if duration <= 0 {
		duration = r.Config.MaxDuration
	}
	logger.Debugf(ctx, "RecordFor: %v", duration)
	defer func() { logger.Debugf(ctx, "/RecordFor: %v", _err) }()

	if _, err := r.Start(ctx, metadata, onProgress); err != nil {
		return "", err
	}
	defer func() {
		var err error
		outputPath, err = r.Stop(context.WithoutCancel(ctx))
		if _err == nil {
			_err = err
		}
	}()

	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		logger.Infof(ctx, "recording is interrupted: %v", ctx.Err())
	}
	return "", nil // the path is set by the deferred Stop
}

func copyMetadata(metadata map[string]any) map[string]any {
	if metadata == nil {
		return nil
	}
	result := make(map[string]any, len(metadata))
	for k, v := range metadata {
		result[k] = v
	}
	return result
}

func (r *Recorder) newOutputPath(t time.Time) (string, error) {
	dir := r.Config.OutputDirectory
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("unable to create directory '%s': %w", dir, err)
	}

	base := fileNamePrefix + t.Format(fileNameLayout)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := base
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d", base, attempt)
		}
		path := filepath.Join(dir, name+fileNameSuffix)
		_, err := os.Stat(path)
		switch {
		case os.IsNotExist(err):
			return path, nil
		case err != nil:
			return "", fmt.Errorf("unable to stat '%s': %w", path, err)
		}
	}
	return "", fmt.Errorf("unable to find a free file name for '%s' in '%s'", base, dir)
}
