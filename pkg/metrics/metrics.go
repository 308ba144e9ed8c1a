// Package metrics contains the Prometheus instrumentation of the capture
// pipeline and of the recording sessions.
//
// All the methods are safe to call on a nil *Metrics, which disables the
// instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "creek"

type Metrics struct {
	ChunksCaptured         prometheus.Counter
	FramesCaptured         prometheus.Counter
	DriverStatusEvents     *prometheus.CounterVec
	QueueLength            prometheus.Gauge
	QueueHighWaterMarkHits prometheus.Counter
	ProgressCallbackPanics prometheus.Counter

	SessionsStarted prometheus.Counter
	RecordingsSaved prometheus.Counter
	RecordingActive prometheus.Gauge
	EncodeDuration  prometheus.Histogram
}

// New creates the metrics and registers them in the given registerer.
func New(registerer prometheus.Registerer) *Metrics {
	f := promauto.With(registerer)
	return &Metrics{
		ChunksCaptured: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_captured_total",
			Help:      "Total number of audio chunks drained from the capture queue",
		}),
		FramesCaptured: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_captured_total",
			Help:      "Total number of audio frames drained from the capture queue",
		}),
		DriverStatusEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "driver_status_events_total",
			Help:      "Overrun/underrun conditions reported by the audio driver",
		}, []string{"flag"}),
		QueueLength: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "capture_queue_length",
			Help:      "Number of chunks waiting in the capture queue",
		}),
		QueueHighWaterMarkHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capture_queue_high_water_mark_hits_total",
			Help:      "How many times the capture queue grew up to the high-water mark",
		}),
		ProgressCallbackPanics: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "progress_callback_panics_total",
			Help:      "Panics recovered from progress callbacks",
		}),
		SessionsStarted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Total number of started recording sessions",
		}),
		RecordingsSaved: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recordings_saved_total",
			Help:      "Total number of WAV files written",
		}),
		RecordingActive: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recording_active",
			Help:      "1 if a recording session is active",
		}),
		EncodeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "encode_duration_seconds",
			Help:      "Time spent converting and writing a recording to WAV",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) ObserveChunk(frames int, queueLength int) {
	if m == nil {
		return
	}
	m.ChunksCaptured.Inc()
	m.FramesCaptured.Add(float64(frames))
	m.QueueLength.Set(float64(queueLength))
}

func (m *Metrics) ObserveDriverStatus(flags []string) {
	if m == nil {
		return
	}
	for _, flag := range flags {
		m.DriverStatusEvents.WithLabelValues(flag).Inc()
	}
}

func (m *Metrics) ObserveHighWaterMark() {
	if m == nil {
		return
	}
	m.QueueHighWaterMarkHits.Inc()
}

func (m *Metrics) ObserveProgressCallbackPanic() {
	if m == nil {
		return
	}
	m.ProgressCallbackPanics.Inc()
}

func (m *Metrics) ObserveSessionStarted() {
	if m == nil {
		return
	}
	m.SessionsStarted.Inc()
	m.RecordingActive.Set(1)
}

func (m *Metrics) ObserveSessionStopped() {
	if m == nil {
		return
	}
	m.RecordingActive.Set(0)
	m.QueueLength.Set(0)
}

func (m *Metrics) ObserveRecordingSaved(encodeDuration time.Duration) {
	if m == nil {
		return
	}
	m.RecordingsSaved.Inc()
	m.EncodeDuration.Observe(encodeDuration.Seconds())
}
