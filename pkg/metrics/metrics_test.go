package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSessionStarted()
	require.Equal(t, 1.0, testutil.ToFloat64(m.RecordingActive))

	m.ObserveChunk(1024, 3)
	m.ObserveChunk(1024, 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChunksCaptured))
	assert.Equal(t, 2048.0, testutil.ToFloat64(m.FramesCaptured))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.QueueLength))

	m.ObserveDriverStatus([]string{"input_overflow", "input_underflow"})
	m.ObserveDriverStatus([]string{"input_overflow"})
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DriverStatusEvents.WithLabelValues("input_overflow")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DriverStatusEvents.WithLabelValues("input_underflow")))

	m.ObserveRecordingSaved(time.Millisecond)
	m.ObserveSessionStopped()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordingsSaved))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RecordingActive))
}

func TestMetricsNil(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveSessionStarted()
		m.ObserveChunk(1, 1)
		m.ObserveDriverStatus([]string{"input_overflow"})
		m.ObserveHighWaterMark()
		m.ObserveProgressCallbackPanic()
		m.ObserveRecordingSaved(time.Second)
		m.ObserveSessionStopped()
	})
}
