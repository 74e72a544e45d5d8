package config

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewConfigMetrics(t *testing.T) {
	m := NewConfigMetrics("test_registration")
	assert.NotNil(t, m.LoadTimestamp)
	assert.NotNil(t, m.ValidationErrorsTotal)
	assert.NotNil(t, m.FallbacksTotal)
	assert.NotNil(t, m.FallbackActive)
	assert.Equal(t, "test_registration", m.componentName)

	other := NewConfigMetrics("test_registration_other")
	assert.NotSame(t, m.LoadTimestamp, other.LoadTimestamp, "each component gets its own series")
}

func TestRecordLoadTimestamp(t *testing.T) {
	m := NewConfigMetrics("test_load_timestamp")
	m.RecordLoadTimestamp()
	assert.Greater(t, testutil.ToFloat64(m.LoadTimestamp), float64(0))
}

func TestRecordValidationError(t *testing.T) {
	m := NewConfigMetrics("test_validation_error")

	m.RecordValidationError("cron_schedule")
	m.RecordValidationError("cron_schedule")
	m.RecordValidationError("timezone")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ValidationErrorsTotal.WithLabelValues("cron_schedule")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ValidationErrorsTotal.WithLabelValues("timezone")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ValidationErrorsTotal.WithLabelValues("untouched")))
}

func TestRecordFallback(t *testing.T) {
	m := NewConfigMetrics("test_fallback")

	m.RecordFallback("timezone", "default")
	m.RecordFallback("timezone", "default")
	m.RecordFallback("timeout", "default")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.FallbacksTotal.WithLabelValues("timezone")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FallbacksTotal.WithLabelValues("timeout")))
}

func TestSetFallbackActive(t *testing.T) {
	m := NewConfigMetrics("test_fallback_active")

	m.SetFallbackActive("any", true)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FallbackActive))

	m.SetFallbackActive("any", false)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.FallbackActive))
}

// TestConcurrentRecording exercises the metrics from many goroutines at once;
// Prometheus client types are safe for concurrent use, so this should never
// race or under-count.
func TestConcurrentRecording(t *testing.T) {
	m := NewConfigMetrics("test_concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordLoadTimestamp()
			m.RecordValidationError("field")
			m.RecordFallback("field", "default")
			m.SetFallbackActive("field", true)
		}()
	}
	wg.Wait()

	assert.Equal(t, float64(20), testutil.ToFloat64(m.ValidationErrorsTotal.WithLabelValues("field")))
	assert.Equal(t, float64(20), testutil.ToFloat64(m.FallbacksTotal.WithLabelValues("field")))
}

// TestFullLoadCycle mirrors how internal/config.Load actually drives these
// metrics: a load timestamp, a couple of field-level fallbacks, and an
// aggregate fallback-active flag.
func TestFullLoadCycle(t *testing.T) {
	m := NewConfigMetrics("test_integration")

	m.RecordLoadTimestamp()
	m.RecordValidationError("cron_schedule")
	m.RecordFallback("cron_schedule", "default")
	m.RecordValidationError("timezone")
	m.RecordFallback("timezone", "default")
	m.SetFallbackActive("multiple", true)

	assert.Greater(t, testutil.ToFloat64(m.LoadTimestamp), float64(0))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ValidationErrorsTotal.WithLabelValues("cron_schedule")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FallbacksTotal.WithLabelValues("timezone")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FallbackActive))
}
