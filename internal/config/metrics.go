package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	pkgconfig "policyradar/internal/pkg/config"
)

// Metrics exposes Prometheus metrics for configuration loading and for
// run-level outcomes (source counts, article counts, run duration).
// Embeds the teacher's reusable ConfigMetrics for config-fallback tracking.
type Metrics struct {
	*pkgconfig.ConfigMetrics

	RunsTotal             *prometheus.CounterVec
	RunDurationSeconds    prometheus.Histogram
	SourcesProcessedTotal prometheus.Counter
	ArticlesStoredTotal   prometheus.Counter
	LastSuccessTimestamp  prometheus.Gauge
}

// NewMetrics creates a Metrics instance with all series registered via
// promauto.
func NewMetrics() *Metrics {
	return &Metrics{
		ConfigMetrics: pkgconfig.NewConfigMetrics("radar"),

		RunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "radar_runs_total",
			Help: "Total number of scrape runs by outcome (success/failure)",
		}, []string{"status"}),

		RunDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "radar_run_duration_seconds",
			Help:    "Duration of a complete scrape run",
			Buckets: []float64{5, 30, 60, 300, 600, 1200, 1800},
		}),

		SourcesProcessedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "radar_sources_processed_total",
			Help: "Total number of sources attempted across all runs",
		}),

		ArticlesStoredTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "radar_articles_stored_total",
			Help: "Total number of articles persisted across all runs",
		}),

		LastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "radar_last_success_timestamp",
			Help: "Unix timestamp of the last successful scrape run",
		}),
	}
}

func (m *Metrics) RecordRun(status string, seconds float64) {
	m.RunsTotal.WithLabelValues(status).Inc()
	m.RunDurationSeconds.Observe(seconds)
}

func (m *Metrics) RecordSourcesProcessed(n int) {
	m.SourcesProcessedTotal.Add(float64(n))
}

func (m *Metrics) RecordArticlesStored(n int) {
	m.ArticlesStoredTotal.Add(float64(n))
}

func (m *Metrics) RecordLastSuccess() {
	m.LastSuccessTimestamp.SetToCurrentTime()
}
