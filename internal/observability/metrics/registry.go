// Package metrics provides centralized Prometheus metrics for the scrape
// pipeline (C1-C13). Every stage records its own series here rather than
// maintaining private counters, so a single /metrics endpoint reflects the
// whole run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Source/run metrics (C1, C4) track how many sources were attempted and
// how the scheduler's per-source fetches resolved.
var (
	SourcesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "radar_sources_total",
			Help: "Number of active sources attempted in the latest run",
		},
	)

	SourceFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radar_source_fetches_total",
			Help: "Total number of per-source fetch attempts by outcome (success/failure/skipped)",
		},
		[]string{"source", "outcome"},
	)

	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "radar_source_fetch_duration_seconds",
			Help:    "Time taken to fetch and parse a single source",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"source"},
	)
)

// Content extraction metrics (C2, C5).
var (
	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radar_content_fetch_attempts_total",
			Help: "Total number of article content fetch attempts by result",
		},
		[]string{"result"}, // success, failure, skipped
	)

	ContentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "radar_content_fetch_duration_seconds",
			Help:    "Time taken to fetch article content",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
	)

	ContentFetchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "radar_content_fetch_size_bytes",
			Help: "Fetched article content size in bytes",
			Buckets: []float64{
				100, 200, 400, 800, 1600, 3200, 6400, 12800,
				25600, 51200, 102400, 204800, 409600, 819200,
			},
		},
	)

	ExtractionSelectorTier = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radar_extraction_selector_tier_total",
			Help: "Number of articles extracted by which selector cascade tier matched",
		},
		[]string{"tier"}, // site_specific, generic, heading_anchored, keyword_links
	)
)

// Classification and ranking metrics (C6, C7, C11).
var (
	ArticlesClassifiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radar_articles_classified_total",
			Help: "Total number of articles classified by final category",
		},
		[]string{"category"},
	)

	ArticlesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radar_articles_rejected_total",
			Help: "Total number of articles rejected before storage by reason",
		},
		[]string{"reason"}, // below_threshold, entertainment_url
	)

	RelevanceScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "radar_relevance_score",
			Help:    "Distribution of computed overall relevance scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)

// Feed health metrics (C8).
var (
	FeedHealthScore = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "radar_feed_health_score",
			Help: "Current health score (successful/total attempts) per feed",
		},
		[]string{"feed"},
	)

	FeedDeactivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radar_feed_deactivations_total",
			Help: "Total number of times a feed was deactivated after consecutive failures",
		},
		[]string{"feed"},
	)
)

// Storage and dedup metrics (C9, C10).
var (
	ArticlesStoredTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "radar_articles_stored_total",
			Help: "Total number of articles currently in the database",
		},
	)

	DuplicatesSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radar_duplicates_skipped_total",
			Help: "Total number of duplicate articles skipped by dedup method",
		},
		[]string{"method"}, // content_hash, url, title_similarity
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "radar_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)
)
