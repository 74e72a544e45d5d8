package repository

import (
	"context"
	"time"

	"policyradar/internal/domain/entity"
)

// SourceRepository mirrors the curated C1 registry into the `sources` table
// (spec §4.9) so the store has a durable record of what was crawled.
type SourceRepository interface {
	Upsert(ctx context.Context, source *entity.Source) error
	List(ctx context.Context) ([]*entity.Source, error)
}

// FeedHistoryRecord mirrors the `feed_history` table (spec §4.9), keyed by
// feed URL. The scan pipeline does not write this table: C4 records fetch
// outcomes only in feed health (`feed_health_v2`).
type FeedHistoryRecord struct {
	URL          string
	LastSuccess  *time.Time
	LastError    string
	ErrorCount   int
	SuccessCount int
}

// FeedHistoryRepository persists per-feed outcome history.
type FeedHistoryRepository interface {
	RecordSuccess(ctx context.Context, url string, at time.Time) error
	RecordFailure(ctx context.Context, url string, at time.Time, errMsg string) error
	Get(ctx context.Context, url string) (*FeedHistoryRecord, error)
}

// FeedHealthRecord mirrors `feed_health_v2` (spec §3, §4.8).
type FeedHealthRecord struct {
	URL                string
	TotalAttempts      int
	SuccessfulAttempts int
	ConsecutiveFailures int
	LastSuccess        *time.Time
	LastFailure        *time.Time
	LastErrorType      string
	IsActive           bool
}

// HealthScore returns successful_attempts / max(1,total_attempts).
func (r *FeedHealthRecord) HealthScore() float64 {
	total := r.TotalAttempts
	if total < 1 {
		total = 1
	}
	return float64(r.SuccessfulAttempts) / float64(total)
}

// FeedHealthRepository persists feed health bookkeeping for C8.
type FeedHealthRepository interface {
	Get(ctx context.Context, url string) (*FeedHealthRecord, error)
	Upsert(ctx context.Context, record *FeedHealthRecord) error
	All(ctx context.Context) ([]*FeedHealthRecord, error)
}
