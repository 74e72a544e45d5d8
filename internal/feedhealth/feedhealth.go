// Package feedhealth implements C8: per-feed success/failure bookkeeping,
// automatic deactivation after repeated consecutive failures, and a
// retry-after window so a deactivated feed gets a second chance the next
// day rather than being blacklisted forever.
package feedhealth

import (
	"context"
	"fmt"
	"time"

	"policyradar/internal/repository"
)

// consecutiveFailureThreshold is how many failures in a row deactivate a
// feed (spec §4.8).
const consecutiveFailureThreshold = 5

// defaultRetryAfter is how long a deactivated feed is skipped before the
// scheduler considers trying it again (spec §4.8).
const defaultRetryAfter = 24 * time.Hour

// Monitor wraps the feed health repository with the update/query
// operations C4 and C1 call during a run.
type Monitor struct {
	repo repository.FeedHealthRepository
}

// New returns a Monitor backed by repo.
func New(repo repository.FeedHealthRepository) *Monitor {
	return &Monitor{repo: repo}
}

// Update records one fetch outcome for url (spec §4.8). errorType is a
// short classification ("timeout", "http_5xx", "parse_error", ...) used for
// diagnostics; it is ignored on success.
func (m *Monitor) Update(ctx context.Context, url string, success bool, errorType string, at time.Time) error {
	rec, err := m.repo.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("load feed health for %s: %w", url, err)
	}
	if rec == nil {
		rec = &repository.FeedHealthRecord{URL: url, IsActive: true}
	}

	rec.TotalAttempts++
	if success {
		rec.SuccessfulAttempts++
		rec.ConsecutiveFailures = 0
		rec.LastSuccess = &at
		rec.IsActive = true
	} else {
		rec.ConsecutiveFailures++
		rec.LastFailure = &at
		rec.LastErrorType = errorType
		if rec.ConsecutiveFailures >= consecutiveFailureThreshold {
			rec.IsActive = false
		}
	}

	return m.repo.Upsert(ctx, rec)
}

// ActiveFeeds filters allURLs down to the ones not currently deactivated,
// or whose retry-after window has elapsed (spec §4.8: a deactivated feed
// is retried after 24h rather than permanently dropped).
func (m *Monitor) ActiveFeeds(ctx context.Context, allURLs []string, now time.Time) ([]string, error) {
	var active []string
	for _, url := range allURLs {
		rec, err := m.repo.Get(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("load feed health for %s: %w", url, err)
		}
		if rec == nil || rec.IsActive {
			active = append(active, url)
			continue
		}
		if rec.LastFailure != nil && now.Sub(*rec.LastFailure) >= defaultRetryAfter {
			active = append(active, url)
		}
	}
	return active, nil
}

// Report is the per-feed summary the health dashboard (C12) renders.
type Report struct {
	URL          string
	HealthScore  float64
	IsActive     bool
	LastSuccess  *time.Time
	LastFailure  *time.Time
	ErrorCount   int
}

// BuildReport returns a health snapshot for every feed the repository has
// ever recorded an attempt for.
func (m *Monitor) BuildReport(ctx context.Context) ([]Report, error) {
	records, err := m.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feed health records: %w", err)
	}

	reports := make([]Report, 0, len(records))
	for _, rec := range records {
		reports = append(reports, Report{
			URL:         rec.URL,
			HealthScore: rec.HealthScore(),
			IsActive:    rec.IsActive,
			LastSuccess: rec.LastSuccess,
			LastFailure: rec.LastFailure,
			ErrorCount:  rec.TotalAttempts - rec.SuccessfulAttempts,
		})
	}
	return reports, nil
}
