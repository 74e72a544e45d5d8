package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"policyradar/internal/repository"
	"policyradar/internal/resilience/circuitbreaker"
)

// FeedHistoryRepo implements repository.FeedHistoryRepository against the
// `feed_history` table (spec §4.9). cmd/radar does not construct it, so
// the scheduler's fetch outcomes are not recorded here; they go to
// FeedHealthRepo.
type FeedHistoryRepo struct {
	db *circuitbreaker.DBCircuitBreaker
}

func NewFeedHistoryRepo(db *circuitbreaker.DBCircuitBreaker) *FeedHistoryRepo {
	return &FeedHistoryRepo{db: db}
}

func (r *FeedHistoryRepo) RecordSuccess(ctx context.Context, url string, at time.Time) error {
	const q = `
INSERT INTO feed_history (url, last_success, success_count, error_count)
VALUES (?, ?, 1, 0)
ON CONFLICT(url) DO UPDATE SET
	last_success = excluded.last_success,
	success_count = success_count + 1`
	_, err := r.db.ExecContext(ctx, q, url, at)
	if err != nil {
		return fmt.Errorf("record feed success: %w", err)
	}
	return nil
}

func (r *FeedHistoryRepo) RecordFailure(ctx context.Context, url string, at time.Time, errMsg string) error {
	const q = `
INSERT INTO feed_history (url, last_error, success_count, error_count)
VALUES (?, ?, 0, 1)
ON CONFLICT(url) DO UPDATE SET
	last_error = excluded.last_error,
	error_count = error_count + 1`
	_, err := r.db.ExecContext(ctx, q, url, errMsg)
	if err != nil {
		return fmt.Errorf("record feed failure: %w", err)
	}
	return nil
}

func (r *FeedHistoryRepo) Get(ctx context.Context, url string) (*repository.FeedHistoryRecord, error) {
	const q = `SELECT url, last_success, last_error, error_count, success_count FROM feed_history WHERE url = ?`
	var rec repository.FeedHistoryRecord
	var lastSuccess sql.NullTime
	var lastError sql.NullString
	err := r.db.QueryRowContext(ctx, q, url).Scan(&rec.URL, &lastSuccess, &lastError, &rec.ErrorCount, &rec.SuccessCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get feed history: %w", err)
	}
	if lastSuccess.Valid {
		rec.LastSuccess = &lastSuccess.Time
	}
	rec.LastError = lastError.String
	return &rec, nil
}

// FeedHealthRepo implements repository.FeedHealthRepository against
// `feed_health_v2` (spec §4.8, §4.9).
type FeedHealthRepo struct {
	db *circuitbreaker.DBCircuitBreaker
}

func NewFeedHealthRepo(db *circuitbreaker.DBCircuitBreaker) *FeedHealthRepo {
	return &FeedHealthRepo{db: db}
}

func (r *FeedHealthRepo) Get(ctx context.Context, url string) (*repository.FeedHealthRecord, error) {
	const q = `
SELECT url, total_attempts, successful_attempts, consecutive_failures,
	last_success, last_failure, last_error_type, is_active
FROM feed_health_v2 WHERE url = ?`
	rec, err := scanFeedHealth(r.db.QueryRowContext(ctx, q, url))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

func (r *FeedHealthRepo) Upsert(ctx context.Context, rec *repository.FeedHealthRecord) error {
	const q = `
INSERT INTO feed_health_v2
	(url, total_attempts, successful_attempts, consecutive_failures, last_success, last_failure, last_error_type, is_active)
VALUES (?,?,?,?,?,?,?,?)
ON CONFLICT(url) DO UPDATE SET
	total_attempts = excluded.total_attempts,
	successful_attempts = excluded.successful_attempts,
	consecutive_failures = excluded.consecutive_failures,
	last_success = excluded.last_success,
	last_failure = excluded.last_failure,
	last_error_type = excluded.last_error_type,
	is_active = excluded.is_active`
	_, err := r.db.ExecContext(ctx, q,
		rec.URL, rec.TotalAttempts, rec.SuccessfulAttempts, rec.ConsecutiveFailures,
		nullTime(rec.LastSuccess), nullTime(rec.LastFailure), rec.LastErrorType, rec.IsActive)
	if err != nil {
		return fmt.Errorf("upsert feed health: %w", err)
	}
	return nil
}

func (r *FeedHealthRepo) All(ctx context.Context) ([]*repository.FeedHealthRecord, error) {
	const q = `
SELECT url, total_attempts, successful_attempts, consecutive_failures,
	last_success, last_failure, last_error_type, is_active
FROM feed_health_v2`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list feed health: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*repository.FeedHealthRecord
	for rows.Next() {
		rec, err := scanFeedHealth(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feed health: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanFeedHealth(row rowScanner) (*repository.FeedHealthRecord, error) {
	var rec repository.FeedHealthRecord
	var lastSuccess, lastFailure sql.NullTime
	var lastErrorType sql.NullString
	err := row.Scan(&rec.URL, &rec.TotalAttempts, &rec.SuccessfulAttempts, &rec.ConsecutiveFailures,
		&lastSuccess, &lastFailure, &lastErrorType, &rec.IsActive)
	if err != nil {
		return nil, err
	}
	if lastSuccess.Valid {
		rec.LastSuccess = &lastSuccess.Time
	}
	if lastFailure.Valid {
		rec.LastFailure = &lastFailure.Time
	}
	rec.LastErrorType = lastErrorType.String
	return &rec, nil
}
