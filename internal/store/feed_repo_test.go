package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"policyradar/internal/repository"
	"policyradar/internal/resilience/circuitbreaker"
)

func openTestBreaker(t *testing.T) *circuitbreaker.DBCircuitBreaker {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return circuitbreaker.NewDBCircuitBreaker(db)
}

func TestFeedHealthRepo_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewFeedHealthRepo(openTestBreaker(t))
	now := time.Now()
	rec := &repository.FeedHealthRecord{
		URL: "https://pib.gov.in/rss.xml", TotalAttempts: 5, SuccessfulAttempts: 4,
		ConsecutiveFailures: 0, LastSuccess: &now, IsActive: true,
	}
	require.NoError(t, repo.Upsert(ctx, rec))

	got, err := repo.Get(ctx, rec.URL)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 5, got.TotalAttempts)
	require.InDelta(t, 0.8, got.HealthScore(), 0.0001)
}

func TestFeedHealthRepo_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewFeedHealthRepo(openTestBreaker(t))
	got, err := repo.Get(ctx, "https://missing.example.com/rss")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFeedHistoryRepo_RecordSuccessAndFailure(t *testing.T) {
	ctx := context.Background()
	repo := NewFeedHistoryRepo(openTestBreaker(t))
	url := "https://example.com/feed.xml"
	require.NoError(t, repo.RecordSuccess(ctx, url, time.Now()))
	require.NoError(t, repo.RecordFailure(ctx, url, time.Now(), "timeout"))
	require.NoError(t, repo.RecordFailure(ctx, url, time.Now(), "timeout"))

	rec, err := repo.Get(ctx, url)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, 1, rec.SuccessCount)
	require.Equal(t, 2, rec.ErrorCount)
	require.Equal(t, "timeout", rec.LastError)
}
