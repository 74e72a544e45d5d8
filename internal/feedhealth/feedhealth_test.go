package feedhealth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policyradar/internal/repository"
)

type memRepo struct {
	mu      sync.Mutex
	records map[string]*repository.FeedHealthRecord
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]*repository.FeedHealthRecord)}
}

func (m *memRepo) Get(_ context.Context, url string) (*repository.FeedHealthRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[url], nil
}

func (m *memRepo) Upsert(_ context.Context, record *repository.FeedHealthRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *record
	m.records[record.URL] = &cp
	return nil
}

func (m *memRepo) All(_ context.Context) ([]*repository.FeedHealthRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*repository.FeedHealthRecord, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	return out, nil
}

func TestMonitor_Update_DeactivatesAfterFiveConsecutiveFailures(t *testing.T) {
	repo := newMemRepo()
	mon := New(repo)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 4; i++ {
		require.NoError(t, mon.Update(ctx, "https://feed.example.com", false, "timeout", now))
	}
	rec, err := repo.Get(ctx, "https://feed.example.com")
	require.NoError(t, err)
	assert.True(t, rec.IsActive, "should remain active before the fifth failure")

	require.NoError(t, mon.Update(ctx, "https://feed.example.com", false, "timeout", now))
	rec, err = repo.Get(ctx, "https://feed.example.com")
	require.NoError(t, err)
	assert.False(t, rec.IsActive, "should deactivate on the fifth consecutive failure")
}

func TestMonitor_Update_SuccessResetsConsecutiveFailures(t *testing.T) {
	repo := newMemRepo()
	mon := New(repo)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 4; i++ {
		require.NoError(t, mon.Update(ctx, "https://feed.example.com", false, "timeout", now))
	}
	require.NoError(t, mon.Update(ctx, "https://feed.example.com", true, "", now))

	rec, err := repo.Get(ctx, "https://feed.example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.ConsecutiveFailures)
	assert.True(t, rec.IsActive)
}

func TestMonitor_HealthScore_IsMonotonicWithSuccessRate(t *testing.T) {
	repo := newMemRepo()
	mon := New(repo)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, mon.Update(ctx, "https://a.example.com", true, "", now))
	require.NoError(t, mon.Update(ctx, "https://a.example.com", true, "", now))
	require.NoError(t, mon.Update(ctx, "https://a.example.com", false, "timeout", now))

	rec, err := repo.Get(ctx, "https://a.example.com")
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, rec.HealthScore(), 0.001)
}

func TestMonitor_ActiveFeeds_ExcludesDeactivatedUntilRetryAfter(t *testing.T) {
	repo := newMemRepo()
	mon := New(repo)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 5; i++ {
		require.NoError(t, mon.Update(ctx, "https://dead.example.com", false, "timeout", now))
	}
	require.NoError(t, mon.Update(ctx, "https://alive.example.com", true, "", now))

	active, err := mon.ActiveFeeds(ctx, []string{"https://dead.example.com", "https://alive.example.com"}, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://alive.example.com"}, active)

	later := now.Add(25 * time.Hour)
	active, err = mon.ActiveFeeds(ctx, []string{"https://dead.example.com", "https://alive.example.com"}, later)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"https://dead.example.com", "https://alive.example.com"}, active)
}

func TestMonitor_BuildReport(t *testing.T) {
	repo := newMemRepo()
	mon := New(repo)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, mon.Update(ctx, "https://a.example.com", true, "", now))
	reports, err := mon.BuildReport(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "https://a.example.com", reports[0].URL)
}
