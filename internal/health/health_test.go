package health

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policyradar/internal/feedhealth"
	"policyradar/internal/repository"
)

type memFeedHealthRepo struct {
	records map[string]*repository.FeedHealthRecord
}

func newMemFeedHealthRepo() *memFeedHealthRepo {
	return &memFeedHealthRepo{records: make(map[string]*repository.FeedHealthRecord)}
}

func (m *memFeedHealthRepo) Get(_ context.Context, url string) (*repository.FeedHealthRecord, error) {
	return m.records[url], nil
}

func (m *memFeedHealthRepo) Upsert(_ context.Context, rec *repository.FeedHealthRecord) error {
	cp := *rec
	m.records[rec.URL] = &cp
	return nil
}

func (m *memFeedHealthRepo) All(_ context.Context) ([]*repository.FeedHealthRecord, error) {
	out := make([]*repository.FeedHealthRecord, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	return out, nil
}

func startTestServer(t *testing.T, addr string) *Server {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	server := NewHealthServer(addr, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		if err := server.Start(ctx); err != nil && err != http.ErrServerClosed {
			t.Errorf("unexpected server error: %v", err)
		}
	}()
	time.Sleep(100 * time.Millisecond)
	return server
}

func getStatus(t *testing.T, url string) (int, statusResponse) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out statusResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestHealthServer_Liveness(t *testing.T) {
	startTestServer(t, "localhost:19091")
	status, body := getStatus(t, "http://localhost:19091/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body.Status)
}

func TestHealthServer_Readiness_NotReadyByDefault(t *testing.T) {
	startTestServer(t, "localhost:19092")
	status, body := getStatus(t, "http://localhost:19092/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "not ready", body.Status)
}

func TestHealthServer_Readiness_Transition(t *testing.T) {
	server := startTestServer(t, "localhost:19093")

	status, _ := getStatus(t, "http://localhost:19093/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, status)

	server.SetReady(true)
	status, body := getStatus(t, "http://localhost:19093/health/ready")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body.Status)

	server.SetReady(false)
	status, _ = getStatus(t, "http://localhost:19093/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestHealthServer_FeedHealth_NoMonitorAttached(t *testing.T) {
	startTestServer(t, "localhost:19094")
	status, _ := getStatus(t, "http://localhost:19094/health/feeds")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestHealthServer_FeedHealth_ReportsMonitorData(t *testing.T) {
	repo := newMemFeedHealthRepo()
	now := time.Now()
	require.NoError(t, repo.Upsert(context.Background(), &repository.FeedHealthRecord{
		URL: "https://pib.gov.in/rss.xml", TotalAttempts: 4, SuccessfulAttempts: 4, LastSuccess: &now, IsActive: true,
	}))

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	server := NewHealthServer("localhost:19095", logger).WithFeedMonitor(feedhealth.New(repo))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = server.Start(ctx) }()
	time.Sleep(100 * time.Millisecond)

	resp, err := http.Get("http://localhost:19095/health/feeds")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reports []feedhealth.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "https://pib.gov.in/rss.xml", reports[0].URL)
	assert.Equal(t, 1.0, reports[0].HealthScore)
}

func TestHealthServer_GracefulShutdown(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	server := NewHealthServer("localhost:19096", logger)

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			errChan <- err
		}
	}()
	time.Sleep(100 * time.Millisecond)

	resp, err := http.Get("http://localhost:19096/health")
	require.NoError(t, err)
	_ = resp.Body.Close()

	cancel()
	select {
	case err := <-errChan:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(10 * time.Second):
		t.Fatal("shutdown timeout")
	}

	_, err = http.Get("http://localhost:19096/health")
	assert.Error(t, err, "expected connection error after shutdown")
}

func TestNewHealthServer(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	server := NewHealthServer(":9091", logger)

	assert.Equal(t, ":9091", server.addr)
	assert.NotNil(t, server.logger)
	require.NotNil(t, server.isReady)
	assert.False(t, server.isReady.Load())
}

func TestSetReady(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	server := NewHealthServer(":9091", logger)

	assert.False(t, server.isReady.Load())
	server.SetReady(true)
	assert.True(t, server.isReady.Load())
	server.SetReady(false)
	assert.False(t, server.isReady.Load())
}
