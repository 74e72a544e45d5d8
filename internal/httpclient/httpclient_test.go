package httpclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPool_Get_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	pool, err := New(DefaultConfig(), testLogger())
	require.NoError(t, err)

	res, err := pool.Get(context.Background(), srv.Listener.Addr().String(), srv.URL, Headers{})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "hello", string(res.Body))
}

func TestPool_Get_RetriesOnRetryableStatus(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.BackoffBase = 1 * time.Millisecond
	pool, err := New(cfg, testLogger())
	require.NoError(t, err)

	res, err := pool.Get(context.Background(), srv.Listener.Addr().String(), srv.URL, Headers{})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.GreaterOrEqual(t, int(atomic.LoadInt32(&attempts)), 3)
}

func TestPool_Get_NonRetryableStatusReturnsImmediately(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.BackoffBase = 1 * time.Millisecond
	pool, err := New(cfg, testLogger())
	require.NoError(t, err)

	res, err := pool.Get(context.Background(), srv.Listener.Addr().String(), srv.URL, Headers{})
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestRandomUserAgent_ReturnsNonEmpty(t *testing.T) {
	ua := RandomUserAgent()
	require.NotEmpty(t, ua)
}
