// Package health exposes the HTTP liveness/readiness probes the cron daemon
// (cmd/radar) answers while a scrape cycle is running, plus a feed-health
// summary endpoint backed by C8's monitor.
package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"policyradar/internal/feedhealth"
)

// Server answers /health (always OK), /health/ready (OK once the registry
// and store have finished initializing), and, when a feed monitor is
// attached, /health/feeds (per-source health scores for C8).
type Server struct {
	addr    string
	logger  *slog.Logger
	isReady *atomic.Bool
	server  *http.Server
	feeds   *feedhealth.Monitor
}

// HealthServer is kept as an alias for the teacher's original exported name;
// new code should refer to Server.
type HealthServer = Server

type statusResponse struct {
	Status string `json:"status"`
}

// NewHealthServer returns a Server listening on addr, not yet started and
// not yet ready. Attach a feed monitor with WithFeedMonitor before Start.
func NewHealthServer(addr string, logger *slog.Logger) *Server {
	isReady := &atomic.Bool{}
	return &Server{addr: addr, logger: logger, isReady: isReady}
}

// WithFeedMonitor attaches C8's monitor so /health/feeds can report
// per-source health scores. Returns the server for chaining at construction.
func (h *Server) WithFeedMonitor(m *feedhealth.Monitor) *Server {
	h.feeds = m
	return h
}

// Start blocks, serving until ctx is cancelled, then shuts down within 5s.
func (h *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleLiveness)
	mux.HandleFunc("/health/ready", h.handleReadiness)
	mux.HandleFunc("/health/feeds", h.handleFeedHealth)

	h.server = &http.Server{
		Addr:         h.addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		h.logger.Info("health server starting", slog.String("addr", h.addr))
		if err := h.server.ListenAndServe(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		h.logger.Info("health server shutting down")
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			h.logger.Error("health server shutdown failed", slog.Any("error", err))
			return err
		}
		h.logger.Info("health server stopped")
		return http.ErrServerClosed

	case err := <-errChan:
		if err == http.ErrServerClosed {
			return err
		}
		h.logger.Error("health server failed", slog.Any("error", err))
		return err
	}
}

// SetReady flips the /health/ready verdict. cmd/radar calls SetReady(true)
// once, before a one-shot run or after the daemon's cron scheduler starts;
// it never sets false.
func (h *Server) SetReady(ready bool) {
	h.isReady.Store(ready)
	h.logger.Info("health server readiness changed", slog.Bool("ready", ready))
}

func (h *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if h.isReady.Load() {
		h.writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
		return
	}
	h.writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "not ready"})
}

// handleFeedHealth reports every feed's health score (spec §4.8 /
// dashboard C12 data). Responds 503 if no monitor was attached.
func (h *Server) handleFeedHealth(w http.ResponseWriter, r *http.Request) {
	if h.feeds == nil {
		h.writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "feed monitor not configured"})
		return
	}
	reports, err := h.feeds.BuildReport(r.Context())
	if err != nil {
		h.logger.Error("failed to build feed health report", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reports); err != nil {
		h.logger.Error("failed to encode feed health response", slog.Any("error", err))
	}
}

func (h *Server) writeJSON(w http.ResponseWriter, status int, body statusResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode health response", slog.Any("error", err))
	}
}
