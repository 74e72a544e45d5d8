// Package runid identifies a single scrape run for log correlation.
// Every invocation of the orchestrator generates one run ID and threads
// it through context so every log line emitted during that run, across
// every source and goroutine, can be grepped out of the JSON log stream.
package runid

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const runIDKey contextKey = "run_id"

// New generates a fresh run ID.
func New() string {
	return uuid.New().String()
}

// FromContext retrieves the run ID from the context, or "" if none is set.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}
