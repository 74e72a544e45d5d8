// Package store implements the embedded relational store (C9): schema
// management and repository implementations backed by SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// ConnectionConfig mirrors the teacher's pool-sizing pattern, scaled down
// for a single-writer embedded database (spec §5: SQLite serializes writes).
type ConnectionConfig struct {
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConnectionConfig returns sane defaults for the embedded store.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    1, // single writer; SQLite serializes writes anyway
		ConnMaxLifetime: time.Hour,
	}
}

// Open creates a SQLite connection pool at path and applies pragmas for
// concurrent reader / single-writer access (WAL mode), then runs
// migrations. path may be ":memory:" for tests.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	if path == ":memory:" {
		dsn = "file::memory:?cache=shared&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	cfg := DefaultConnectionConfig()
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Info("article store ready", slog.String("path", path))
	return db, nil
}
