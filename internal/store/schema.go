package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion gates migrations via PRAGMA user_version (spec §4.9).
const schemaVersion = 1

// Migrate brings db up to schemaVersion, applying migrations in order. It is
// safe to call on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	var current int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range migrationV1 {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}

	return tx.Commit()
}

var migrationV1 = []string{
	`CREATE TABLE IF NOT EXISTS sources (
		name             TEXT PRIMARY KEY,
		url              TEXT NOT NULL,
		default_category TEXT NOT NULL,
		source_type      TEXT NOT NULL DEFAULT 'other',
		updated_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS feed_history (
		url           TEXT PRIMARY KEY,
		last_success  TIMESTAMP,
		last_error    TEXT,
		error_count   INTEGER NOT NULL DEFAULT 0,
		success_count INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS feed_health_v2 (
		url                  TEXT PRIMARY KEY,
		total_attempts       INTEGER NOT NULL DEFAULT 0,
		successful_attempts  INTEGER NOT NULL DEFAULT 0,
		consecutive_failures INTEGER NOT NULL DEFAULT 0,
		last_success         TIMESTAMP,
		last_failure         TIMESTAMP,
		last_error_type      TEXT,
		is_active            BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		hash               TEXT PRIMARY KEY,
		content_hash       TEXT NOT NULL,
		title              TEXT NOT NULL,
		url                TEXT NOT NULL,
		source             TEXT NOT NULL,
		category           TEXT NOT NULL,
		published_date     TIMESTAMP,
		summary            TEXT,
		content            TEXT,
		tags               TEXT NOT NULL DEFAULT '[]',
		keywords           TEXT NOT NULL DEFAULT '[]',
		policy_relevance   REAL NOT NULL DEFAULT 0,
		source_reliability REAL NOT NULL DEFAULT 0,
		recency            REAL NOT NULL DEFAULT 0,
		sector_specificity REAL NOT NULL DEFAULT 0,
		overall_relevance  REAL NOT NULL DEFAULT 0,
		metadata           TEXT NOT NULL DEFAULT '{}',
		created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_overall_relevance ON articles(overall_relevance)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_published_date ON articles(published_date)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_content_hash ON articles(content_hash)`,
	// Unused by the core pipeline; retained for schema parity with the
	// original source and as a landing spot for future personalization
	// features explicitly out of scope for this rewrite (spec §1 Non-goals).
	`CREATE TABLE IF NOT EXISTS user_preferences (
		user_id    TEXT PRIMARY KEY,
		preferences TEXT NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS article_interactions (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id    TEXT NOT NULL,
		article_hash TEXT NOT NULL,
		kind       TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}
