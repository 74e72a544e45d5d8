// Package repository declares the persistence-facing interfaces the
// pipeline depends on; concrete implementations live under internal/store.
package repository

import (
	"context"
	"time"

	"policyradar/internal/domain/entity"
)

// ArticleFilter narrows ListArticles results for the dashboard/search paths.
type ArticleFilter struct {
	Category *string
	Since    *time.Time
	Limit    int
}

// RecentKey is a lightweight (url, title) projection used by the
// deduplicator's optional cross-run similarity check (C10).
type RecentKey struct {
	URL   string
	Title string
}

// ArticleRepository persists and retrieves Article rows (C9 `articles`
// table, spec §4.9).
type ArticleRepository interface {
	// Insert upserts an article keyed by StorageHash.
	Insert(ctx context.Context, article *entity.Article) error
	GetByStorageHash(ctx context.Context, storageHash string) (*entity.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]*entity.Article, error)
	Search(ctx context.Context, keyword string) ([]*entity.Article, error)
	Categories(ctx context.Context) ([]string, error)
	Sources(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	// RecentKeys returns (url, title) pairs for articles created within
	// the given window, for C10's cross-run similarity check.
	RecentKeys(ctx context.Context, since time.Time) ([]RecentKey, error)
	// Prune deletes articles older than the cutoff (--clear-cache, spec §6).
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}
