package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"policyradar/internal/domain/entity"
	"policyradar/internal/repository"
	"policyradar/internal/resilience/circuitbreaker"
)

// ArticleRepo implements repository.ArticleRepository against the
// `articles` table (spec §4.9). Grounded on the teacher's
// infra/adapter/persistence/sqlite article repository. Every query runs
// through a DBCircuitBreaker so a wedged disk or lock contention trips the
// breaker instead of stacking up goroutines against the single SQLite
// writer.
type ArticleRepo struct {
	db *circuitbreaker.DBCircuitBreaker
}

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db *circuitbreaker.DBCircuitBreaker) *ArticleRepo {
	return &ArticleRepo{db: db}
}

// Insert upserts an article keyed by StorageHash.
func (r *ArticleRepo) Insert(ctx context.Context, a *entity.Article) error {
	tags, err := json.Marshal(a.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	keywords, err := json.Marshal(a.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}
	metadata, err := json.Marshal(a.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	const q = `
INSERT INTO articles
	(hash, content_hash, title, url, source, category, published_date, summary, content,
	 tags, keywords, policy_relevance, source_reliability, recency, sector_specificity,
	 overall_relevance, metadata, created_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(hash) DO UPDATE SET
	title = excluded.title, category = excluded.category, summary = excluded.summary,
	content = excluded.content, tags = excluded.tags, keywords = excluded.keywords,
	policy_relevance = excluded.policy_relevance, source_reliability = excluded.source_reliability,
	recency = excluded.recency, sector_specificity = excluded.sector_specificity,
	overall_relevance = excluded.overall_relevance, metadata = excluded.metadata
`
	_, err = r.db.ExecContext(ctx, q,
		a.StorageHash, a.ContentHash, a.Title, a.URL, a.Source, a.Category,
		nullTime(a.PublishedDate), a.Summary, a.Content,
		string(tags), string(keywords),
		a.Relevance.PolicyRelevance, a.Relevance.SourceReliability, a.Relevance.Recency,
		a.Relevance.SectorSpecificity, a.Relevance.Overall,
		string(metadata), a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *ArticleRepo) GetByStorageHash(ctx context.Context, storageHash string) (*entity.Article, error) {
	const q = `
SELECT hash, content_hash, title, url, source, category, published_date, summary, content,
	tags, keywords, policy_relevance, source_reliability, recency, sector_specificity,
	overall_relevance, metadata, created_at
FROM articles WHERE hash = ?`
	row := r.db.QueryRowContext(ctx, q, storageHash)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func (r *ArticleRepo) List(ctx context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	q := `
SELECT hash, content_hash, title, url, source, category, published_date, summary, content,
	tags, keywords, policy_relevance, source_reliability, recency, sector_specificity,
	overall_relevance, metadata, created_at
FROM articles WHERE 1=1`
	var args []interface{}
	if filter.Category != nil {
		q += " AND category = ?"
		args = append(args, *filter.Category)
	}
	if filter.Since != nil {
		q += " AND created_at >= ?"
		args = append(args, *filter.Since)
	}
	q += " ORDER BY overall_relevance DESC"
	if filter.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanArticles(rows)
}

func (r *ArticleRepo) Search(ctx context.Context, keyword string) ([]*entity.Article, error) {
	const q = `
SELECT hash, content_hash, title, url, source, category, published_date, summary, content,
	tags, keywords, policy_relevance, source_reliability, recency, sector_specificity,
	overall_relevance, metadata, created_at
FROM articles WHERE title LIKE ? OR summary LIKE ?
ORDER BY overall_relevance DESC LIMIT 10`
	param := "%" + keyword + "%"
	rows, err := r.db.QueryContext(ctx, q, param, param)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanArticles(rows)
}

func (r *ArticleRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM articles ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ArticleRepo) Sources(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT source FROM articles ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("sources: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ArticleRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n)
	return n, err
}

// RecentKeys returns (url, title) pairs for articles created since the
// given time, feeding C10's optional cross-run Jaccard similarity check.
func (r *ArticleRepo) RecentKeys(ctx context.Context, since time.Time) ([]repository.RecentKey, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT url, title FROM articles WHERE created_at >= ?`, since)
	if err != nil {
		return nil, fmt.Errorf("recent keys: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []repository.RecentKey
	for rows.Next() {
		var k repository.RecentKey
		if err := rows.Scan(&k.URL, &k.Title); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *ArticleRepo) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE created_at < ?`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("prune: %w", err)
	}
	return res.RowsAffected()
}

func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*entity.Article, error) {
	var a entity.Article
	var published sql.NullTime
	var tags, keywords, metadata string
	err := row.Scan(
		&a.StorageHash, &a.ContentHash, &a.Title, &a.URL, &a.Source, &a.Category,
		&published, &a.Summary, &a.Content, &tags, &keywords,
		&a.Relevance.PolicyRelevance, &a.Relevance.SourceReliability, &a.Relevance.Recency,
		&a.Relevance.SectorSpecificity, &a.Relevance.Overall, &metadata, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if published.Valid {
		t := published.Time
		a.PublishedDate = &t
	}
	if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	if err := json.Unmarshal([]byte(keywords), &a.Keywords); err != nil {
		return nil, fmt.Errorf("unmarshal keywords: %w", err)
	}
	if err := json.Unmarshal([]byte(metadata), &a.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	return &a, nil
}

func scanArticles(rows *sql.Rows) ([]*entity.Article, error) {
	articles := make([]*entity.Article, 0, 64)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
