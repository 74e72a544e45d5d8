package store

import (
	"context"
	"fmt"

	"policyradar/internal/domain/entity"
	"policyradar/internal/resilience/circuitbreaker"
)

// SourceRepo mirrors the curated C1 registry into the `sources` table.
// Grounded on the teacher's infra/adapter/persistence/sqlite source
// repository.
type SourceRepo struct {
	db *circuitbreaker.DBCircuitBreaker
}

func NewSourceRepo(db *circuitbreaker.DBCircuitBreaker) *SourceRepo {
	return &SourceRepo{db: db}
}

func (r *SourceRepo) Upsert(ctx context.Context, s *entity.Source) error {
	const q = `
INSERT INTO sources (name, url, default_category, source_type, updated_at)
VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(name) DO UPDATE SET
	url = excluded.url, default_category = excluded.default_category,
	source_type = excluded.source_type, updated_at = CURRENT_TIMESTAMP`
	_, err := r.db.ExecContext(ctx, q, s.Name, s.URL, s.DefaultCategory, string(s.SourceType))
	if err != nil {
		return fmt.Errorf("upsert source: %w", err)
	}
	return nil
}

func (r *SourceRepo) List(ctx context.Context) ([]*entity.Source, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, url, default_category, source_type FROM sources ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.Source
	for rows.Next() {
		var s entity.Source
		var sourceType string
		if err := rows.Scan(&s.Name, &s.URL, &s.DefaultCategory, &sourceType); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		s.SourceType = entity.SourceType(sourceType)
		out = append(out, &s)
	}
	return out, rows.Err()
}
