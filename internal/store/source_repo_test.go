package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"policyradar/internal/domain/entity"
)

func TestSourceRepo_UpsertAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewSourceRepo(openTestBreaker(t))
	s := &entity.Source{Name: "Press Information Bureau", URL: "https://pib.gov.in/rss.aspx", DefaultCategory: "Policy News", SourceType: entity.SourceGovernment}
	require.NoError(t, repo.Upsert(ctx, s))

	s.DefaultCategory = "Governance & Administration"
	require.NoError(t, repo.Upsert(ctx, s))

	out, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "Governance & Administration", out[0].DefaultCategory)
}
