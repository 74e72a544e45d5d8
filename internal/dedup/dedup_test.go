package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"policyradar/internal/domain/entity"
	"policyradar/internal/repository"
)

func article(title, url string) *entity.Article {
	a := &entity.Article{Title: title, URL: url}
	a.ContentHash = entity.ComputeContentHash(title, url)
	return a
}

func TestTracker_CatchesExactContentHashDuplicate(t *testing.T) {
	tr := New()
	a := article("Budget 2026 announced", "https://example.com/budget")
	b := article("Budget 2026 announced", "https://example.com/budget")

	assert.Equal(t, MethodNone, tr.Seen(a))
	assert.Equal(t, MethodContentHash, tr.Seen(b))
}

func TestTracker_CatchesDuplicateURLWithDifferentTitle(t *testing.T) {
	tr := New()
	a := article("Budget 2026 announced", "https://example.com/budget/")
	b := article("Budget 2026: full details", "https://example.com/budget")

	assert.Equal(t, MethodNone, tr.Seen(a))
	assert.Equal(t, MethodURL, tr.Seen(b))
}

func TestTracker_CatchesDuplicateTitleFromDifferentURL(t *testing.T) {
	tr := New()
	a := article("RBI raises repo rate", "https://a.example.com/1")
	b := article("RBI raises repo rate", "https://b.example.com/2")

	assert.Equal(t, MethodNone, tr.Seen(a))
	assert.Equal(t, MethodTitleSimilarity, tr.Seen(b))
}

func TestTracker_DistinctArticlesAreNotDuplicates(t *testing.T) {
	tr := New()
	a := article("RBI raises repo rate", "https://a.example.com/1")
	b := article("SEBI tightens disclosure norms", "https://b.example.com/2")

	assert.Equal(t, MethodNone, tr.Seen(a))
	assert.Equal(t, MethodNone, tr.Seen(b))
}

func TestIsCrossRunDuplicate_SimilarTitleMatches(t *testing.T) {
	recent := []repository.RecentKey{
		{URL: "https://example.com/old", Title: "Government announces new telecom policy for rural India"},
	}
	assert.True(t, IsCrossRunDuplicate("Government announces new telecom policy for rural India today", recent))
	assert.False(t, IsCrossRunDuplicate("Supreme Court rules on unrelated land dispute case", recent))
}
