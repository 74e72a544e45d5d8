package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeContentHash_StableAcrossEqualInputs(t *testing.T) {
	h1 := ComputeContentHash("Cabinet Approves New Rules", "https://pib.gov.in/x")
	h2 := ComputeContentHash("cabinet approves new rules", "HTTPS://PIB.GOV.IN/x")
	assert.Equal(t, h1, h2)
}

func TestComputeContentHash_DiffersForDifferentInputs(t *testing.T) {
	h1 := ComputeContentHash("Title A", "https://example.com/a")
	h2 := ComputeContentHash("Title B", "https://example.com/b")
	assert.NotEqual(t, h1, h2)
}

func TestComputeStorageHash_VariesByDate(t *testing.T) {
	contentHash := ComputeContentHash("T", "https://example.com/t")
	s1 := ComputeStorageHash(contentHash, "2026-01-01T00:00:00Z")
	s2 := ComputeStorageHash(contentHash, "2026-01-02T00:00:00Z")
	assert.NotEqual(t, s1, s2)
}

func TestArticle_Finalize(t *testing.T) {
	now := time.Now()
	pub := now.Add(-2 * time.Hour)
	a := Article{Title: "Some Title", URL: "https://example.com/article", PublishedDate: &pub}
	a.Finalize(now)

	assert.Equal(t, ComputeContentHash(a.Title, a.URL), a.ContentHash)
	assert.NotEmpty(t, a.StorageHash)
	assert.Equal(t, now, a.CreatedAt)
}

func TestArticle_Finalize_Idempotent(t *testing.T) {
	now := time.Now()
	a := Article{Title: "T", URL: "https://example.com/t"}
	a.Finalize(now)
	first := a.CreatedAt
	a.Finalize(now.Add(time.Hour))
	assert.Equal(t, first, a.CreatedAt)
}

func TestArticle_NormalizedTitle(t *testing.T) {
	a := Article{Title: "  Cabinet   Approves  New Rules  "}
	assert.Equal(t, "cabinet approves new rules", a.NormalizedTitle())
}

func TestNormalizedURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"https://example.com/a/", "https://example.com/a"},
		{"https://example.com/a#frag", "https://example.com/a"},
		{"https://example.com/a", "https://example.com/a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizedURL(tt.in))
	}
}

func TestIsGenericCategory(t *testing.T) {
	assert.True(t, IsGenericCategory(CategoryPolicyNews))
	assert.True(t, IsGenericCategory(CategoryGeneralNews))
	assert.False(t, IsGenericCategory("Technology Policy"))
}
