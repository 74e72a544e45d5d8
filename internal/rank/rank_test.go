package rank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"policyradar/internal/domain/entity"
)

func pub(now time.Time, ago time.Duration) *time.Time {
	t := now.Add(-ago)
	return &t
}

func TestSort_OrdersByCompositeScoreDescending(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	low := &entity.Article{Title: "Low", Relevance: entity.RelevanceScores{PolicyRelevance: 0.2, SourceReliability: 0.3}, PublishedDate: pub(now, time.Hour)}
	high := &entity.Article{Title: "High", Relevance: entity.RelevanceScores{PolicyRelevance: 0.9, SourceReliability: 0.9}, PublishedDate: pub(now, time.Hour)}
	mid := &entity.Article{Title: "Mid", Relevance: entity.RelevanceScores{PolicyRelevance: 0.5, SourceReliability: 0.5}, PublishedDate: pub(now, time.Hour)}

	articles := []*entity.Article{low, high, mid}
	Sort(articles, now)

	assert.Equal(t, []*entity.Article{high, mid, low}, articles)
}

func TestSort_SourceTierCanBreakATie(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	gov := &entity.Article{
		Title:         "Gov",
		Source:        "Ministry of Electronics & IT",
		Relevance:     entity.RelevanceScores{PolicyRelevance: 0.5, SourceReliability: 0.5},
		PublishedDate: pub(now, time.Hour),
	}
	news := &entity.Article{
		Title:         "News",
		Source:        "Some Unrated Blog",
		Relevance:     entity.RelevanceScores{PolicyRelevance: 0.5, SourceReliability: 0.5},
		PublishedDate: pub(now, time.Hour),
	}

	articles := []*entity.Article{news, gov}
	Sort(articles, now)

	assert.Equal(t, "Gov", articles[0].Title)
}

func TestImportance_RecomputesFromSubScoresIndependentlyOfOverall(t *testing.T) {
	a := &entity.Article{Relevance: entity.RelevanceScores{
		PolicyRelevance: 1.0, SourceReliability: 1.0, SectorSpecificity: 1.0, Overall: 0.1,
	}}
	assert.Equal(t, 1.0, Importance(a))
}

func TestSourceTier_SubstringLookupWithDefault(t *testing.T) {
	assert.Equal(t, 1, SourceTier(&entity.Article{Source: "Reserve Bank of India"}))
	assert.Equal(t, 2, SourceTier(&entity.Article{Source: "Centre for Policy Research"}))
	assert.Equal(t, 3, SourceTier(&entity.Article{Source: "The Hindu National"}))
	assert.Equal(t, 4, SourceTier(&entity.Article{Source: "Some Unrated Blog"}))
}

func TestTierBonus(t *testing.T) {
	assert.Equal(t, 1.0, TierBonus(1))
	assert.Equal(t, 0.25, TierBonus(4))
}

func TestTimeliness_SixStepFunction(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1.0, Timeliness(&entity.Article{PublishedDate: pub(now, 3*time.Hour)}, now))
	assert.Equal(t, 0.8, Timeliness(&entity.Article{PublishedDate: pub(now, 12*time.Hour)}, now))
	assert.Equal(t, 0.6, Timeliness(&entity.Article{PublishedDate: pub(now, 48*time.Hour)}, now))
	assert.Equal(t, 0.4, Timeliness(&entity.Article{PublishedDate: pub(now, 120*time.Hour)}, now))
	assert.Equal(t, 0.2, Timeliness(&entity.Article{PublishedDate: pub(now, 300*time.Hour)}, now))
	assert.Equal(t, 0.1, Timeliness(&entity.Article{PublishedDate: pub(now, 400*time.Hour)}, now))
}

func TestTimeliness_NilPublishedDateScoresZero(t *testing.T) {
	a := &entity.Article{}
	assert.Equal(t, 0.0, Timeliness(a, time.Now()))
}
