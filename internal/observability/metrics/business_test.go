package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordSourceFetch(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		outcome  string
		duration time.Duration
	}{
		{name: "success", source: "Press Information Bureau", outcome: "success", duration: 2 * time.Second},
		{name: "failure", source: "Empty Source", outcome: "failure", duration: 500 * time.Millisecond},
		{name: "skipped", source: "Inactive Source", outcome: "skipped", duration: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordSourceFetch(tt.source, tt.outcome, tt.duration)
			})
		})
	}
}

func TestRecordContentFetch(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordContentFetchSuccess(200*time.Millisecond, 4096)
		RecordContentFetchFailed(1 * time.Second)
		RecordContentFetchSkipped()
	})
}

func TestRecordExtractionTier(t *testing.T) {
	for _, tier := range []string{"site_specific", "generic", "heading_anchored", "keyword_links"} {
		assert.NotPanics(t, func() {
			RecordExtractionTier(tier)
		})
	}
}

func TestRecordClassificationAndRejection(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordClassification("Technology Policy")
		RecordRejection("below_threshold")
		RecordRejection("duplicate")
		RecordRelevanceScore(0.73)
	})
}

func TestFeedHealthMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		UpdateFeedHealth("https://pib.gov.in/rss.xml", 0.92)
		RecordFeedDeactivation("https://dead-feed.example.com/rss")
	})
}

func TestStorageMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		UpdateArticlesStored(1200)
		RecordDuplicateSkipped("content_hash")
		RecordDuplicateSkipped("title_similarity")
		RecordDBQuery("insert_article", 5*time.Millisecond)
	})
}

func TestMetricsFunctions_AllCallable(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordSourceFetch("Test Source", "success", time.Second)
		RecordContentFetchSuccess(100*time.Millisecond, 2048)
		RecordExtractionTier("generic")
		RecordClassification("Economic Policy")
		RecordRejection("entertainment_url")
		RecordRelevanceScore(0.5)
		UpdateFeedHealth("https://example.com/feed", 1.0)
		RecordFeedDeactivation("https://example.com/feed")
		UpdateArticlesStored(10)
		RecordDuplicateSkipped("url")
		RecordDBQuery("select_articles", 10*time.Millisecond)
	})
}
