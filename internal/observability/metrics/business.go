package metrics

import "time"

// RecordSourceFetch records the outcome of a single source fetch (C4).
func RecordSourceFetch(source, outcome string, duration time.Duration) {
	SourceFetchesTotal.WithLabelValues(source, outcome).Inc()
	SourceFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordContentFetchSuccess records a successful full-text content fetch (C2/C5).
func RecordContentFetchSuccess(duration time.Duration, size int) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
	ContentFetchSize.Observe(float64(size))
}

// RecordContentFetchFailed records a failed content fetch.
func RecordContentFetchFailed(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordContentFetchSkipped records a fetch skipped because RSS content was
// already long enough (spec §4.5 content-sufficiency check).
func RecordContentFetchSkipped() {
	ContentFetchAttemptsTotal.WithLabelValues("skipped").Inc()
}

// RecordExtractionTier records which selector cascade tier (spec §4.5)
// produced the extracted article.
func RecordExtractionTier(tier string) {
	ExtractionSelectorTier.WithLabelValues(tier).Inc()
}

// RecordClassification records an article's final category (C7).
func RecordClassification(category string) {
	ArticlesClassifiedTotal.WithLabelValues(category).Inc()
}

// RecordRejection records an article dropped before storage, with the reason.
func RecordRejection(reason string) {
	ArticlesRejectedTotal.WithLabelValues(reason).Inc()
}

// RecordRelevanceScore observes a computed overall relevance score.
func RecordRelevanceScore(score float64) {
	RelevanceScore.Observe(score)
}

// UpdateFeedHealth sets the current health score for a feed (C8).
func UpdateFeedHealth(feed string, score float64) {
	FeedHealthScore.WithLabelValues(feed).Set(score)
}

// RecordFeedDeactivation records a feed crossing the consecutive-failure
// threshold and being marked inactive.
func RecordFeedDeactivation(feed string) {
	FeedDeactivationsTotal.WithLabelValues(feed).Inc()
}

// UpdateArticlesStored sets the current article count (C9).
func UpdateArticlesStored(count int) {
	ArticlesStoredTotal.Set(float64(count))
}

// RecordDuplicateSkipped records a duplicate caught by C10, labeled by
// which detection method caught it.
func RecordDuplicateSkipped(method string) {
	DuplicatesSkippedTotal.WithLabelValues(method).Inc()
}

// RecordDBQuery records the duration of a database operation (C9).
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
