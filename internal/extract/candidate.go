package extract

import "time"

// Candidate is one article-shaped item pulled out of a feed or HTML page,
// before date resolution (C6) and classification (C7) run over it.
type Candidate struct {
	Title       string
	URL         string
	Summary     string
	DateRaw     string
	PublishedAt *time.Time

	// Tier records which selector cascade stage produced this candidate
	// (spec §4.5): "feed", "site_specific", "generic", "heading_anchored",
	// or "keyword_links"; the Google News fallback sets "google_news".
	Tier string
}

// maxFeedCandidates and maxHTMLCandidates cap how many items a single
// source contributes per run (spec §4.5), so one unusually large feed or
// listing page cannot starve the others of their concurrency-budget share.
const (
	maxFeedCandidates = 20
	maxHTMLCandidates = 30
)

func capCandidates(items []Candidate, max int) []Candidate {
	if len(items) <= max {
		return items
	}
	return items[:max]
}
