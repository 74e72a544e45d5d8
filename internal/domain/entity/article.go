// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and Source, along with
// their validation rules and domain-specific errors.
package entity

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
)

// SourceType classifies the publisher of an article for scoring purposes.
type SourceType string

const (
	SourceGovernment SourceType = "government"
	SourceLegal      SourceType = "legal"
	SourceThinkTank  SourceType = "think_tank"
	SourceAcademic   SourceType = "academic"
	SourceBusiness   SourceType = "business"
	SourceNewsMedia  SourceType = "news_media"
	SourceOther      SourceType = "other"
)

// ContentType classifies the editorial shape of an article.
type ContentType string

const (
	ContentAnalysis     ContentType = "analysis"
	ContentNotification ContentType = "notification"
	ContentLegal        ContentType = "legal"
	ContentLegislation  ContentType = "legislation"
	ContentPolicy       ContentType = "policy"
	ContentReport       ContentType = "report"
	ContentInterview    ContentType = "interview"
	ContentNews         ContentType = "news"
)

// Category sentinels used alongside the ~15 curated policy sectors.
const (
	CategoryPolicyNews       = "Policy News"
	CategoryGeneralNews      = "General News"
	CategoryNonPolicyContent = "Non-Policy Content"
	CategorySystemNotice     = "System Notice"
	CategoryPolicyAnalysis   = "Policy Analysis"
)

// genericCategories are reassigned by the classifier when a stronger sector
// signal is found (spec §4.7 sector specificity side effect).
var genericCategories = map[string]bool{
	CategoryPolicyNews:     true,
	CategoryGeneralNews:    true,
	CategoryPolicyAnalysis: true,
}

// IsGenericCategory reports whether cat is eligible for sector reassignment.
func IsGenericCategory(cat string) bool {
	return genericCategories[cat]
}

// DateSource records how Article.PublishedDate was obtained, for diagnostics
// and for the S6 testable property (date_source = "default").
type DateSource string

const (
	DateSourceParsed  DateSource = "parsed"
	DateSourceDefault DateSource = "default"
	DateSourceNone    DateSource = "none"
)

// RelevanceScores holds the five sub-scores and overall computed by the
// classifier (C7) and consumed by the ranker (C11).
type RelevanceScores struct {
	PolicyRelevance   float64 `json:"policy_relevance"`
	SourceReliability float64 `json:"source_reliability"`
	Recency           float64 `json:"recency"`
	SectorSpecificity float64 `json:"sector_specificity"`
	Overall           float64 `json:"overall"`
}

// Metadata carries the structured fields the original implementation kept in
// a dynamically-typed dict (spec §9 design note).
type Metadata struct {
	SourceType  SourceType  `json:"source_type"`
	ContentType ContentType `json:"content_type"`
	WordCount   int         `json:"word_count"`
	DateSource  DateSource  `json:"date_source"`
	DateValid   bool        `json:"date_valid"`
	// Extra holds forward-compatible fields that don't yet warrant a typed
	// column, mirroring the teacher's narrow string-map escape hatch.
	Extra map[string]string `json:"extra,omitempty"`
}

// Article is the unit of work flowing through the pipeline (spec §3).
type Article struct {
	// ContentHash = md5(lower(title) + lower(url)); stable across runs.
	ContentHash string `json:"content_hash"`
	// StorageHash = md5(content_hash + iso_date); store primary key only.
	StorageHash string `json:"storage_hash"`

	Title         string     `json:"title"`
	URL           string     `json:"url"`
	Source        string     `json:"source"`
	Category      string     `json:"category"`
	PublishedDate *time.Time `json:"published_date"`
	Summary       string     `json:"summary"`
	Content       string     `json:"content,omitempty"`

	Tags     []string `json:"tags"`
	Keywords []string `json:"keywords"`

	Relevance RelevanceScores `json:"relevance_scores"`
	Metadata  Metadata        `json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}

// ComputeContentHash returns the deterministic md5 fingerprint over the
// lowercased title and URL (spec §3, testable property 1).
func ComputeContentHash(title, url string) string {
	sum := md5.Sum([]byte(strings.ToLower(title) + strings.ToLower(url)))
	return hex.EncodeToString(sum[:])
}

// ComputeStorageHash derives the store primary key from the content hash and
// an ISO date string, so repeat snapshots of the same article may coexist
// across runs (spec §3).
func ComputeStorageHash(contentHash, isoDate string) string {
	sum := md5.Sum([]byte(contentHash + isoDate))
	return hex.EncodeToString(sum[:])
}

// NormalizedTitle returns the lowercased, whitespace-collapsed title used by
// the deduplicator's title key (C10).
func (a *Article) NormalizedTitle() string {
	return strings.Join(strings.Fields(strings.ToLower(a.Title)), " ")
}

// NormalizedURL strips a trailing slash and fragment for dedupe comparisons.
func NormalizedURL(raw string) string {
	u := strings.TrimSpace(raw)
	if idx := strings.Index(u, "#"); idx >= 0 {
		u = u[:idx]
	}
	return strings.TrimSuffix(u, "/")
}

// Finalize stamps ContentHash, StorageHash and CreatedAt once all pipeline
// stages have populated the article's fields. It is idempotent.
func (a *Article) Finalize(now time.Time) {
	a.ContentHash = ComputeContentHash(a.Title, a.URL)
	isoDate := ""
	if a.PublishedDate != nil {
		isoDate = a.PublishedDate.UTC().Format(time.RFC3339)
	}
	a.StorageHash = ComputeStorageHash(a.ContentHash, isoDate)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
}
