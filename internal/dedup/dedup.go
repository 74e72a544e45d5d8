// Package dedup implements C10: an in-run three-key duplicate check
// (content hash, normalized URL, normalized title) plus an optional
// cross-run Jaccard title-similarity check against recently stored
// articles, for the direct-scrape path where the same story is picked up
// by more than one source with a slightly reworded headline.
package dedup

import (
	"strings"

	"policyradar/internal/domain/entity"
	"policyradar/internal/repository"
)

// similarityThreshold is the Jaccard similarity above which two titles are
// considered the same story (spec §4.10).
const similarityThreshold = 0.8

// Tracker holds the three in-run key sets. It is not safe for concurrent
// use; callers serialize access (the scheduler funnels all candidates
// through a single dedup stage after the concurrent fetch fan-out).
type Tracker struct {
	contentHashes map[string]bool
	urls          map[string]bool
	titles        map[string]bool
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{
		contentHashes: make(map[string]bool),
		urls:          make(map[string]bool),
		titles:        make(map[string]bool),
	}
}

// Method names the key that caught a duplicate, for metrics labeling.
type Method string

const (
	MethodContentHash     Method = "content_hash"
	MethodURL             Method = "url"
	MethodTitleSimilarity Method = "title_similarity"
	MethodNone            Method = ""
)

// Seen checks article against all three in-run keys and, if it is new,
// records it. It returns the method that matched, or MethodNone if the
// article is not a duplicate.
func (t *Tracker) Seen(article *entity.Article) Method {
	if t.contentHashes[article.ContentHash] {
		return MethodContentHash
	}
	normURL := entity.NormalizedURL(article.URL)
	if t.urls[normURL] {
		return MethodURL
	}
	normTitle := article.NormalizedTitle()
	if t.titles[normTitle] {
		return MethodTitleSimilarity
	}

	t.contentHashes[article.ContentHash] = true
	t.urls[normURL] = true
	t.titles[normTitle] = true
	return MethodNone
}

// IsCrossRunDuplicate checks title against a set of recently stored
// (url, title) pairs using Jaccard word-set similarity, for stories a
// prior run already captured under a differently worded headline (spec
// §4.10 optional cross-run check).
func IsCrossRunDuplicate(title string, recent []repository.RecentKey) bool {
	words := wordSet(title)
	if len(words) == 0 {
		return false
	}
	for _, r := range recent {
		if jaccard(words, wordSet(r.Title)) > similarityThreshold {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]bool {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	intersection := 0
	for w := range a {
		if b[w] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
