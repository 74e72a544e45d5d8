// Package registry is the source-of-truth for the curated feed and site
// list (C1): the ~200 Indian policy-news sources hand-picked for
// reliability and sector coverage, plus the static blacklist C4 consults
// before ever spending a fetch on a source known to be spam, dead, or
// otherwise unfit to publish.
package registry

import (
	"fmt"
	"log/slog"
	"strings"

	"policyradar/internal/domain/entity"
)

// blacklistedNameSubstrings is the static, compile-time blacklist (spec
// §4.1): any curated or ad hoc source whose display name contains one of
// these substrings is never fetched or emitted, regardless of how it
// entered the registry. Curated, not derived from runtime failures — C8's
// feed-health monitor already handles sources that merely go stale.
var blacklistedNameSubstrings = []string{
	"clickbait",
	"content farm",
	"aggregator spam",
	"press release mill",
}

// Registry is safe for concurrent use: it is built once at startup and
// read from many goroutines during a run, but never mutated afterward.
type Registry struct {
	sources []*entity.Source
}

// New returns a Registry seeded with the curated source list. Entries that
// fail entity.Source.Validate (malformed URL, SSRF-unsafe host, missing
// category) are dropped and logged rather than aborting startup — a bad
// curated entry should never be the reason a run fails to start.
func New(logger *slog.Logger) *Registry {
	all := curatedSources()
	sources := make([]*entity.Source, 0, len(all))
	for _, s := range all {
		if err := s.Validate(); err != nil {
			if logger != nil {
				logger.Warn("dropping invalid curated source", slog.String("name", s.Name), slog.Any("error", err))
			}
			continue
		}
		sources = append(sources, s)
	}
	return &Registry{sources: sources}
}

// NewWithSources returns a Registry seeded with an explicit source list,
// for tests and for cmd/radar's --max-feeds cap.
func NewWithSources(sources []*entity.Source) *Registry {
	return &Registry{sources: sources}
}

// IsBlacklisted reports whether a source name contains a blacklisted
// substring (spec §4.1 testable property: "entries whose source name
// contains a blacklist string must never be fetched or emitted").
func IsBlacklisted(name string) bool {
	lower := strings.ToLower(name)
	for _, bad := range blacklistedNameSubstrings {
		if strings.Contains(lower, bad) {
			return true
		}
	}
	return false
}

// Blacklist returns the static set of blacklisted name substrings.
func Blacklist() []string {
	out := make([]string, len(blacklistedNameSubstrings))
	copy(out, blacklistedNameSubstrings)
	return out
}

// ListSources returns every curated source not matched by the static
// blacklist.
func (r *Registry) ListSources() []*entity.Source {
	out := make([]*entity.Source, 0, len(r.sources))
	for _, s := range r.sources {
		if !IsBlacklisted(s.Name) {
			out = append(out, s)
		}
	}
	return out
}

// All returns every curated source, including blacklisted ones, for
// diagnostics and the health dashboard.
func (r *Registry) All() []*entity.Source {
	out := make([]*entity.Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Get looks up a curated source by exact name, including blacklisted ones.
// It returns entity.ErrNotFound (wrapped) when no source matches.
func (r *Registry) Get(name string) (*entity.Source, error) {
	for _, s := range r.sources {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("source %q: %w", name, entity.ErrNotFound)
}

// Count returns the number of active (non-blacklisted) sources.
func (r *Registry) Count() int {
	return len(r.ListSources())
}

// ByCategory groups the active sources by their default category.
func (r *Registry) ByCategory() map[string][]*entity.Source {
	grouped := make(map[string][]*entity.Source)
	for _, s := range r.sources {
		if IsBlacklisted(s.Name) {
			continue
		}
		grouped[s.DefaultCategory] = append(grouped[s.DefaultCategory], s)
	}
	return grouped
}
