package entity

import (
	"fmt"
	"strings"
)

// Source is the immutable (display_name, url, default_category) tuple the
// registry (C1) curates, plus optional per-domain overrides (spec §3, §4.1).
type Source struct {
	Name            string
	URL             string
	DefaultCategory string
	SourceType      SourceType

	// Headers are merged onto every request to this source's host (C3/C2).
	Headers map[string]string
	// Cookies are seeded before the first request to this host.
	Cookies map[string]string
	// FallbackURLs are tried, in order, when URL yields zero articles (§4.13).
	FallbackURLs []string
}

// Validate checks that a curated Source entry is well-formed. A non-nil
// return always satisfies errors.Is(err, ErrValidationFailed).
func (s *Source) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: %w", ErrValidationFailed, &ValidationError{Field: "name", Message: "source name is required"})
	}
	if err := ValidateURL(s.URL); err != nil {
		return fmt.Errorf("source %q: %w: %w", s.Name, ErrValidationFailed, err)
	}
	if strings.TrimSpace(s.DefaultCategory) == "" {
		return fmt.Errorf("%w: %w", ErrValidationFailed, &ValidationError{Field: "default_category", Message: "default category is required"})
	}
	return nil
}

// govHostMarkers identifies a source as governmental by name/URL substring
// (glossary: "Government source").
var govHostMarkers = []string{
	".gov.in", ".nic.in", "pib.gov.in", "meity.gov.in", "rbi.org.in",
	"sebi.gov.in", "trai.gov.in", "cci.gov.in", "prsindia.org",
	"parliament", "ministry", "lawmin", "niti.gov.in", "cbic.gov.in",
	"mea.gov.in", "mohfw.gov.in", "moef.gov.in",
}

// IsGovernmentSource reports whether name or url contains a recognized
// government-host marker.
func IsGovernmentSource(name, url string) bool {
	hay := strings.ToLower(name) + " " + strings.ToLower(url)
	for _, m := range govHostMarkers {
		if strings.Contains(hay, m) {
			return true
		}
	}
	return false
}

// ScraperSelectors holds the CSS-selector cascade configuration for an HTML
// source (C5 site-specific cascade tier).
type ScraperSelectors struct {
	HostPattern     string
	ItemSelector    string
	TitleSelector   string
	SummarySelector string
	LinkSelector    string
	DateSelector    string
	DateFormat      string
	URLPrefix       string
}
