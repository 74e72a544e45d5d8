// Package govsite holds the per-host request shaping needed to fetch
// Indian government sites reliably (C3): dispatch by host to header/cookie
// presets, an optional per-host URL rewrite hook (no preset in the dispatch
// table sets one), and a generic fallback for any unrecognized .gov.in /
// .nic.in / parliament host.
package govsite

import (
	"net/url"
	"strings"

	"policyradar/internal/httpclient"
)

// Handler describes how to talk to one government host.
type Handler struct {
	Headers map[string]string
	Cookies map[string]string
	// Rewrite transforms a source URL before it is fetched (e.g. swapping an
	// AMP or mobile path for the canonical one). nil means no rewrite.
	Rewrite func(rawURL string) string
}

// dispatch maps a host substring to its handling preset. Map iteration
// order is unspecified; no key is a substring of another, so a host
// reaches the same preset whichever key is tried first.
var dispatch = map[string]Handler{
	"pib.gov.in": {
		Headers: map[string]string{"Referer": "https://pib.gov.in/"},
	},
	"rbi.org.in": {
		Headers: map[string]string{
			"Referer": "https://rbi.org.in/",
			"Accept":  "text/html,application/xhtml+xml",
		},
	},
	"trai.gov.in": {
		Headers: map[string]string{"Referer": "https://www.trai.gov.in/"},
	},
	"meity.gov.in": {
		Headers: map[string]string{"Referer": "https://www.meity.gov.in/"},
	},
	"sansad.in": {
		Headers: map[string]string{"Referer": "https://sansad.in/"},
	},
}

// genericGovMarkers flags any host not in the dispatch table but
// recognizable as a government site (glossary: "Government source").
var genericGovMarkers = []string{".gov.in", ".nic.in", "parliament", "sansad.in"}

// IsGovernmentHost reports whether host looks like an Indian government
// site by domain pattern, independent of the curated registry's name/URL
// heuristic (entity.IsGovernmentSource).
func IsGovernmentHost(host string) bool {
	h := strings.ToLower(host)
	for _, m := range genericGovMarkers {
		if strings.Contains(h, m) {
			return true
		}
	}
	return false
}

// ForHost returns the handler preset for host, falling back to a generic
// government preset when the host matches no specific entry but is
// recognized as a government domain, or an empty Handler otherwise.
func ForHost(host string) Handler {
	h := strings.ToLower(host)
	for key, handler := range dispatch {
		if strings.Contains(h, key) {
			return handler
		}
	}
	if IsGovernmentHost(h) {
		return Handler{
			Headers: map[string]string{"Accept-Language": "en-IN,en;q=0.9"},
		}
	}
	return Handler{}
}

// RequestHeaders builds an httpclient.Headers value from a Handler preset,
// merging in a rotated user agent.
func (h Handler) RequestHeaders() httpclient.Headers {
	return httpclient.Headers{
		UserAgent: httpclient.RandomUserAgent(),
		Extra:     h.Headers,
		Cookies:   h.Cookies,
	}
}

// ResolveURL applies the handler's rewrite rule, if any, returning rawURL
// unchanged otherwise.
func (h Handler) ResolveURL(rawURL string) string {
	if h.Rewrite == nil {
		return rawURL
	}
	return h.Rewrite(rawURL)
}

// Host extracts the lowercased hostname from a URL, or "" if it does not
// parse. Callers use this to key into ForHost and the per-domain politeness
// token bucket.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// SecurityTier classifies a host into the three politeness tiers spec §4.3
// assigns: high-security regulators get the longest delay, other
// government hosts a medium delay, everything else the shortest.
type SecurityTier int

const (
	TierHighSecurity SecurityTier = iota
	TierGovernment
	TierStandard
)

// highSecurityHosts are regulators known to rate-limit or block aggressively
// (spec §4.3: "3-5s for hardened regulators").
var highSecurityHosts = []string{"sebi.gov.in", "rbi.org.in", "trai.gov.in", "cci.gov.in"}

// Tier classifies host into a politeness tier.
func Tier(host string) SecurityTier {
	h := strings.ToLower(host)
	for _, hs := range highSecurityHosts {
		if strings.Contains(h, hs) {
			return TierHighSecurity
		}
	}
	if IsGovernmentHost(h) {
		return TierGovernment
	}
	return TierStandard
}
