package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"policyradar/internal/utils/text"
)

// FullText runs Mozilla Readability-style extraction over an HTML article
// page, returning the cleaned title and body text (spec §4.5 full-text
// fallback for feed items whose embedded summary is too short).
func FullText(pageURL string, body []byte) (title, content string, err error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", "", fmt.Errorf("parse page url: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		return "", "", fmt.Errorf("extract readable content: %w", err)
	}

	bodyText := strings.TrimSpace(article.TextContent)
	// Rune count, not byte count: many curated sources publish in Hindi and
	// other Devanagari-script languages, where byte length overstates how
	// much content is actually there.
	if IsOrganizationalContent(bodyText) && text.CountRunes(bodyText) < 500 {
		return "", "", fmt.Errorf("extracted content looks like boilerplate")
	}

	return strings.TrimSpace(article.Title), bodyText, nil
}
