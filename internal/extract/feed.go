package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

// controlChars strips the stray control characters some Indian government
// feed servers emit inside CDATA blocks, which otherwise make the XML
// decoder give up on an entire feed over a single bad byte (spec §4.5).
var controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)

// ParseFeed parses an RSS/Atom body into candidates, tolerating the kind of
// malformed XML common on government feed endpoints.
func ParseFeed(body []byte) ([]Candidate, error) {
	cleaned := controlChars.ReplaceAll(body, nil)

	parser := gofeed.NewParser()
	feed, err := parser.Parse(bytes.NewReader(cleaned))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]Candidate, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		summary := strings.TrimSpace(item.Description)
		if summary == "" && item.Content != "" {
			summary = strings.TrimSpace(item.Content)
		}

		dateRaw := item.Published
		if dateRaw == "" {
			dateRaw = item.Updated
		}

		items = append(items, Candidate{
			Title:   title,
			URL:     link,
			Summary: summary,
			DateRaw: dateRaw,
			Tier:    "feed",
		})
	}

	return capCandidates(items, maxFeedCandidates), nil
}

// ContentSufficient reports whether a feed item's embedded summary is long
// enough that fetching the full article page (C2+C5 round trip) would add
// little (spec §4.5 content-sufficiency check).
func ContentSufficient(summary string) bool {
	return len(strings.Fields(summary)) >= 60
}
