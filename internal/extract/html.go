package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"policyradar/internal/domain/entity"
)

// siteSelectors is the site-specific tier of the cascade, expressed as data
// rather than per-host code (spec §9 design note) so a new government
// portal only needs a table row, not a new Go file.
var siteSelectors = []entity.ScraperSelectors{
	{
		HostPattern:   "pib.gov.in",
		ItemSelector:  "div.content-area ul li",
		TitleSelector: "a",
		LinkSelector:  "a",
	},
	{
		HostPattern:   "meity.gov.in",
		ItemSelector:  "table.table tr",
		TitleSelector: "td a",
		LinkSelector:  "td a",
	},
	{
		HostPattern:   "trai.gov.in",
		ItemSelector:  "div.views-row",
		TitleSelector: "span.field-content a",
		LinkSelector:  "span.field-content a",
		DateSelector:  "span.date-display-single",
	},
}

// genericItemSelectors is the generic tier: common listing-page shapes that
// work across most news and government sites without per-host tuning.
var genericItemSelectors = []string{
	"article",
	"div.article-item",
	"div.news-item",
	"li.post",
	"div.views-row",
}

// headingSelectors is the heading-anchored tier: when no listing structure
// matches, fall back to anchors sitting directly under a heading tag.
var headingSelectors = []string{"h1 a", "h2 a", "h3 a"}

// keywordLinkTerms is the final, loosest tier: any anchor whose own text
// contains a policy-signal keyword is treated as a candidate headline.
var keywordLinkTerms = []string{
	"policy", "notification", "circular", "gazette", "bill", "act",
	"regulation", "ministry", "government", "parliament", "budget",
	"scheme", "guideline",
}

// SelectorsFor returns the site-specific selector entry for host, or nil if
// none is curated.
func SelectorsFor(host string) *entity.ScraperSelectors {
	h := strings.ToLower(host)
	for i := range siteSelectors {
		if strings.Contains(h, siteSelectors[i].HostPattern) {
			return &siteSelectors[i]
		}
	}
	return nil
}

// ExtractHTML runs the four-tier selector cascade over an HTML listing page
// and returns whichever tier first yields candidates (spec §4.5).
func ExtractHTML(baseURL string, body []byte, host string) ([]Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	if sel := SelectorsFor(host); sel != nil {
		if items := extractBySelectors(doc, baseURL, *sel); len(items) > 0 {
			return capCandidates(tag(items, "site_specific"), maxHTMLCandidates), nil
		}
	}

	for _, itemSel := range genericItemSelectors {
		sel := entity.ScraperSelectors{ItemSelector: itemSel, TitleSelector: "a", LinkSelector: "a"}
		if items := extractBySelectors(doc, baseURL, sel); len(items) > 0 {
			return capCandidates(tag(items, "generic"), maxHTMLCandidates), nil
		}
	}

	var headingItems []Candidate
	for _, hs := range headingSelectors {
		doc.Find(hs).Each(func(_ int, s *goquery.Selection) {
			if c, ok := candidateFromAnchor(s, baseURL); ok {
				headingItems = append(headingItems, c)
			}
		})
	}
	if len(headingItems) > 0 {
		return capCandidates(tag(headingItems, "heading_anchored"), maxHTMLCandidates), nil
	}

	var keywordItems []Candidate
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		if text == "" {
			return
		}
		for _, kw := range keywordLinkTerms {
			if strings.Contains(text, kw) {
				if c, ok := candidateFromAnchor(s, baseURL); ok {
					keywordItems = append(keywordItems, c)
				}
				break
			}
		}
	})
	return capCandidates(tag(keywordItems, "keyword_links"), maxHTMLCandidates), nil
}

func tag(items []Candidate, tier string) []Candidate {
	for i := range items {
		items[i].Tier = tier
	}
	return items
}

func extractBySelectors(doc *goquery.Document, baseURL string, sel entity.ScraperSelectors) []Candidate {
	var items []Candidate
	doc.Find(sel.ItemSelector).Each(func(_ int, s *goquery.Selection) {
		titleSel := s
		if sel.TitleSelector != "" {
			titleSel = s.Find(sel.TitleSelector).First()
		}
		linkSel := s
		if sel.LinkSelector != "" {
			linkSel = s.Find(sel.LinkSelector).First()
		}

		title := strings.TrimSpace(titleSel.Text())
		href, exists := linkSel.Attr("href")
		if !exists || title == "" {
			return
		}

		resolved := resolveURL(baseURL, href)
		if resolved == "" {
			return
		}

		dateRaw := ""
		if sel.DateSelector != "" {
			dateRaw = strings.TrimSpace(s.Find(sel.DateSelector).First().Text())
		}

		items = append(items, Candidate{Title: title, URL: resolved, DateRaw: dateRaw})
	})
	return items
}

func candidateFromAnchor(s *goquery.Selection, baseURL string) (Candidate, bool) {
	title := strings.TrimSpace(s.Text())
	href, exists := s.Attr("href")
	if !exists || title == "" {
		return Candidate{}, false
	}
	resolved := resolveURL(baseURL, href)
	if resolved == "" {
		return Candidate{}, false
	}
	return Candidate{Title: title, URL: resolved}, true
}

func resolveURL(baseURL, href string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
