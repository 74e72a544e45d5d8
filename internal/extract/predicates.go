package extract

import "strings"

// entertainmentPathMarkers flags URLs that belong to sections no policy
// reader cares about, even on an otherwise-curated source (spec §4.5/§4.7
// entertainment-URL predicate).
var entertainmentPathMarkers = []string{
	"/entertainment/", "/bollywood/", "/movie-review", "/movies/",
	"/cricket/", "/sports/", "/celebrity", "/tv/", "/web-series",
	"/horoscope", "/lifestyle/fashion", "/food/recipe",
}

// IsEntertainmentURL reports whether url's path marks it as entertainment
// or lifestyle content, independent of its source's usual category.
func IsEntertainmentURL(rawURL string) bool {
	u := strings.ToLower(rawURL)
	for _, marker := range entertainmentPathMarkers {
		if strings.Contains(u, marker) {
			return true
		}
	}
	return false
}

// organizationalMarkers are boilerplate phrases that indicate an extracted
// block is site furniture (cookie notice, subscription pitch, footer) and
// not the article body (spec §4.5 organizational-content predicate), used
// to reject a selector-cascade match that only grabbed navigation text.
var organizationalMarkers = []string{
	"all rights reserved", "terms of service", "privacy policy",
	"subscribe to our newsletter", "cookie policy", "follow us on",
	"download the app", "sign up for our",
}

// IsOrganizationalContent reports whether text reads like site boilerplate
// rather than article content.
func IsOrganizationalContent(text string) bool {
	t := strings.ToLower(text)
	for _, marker := range organizationalMarkers {
		if strings.Contains(t, marker) {
			return true
		}
	}
	return false
}
