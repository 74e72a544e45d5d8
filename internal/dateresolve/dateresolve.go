// Package dateresolve implements the C6 date resolution pipeline: a
// sequence of extraction strategies tried in order, a freshness validation
// window, and source-type-dependent defaults for when every strategy
// fails.
package dateresolve

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"policyradar/internal/domain/entity"
)

// freshnessWindow is how far in the past a resolved date may sit before it
// is considered implausible and discarded (spec §4.6). Future dates are
// bounded separately, by a fixed one-day clock-skew allowance in
// withinFreshnessWindow.
const freshnessWindow = 90 * 24 * time.Hour

// layouts are tried, in order, against any raw date string pulled from a
// feed or HTML page (spec §4.6 strategy 1: known-format parsing).
var layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006",
	"January 2, 2006",
	"02-01-2006",
	"02/01/2006",
}

// relativePattern matches "X days/hours/weeks ago" style strings some
// Indian news sites embed instead of an absolute date (spec §4.6 strategy
// 2: relative-date parsing).
var relativePattern = regexp.MustCompile(`(?i)(\d+)\s*(minute|hour|day|week)s?\s*ago`)

// urlDatePattern matches a /YYYY/MM/DD/ segment in an article URL (spec
// §4.6 strategy 3: URL-embedded date).
var urlDatePattern = regexp.MustCompile(`/(\d{4})/(\d{1,2})/(\d{1,2})/`)

// Resolve runs the ordered strategies against a candidate's raw date
// string and URL, falling back to a source-type-dependent default when
// every strategy fails (spec §4.6 strategy 6).
func Resolve(dateRaw, url string, sourceType entity.SourceType, now time.Time) (*time.Time, entity.DateSource, bool) {
	if t, ok := parseKnownFormat(dateRaw); ok {
		return finalize(t, now)
	}
	if t, ok := parseRelative(dateRaw, now); ok {
		return finalize(t, now)
	}
	if t, ok := parseURLDate(url); ok {
		return finalize(t, now)
	}

	def := defaultFor(sourceType, now)
	return &def, entity.DateSourceDefault, true
}

func finalize(t time.Time, now time.Time) (*time.Time, entity.DateSource, bool) {
	if !withinFreshnessWindow(t, now) {
		def := defaultFor(entity.SourceOther, now)
		return &def, entity.DateSourceDefault, false
	}
	return &t, entity.DateSourceParsed, true
}

// withinFreshnessWindow reports whether t falls within the plausible
// range: not more than 90 days in the past, and not more than a day in the
// future (spec §4.6, testable property: dates are rejected outside the
// freshness window).
func withinFreshnessWindow(t, now time.Time) bool {
	if t.After(now.Add(24 * time.Hour)) {
		return false
	}
	if t.Before(now.Add(-freshnessWindow)) {
		return false
	}
	return true
}

func parseKnownFormat(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseRelative(raw string, now time.Time) (time.Time, bool) {
	m := relativePattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	unit := strings.ToLower(m[2])

	var d time.Duration
	switch unit {
	case "minute":
		d = time.Duration(n) * time.Minute
	case "hour":
		d = time.Duration(n) * time.Hour
	case "day":
		d = time.Duration(n) * 24 * time.Hour
	case "week":
		d = time.Duration(n) * 7 * 24 * time.Hour
	default:
		return time.Time{}, false
	}
	return now.Add(-d), true
}

func parseURLDate(rawURL string) (time.Time, bool) {
	m := urlDatePattern.FindStringSubmatch(rawURL)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if year < 2000 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// defaultFor returns the source-type-dependent default publish time used
// when no strategy resolves a date (spec §4.6 strategy 6): government
// sources default to 12 hours ago (they publish same-day), major news
// media to 6 hours ago, everything else to 7 days ago.
func defaultFor(sourceType entity.SourceType, now time.Time) time.Time {
	switch sourceType {
	case entity.SourceGovernment:
		return now.Add(-12 * time.Hour)
	case entity.SourceNewsMedia:
		return now.Add(-6 * time.Hour)
	default:
		return now.Add(-7 * 24 * time.Hour)
	}
}
