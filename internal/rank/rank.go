// Package rank implements C11: the importance/timeliness/source-tier
// composite score used to sort the day's articles before C12 renders them,
// independent of the C7 relevance threshold used to decide what gets
// stored at all.
package rank

import (
	"sort"
	"strings"
	"time"

	"policyradar/internal/domain/entity"
)

// tierMarkers is the substring-based source-tier lookup (spec §4.11
// source_tier): Tier 1 official regulators/ministries, Tier 2 specialized
// policy outlets, Tier 3 major media, Tier 4 everything else (the
// default). Checked in order, first match wins.
var tierMarkers = []struct {
	marker string
	tier   int
}{
	{"press information bureau", 1},
	{"ministry", 1},
	{"reserve bank", 1},
	{"trai", 1},
	{"department of telecommunications", 1},
	{"meity", 1},

	{"prs legislative", 2},
	{"observer research foundation", 2},
	{"centre for policy research", 2},
	{"carnegie india", 2},
	{"bar and bench", 2},
	{"livelaw", 2},
	{"medianama", 2},
	{"internet freedom foundation", 2},

	{"the hindu", 3},
	{"indian express", 3},
	{"times of india", 3},
	{"reuters", 3},
	{"bbc", 3},
	{"business standard", 3},
	{"economic times", 3},
	{"mint", 3},
	{"livemint", 3},
	{"the print", 3},
	{"scroll", 3},
	{"al jazeera", 3},
	{"pti", 3},
}

// SourceTier returns the article's source tier in {1..4} by substring match
// on the source name, defaulting to 4 (spec §4.11).
func SourceTier(a *entity.Article) int {
	name := strings.ToLower(a.Source)
	for _, m := range tierMarkers {
		if strings.Contains(name, m.marker) {
			return m.tier
		}
	}
	return 4
}

// TierBonus converts a tier into the bonus added to the composite score
// (spec §4.11: tier_bonus = (5 - tier) / 4).
func TierBonus(tier int) float64 {
	return float64(5-tier) / 4
}

// Importance recomputes a distinct weighted sum from the article's sub-
// scores (spec §4.11): ranking deliberately does not reuse C7's Overall,
// since the ranker weights the same three sub-scores differently than the
// relevance gate does.
func Importance(a *entity.Article) float64 {
	r := a.Relevance
	return 0.4*r.PolicyRelevance + 0.3*r.SourceReliability + 0.3*r.SectorSpecificity
}

// Timeliness scores how recently an article was published via the six-step
// function (spec §4.11): 1.0/0.8/0.6/0.4/0.2/0.1 at 6h/24h/72h/168h/336h,
// 0.0 when no date resolved at all.
func Timeliness(a *entity.Article, now time.Time) float64 {
	if a.PublishedDate == nil {
		return 0
	}
	age := now.Sub(*a.PublishedDate)
	if age < 0 {
		age = 0
	}
	hours := age.Hours()
	switch {
	case hours <= 6:
		return 1.0
	case hours <= 24:
		return 0.8
	case hours <= 72:
		return 0.6
	case hours <= 168:
		return 0.4
	case hours <= 336:
		return 0.2
	default:
		return 0.1
	}
}

// CompositeScore combines importance, timeliness, and tier bonus into the
// single number used for the final sort (spec §4.11).
func CompositeScore(a *entity.Article, now time.Time) float64 {
	return 0.6*Importance(a) + 0.3*Timeliness(a, now) + 0.1*TierBonus(SourceTier(a))
}

// Sort orders articles descending by composite score, breaking ties by
// published date (most recent first) for deterministic output.
func Sort(articles []*entity.Article, now time.Time) {
	scores := make(map[*entity.Article]float64, len(articles))
	for _, a := range articles {
		scores[a] = CompositeScore(a, now)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		si, sj := scores[articles[i]], scores[articles[j]]
		if si != sj {
			return si > sj
		}
		di, dj := articles[i].PublishedDate, articles[j].PublishedDate
		if di == nil || dj == nil {
			return di != nil
		}
		return di.After(*dj)
	})
}
