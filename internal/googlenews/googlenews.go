// Package googlenews implements C13: the Google News RSS fallback used
// when the curated registry's direct feeds fall short, or as a
// supplementary source run on every pass. It issues a fixed set of
// curated, India-scoped search queries against news.google.com/rss/search.
package googlenews

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/url"
	"time"

	"policyradar/internal/domain/entity"
	"policyradar/internal/extract"
	"policyradar/internal/httpclient"
	"policyradar/internal/resilience/circuitbreaker"
)

const baseEndpoint = "https://news.google.com/rss/search"

// maxArticles caps the total number of candidates C13 contributes in one
// run, regardless of how many queries are curated (spec §4.13).
const maxArticles = 150

// interQueryDelayMin/Max bound the sleep between successive Google News
// queries, distinct from the per-host politeness limiter since all queries
// share one host (spec §4.13: "0.5-1.0s inter-query sleep").
const (
	interQueryDelayMin = 500 * time.Millisecond
	interQueryDelayMax = 1000 * time.Millisecond
)

// queries is the curated set of India-scoped policy search terms (spec
// §4.13). Each is paired with a category, which runQuery receives but does
// not attach to the candidates it returns: the orchestrator gives every
// Google News item the Policy News default, and C7 may reassign it.
var queries = []struct {
	Term     string
	Category string
}{
	{"India policy government", entity.CategoryPolicyNews},
	{"India legislation law regulation", "Constitutional & Legal"},
	{"India economic policy budget finance", "Economic Policy"},
	{"India technology policy digital", "Technology Policy"},
	{"India healthcare policy medical", "Healthcare Policy"},
	{"India environment policy climate", "Environmental Policy"},
	{"India education policy school university", "Education Policy"},
	{"India agriculture policy farmer", "Agricultural Policy"},
	{"India energy policy power", "Energy Policy"},
	{"India defense security policy", "Defense & Security"},
	{"India foreign policy diplomacy", "Foreign Policy"},
	{"India RBI monetary policy", "Economic Policy"},
	{"India Supreme Court ruling", "Constitutional & Legal"},
	{"India parliament bill passed", "Governance & Administration"},
	{"India cabinet decision", "Governance & Administration"},
	{"India data protection privacy", "Technology Policy"},
	{"India urban development smart city", "Urban Development Policy"},
	{"India social welfare scheme", "Social Welfare Policy"},
	{"India GST tax reform", "Economic Policy"},
	{"India telecom spectrum policy", "Technology Policy"},
	{"India space ISRO policy", "Science & Technology Policy"},
	{"India labour law reform", "Social Welfare Policy"},
	{"India trade policy tariff", "Economic Policy"},
	{"India election commission", "Governance & Administration"},
	{"India judiciary reform", "Constitutional & Legal"},
}

// Fetcher issues the curated Google News queries through the shared HTTP
// pool and the C13-specific circuit breaker.
type Fetcher struct {
	pool     *httpclient.Pool
	breaker  *circuitbreaker.CircuitBreaker
	logger   *slog.Logger
	endpoint string
}

// New returns a Fetcher using pool for transport.
func New(pool *httpclient.Pool, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		pool:     pool,
		breaker:  circuitbreaker.New(circuitbreaker.GoogleNewsConfig()),
		logger:   logger,
		endpoint: baseEndpoint,
	}
}

// FetchAll runs every curated query in sequence (Google News rate-limits
// aggressively enough that concurrent queries from one IP are
// counterproductive), capping the combined result at maxArticles.
func (f *Fetcher) FetchAll(ctx context.Context) ([]extract.Candidate, error) {
	var all []extract.Candidate

	for i, q := range queries {
		if len(all) >= maxArticles {
			f.logger.Info("google news cap reached", slog.Int("remaining_queries", len(queries)-i))
			break
		}

		items, err := f.breaker.Execute(func() (any, error) {
			return f.runQuery(ctx, q.Term, q.Category)
		})
		if err != nil {
			f.logger.Warn("google news query failed", slog.String("query", q.Term), slog.String("error", err.Error()))
			continue
		}
		all = append(all, items.([]extract.Candidate)...)

		if i < len(queries)-1 {
			delay := interQueryDelayMin + time.Duration(rand.Int63n(int64(interQueryDelayMax-interQueryDelayMin)))
			select {
			case <-ctx.Done():
				return all, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	if len(all) > maxArticles {
		all = all[:maxArticles]
	}
	return all, nil
}

func (f *Fetcher) runQuery(ctx context.Context, term, category string) ([]extract.Candidate, error) {
	endpoint := fmt.Sprintf("%s?q=%s&hl=en-IN&gl=IN&ceid=IN:en", f.endpoint, url.QueryEscape(term))

	res, err := f.pool.Get(ctx, "news.google.com", endpoint, httpclient.Headers{})
	if err != nil {
		return nil, fmt.Errorf("fetch google news query %q: %w", term, err)
	}

	items, err := extract.ParseFeed(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse google news query %q: %w", term, err)
	}

	for i := range items {
		items[i].Tier = "google_news"
	}
	_ = category // informational default; C7 re-scores and may reassign it
	return items, nil
}
