// Package orchestrator wires the C1-C13 pipeline stages into a single
// scrape-classify-store-render run. When direct sources yield nothing it
// falls back to Google News (§4.13); it has no cache fallback step.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"policyradar/internal/classify"
	"policyradar/internal/config"
	"policyradar/internal/dateresolve"
	"policyradar/internal/dedup"
	"policyradar/internal/domain/entity"
	"policyradar/internal/feedhealth"
	"policyradar/internal/googlenews"
	"policyradar/internal/httpclient"
	"policyradar/internal/observability/metrics"
	"policyradar/internal/rank"
	"policyradar/internal/ratelimit"
	"policyradar/internal/registry"
	"policyradar/internal/repository"
	"policyradar/internal/runid"
	"policyradar/internal/scheduler"
)

// Dependencies bundles everything the orchestrator needs, constructed once
// in cmd/radar and threaded through.
type Dependencies struct {
	Config     *config.Config
	Logger     *slog.Logger
	Registry   *registry.Registry
	Pool       *httpclient.Pool
	Limiter    *ratelimit.Limiter
	Health     *feedhealth.Monitor
	Articles   repository.ArticleRepository
	Sources    repository.SourceRepository
	GoogleNews *googlenews.Fetcher

	// SkipHealthFilter disables feed-health filtering so every curated
	// source is attempted regardless of its recent failure history
	// (the CLI's --fresh flag).
	SkipHealthFilter bool
}

// RunStats summarizes one pass for logging and the --test CLI flag.
type RunStats struct {
	RunID              string
	SourcesAttempted   int
	CandidatesFound    int
	ArticlesStored     int
	DuplicatesFound    int
	BelowThreshold     int
	Started            time.Time
	Finished           time.Time
	UsedGoogleNewsOnly bool
}

// Run executes one full scrape pass: fetch (C1-C5), date-resolve (C6),
// classify (C7), dedup (C10), store (C9), and rank (C11). Rendering (C12)
// is the caller's responsibility once Run returns the stored articles.
//
// Per spec §4.13/§7, a failure in any one source never aborts the run —
// only a failure of the scheduler itself (context cancellation, panic
// recovery aside) does, and even then Run returns whatever was gathered
// rather than an error, so cmd/radar can always exit 0 with partial
// output.
func (d *Dependencies) Run(ctx context.Context, maxArticles int) ([]*entity.Article, RunStats, error) {
	runID := runid.New()
	ctx = runid.WithRunID(ctx, runID)
	stats := RunStats{RunID: runID, Started: time.Now()}

	sources := d.Registry.ListSources()
	activeURLs := make([]string, 0, len(sources))
	for _, s := range sources {
		activeURLs = append(activeURLs, s.URL)
	}
	activeSet := activeURLs
	if !d.SkipHealthFilter {
		var err error
		activeSet, err = d.Health.ActiveFeeds(ctx, activeURLs, stats.Started)
		if err != nil {
			d.Logger.Warn("feed health lookup failed, treating all sources as active", slog.String("error", err.Error()), slog.String("run_id", runID))
			activeSet = activeURLs
		}
	}
	activeSources := filterActive(sources, activeSet)
	stats.SourcesAttempted = len(activeSources)
	metrics.SourcesTotal.Set(float64(len(activeSources)))

	sched := scheduler.New(scheduler.DefaultConfig(d.Config.CI), d.Pool, d.Limiter, d.Health, d.Logger)
	items, err := sched.Run(ctx, activeSources)
	if err != nil {
		d.Logger.Error("scheduler run failed", slog.String("error", err.Error()), slog.String("run_id", runID))
	}

	if len(items) == 0 {
		d.Logger.Warn("direct sources yielded nothing, falling back to google news", slog.String("run_id", runID))
		stats.UsedGoogleNewsOnly = true
		items = d.googleNewsFallback(ctx)
	}
	stats.CandidatesFound = len(items)

	recentKeys, err := d.Articles.RecentKeys(ctx, stats.Started.Add(-48*time.Hour))
	if err != nil {
		d.Logger.Warn("could not load recent keys for cross-run dedup", slog.String("error", err.Error()))
	}

	tracker := dedup.New()
	var articles []*entity.Article

	for _, item := range items {
		article := d.classifyItem(item, stats.Started)
		if article == nil {
			continue
		}

		if dedup.IsCrossRunDuplicate(article.Title, recentKeys) {
			stats.DuplicatesFound++
			metrics.RecordDuplicateSkipped("title_similarity")
			continue
		}
		if method := tracker.Seen(article); method != dedup.MethodNone {
			stats.DuplicatesFound++
			metrics.RecordDuplicateSkipped(string(method))
			continue
		}

		if article.Relevance.Overall < d.Config.RelevanceThreshold {
			stats.BelowThreshold++
			metrics.RecordRejection("below_threshold")
			continue
		}

		articles = append(articles, article)
		metrics.RecordClassification(article.Category)
		metrics.RecordRelevanceScore(article.Relevance.Overall)
	}

	rank.Sort(articles, stats.Started)
	if maxArticles > 0 && len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}

	for _, a := range articles {
		if err := d.Articles.Insert(ctx, a); err != nil {
			d.Logger.Error("store article failed", slog.String("url", a.URL), slog.String("error", err.Error()))
			continue
		}
		stats.ArticlesStored++
	}
	metrics.UpdateArticlesStored(stats.ArticlesStored)

	stats.Finished = time.Now()
	return articles, stats, nil
}

func (d *Dependencies) googleNewsFallback(ctx context.Context) []scheduler.Item {
	if d.GoogleNews == nil {
		return nil
	}
	candidates, err := d.GoogleNews.FetchAll(ctx)
	if err != nil {
		d.Logger.Error("google news fallback failed", slog.String("error", err.Error()))
		return nil
	}

	fallbackSource := &entity.Source{
		Name:            "Google News",
		URL:             "https://news.google.com/rss/search",
		DefaultCategory: entity.CategoryPolicyNews,
		SourceType:      entity.SourceNewsMedia,
	}

	items := make([]scheduler.Item, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, scheduler.Item{Source: fallbackSource, Candidate: c})
	}
	return items
}

// classifyItem runs date resolution (C6) and classification (C7) over one
// scheduler item, returning a finalized Article or nil if content fetch
// produced nothing usable.
func (d *Dependencies) classifyItem(item scheduler.Item, now time.Time) *entity.Article {
	c := item.Candidate
	source := item.Source

	published, dateSource, dateValid := dateresolve.Resolve(c.DateRaw, c.URL, source.SourceType, now)

	input := classify.Input{
		Title:      c.Title,
		Summary:    c.Summary,
		Category:   source.DefaultCategory,
		SourceType: source.SourceType,
		SourceName: source.Name,
		Published:  published,
		Now:        now,
	}
	score := classify.Compute(input)
	tags := classify.AssignTags(input, score)

	article := &entity.Article{
		Title:         c.Title,
		URL:           c.URL,
		Source:        source.Name,
		Category:      score.Category,
		PublishedDate: published,
		Summary:       c.Summary,
		Tags:          tags,
		Relevance:     score.RelevanceScores,
		Metadata: entity.Metadata{
			SourceType:  source.SourceType,
			ContentType: entity.ContentNews,
			WordCount:   wordCount(c.Summary),
			DateSource:  dateSource,
			DateValid:   dateValid,
		},
	}
	article.Finalize(now)
	return article
}

func filterActive(sources []*entity.Source, activeURLs []string) []*entity.Source {
	active := make(map[string]bool, len(activeURLs))
	for _, u := range activeURLs {
		active[u] = true
	}
	var out []*entity.Source
	for _, s := range sources {
		if active[s.URL] {
			out = append(out, s)
		}
	}
	return out
}

func wordCount(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		isSpace := r == ' ' || r == '\n' || r == '\t'
		if !isSpace && !inWord {
			n++
			inWord = true
		} else if isSpace {
			inWord = false
		}
	}
	return n
}
