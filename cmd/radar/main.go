package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"policyradar/internal/config"
	"policyradar/internal/domain/entity"
	"policyradar/internal/feedhealth"
	"policyradar/internal/googlenews"
	"policyradar/internal/health"
	"policyradar/internal/httpclient"
	"policyradar/internal/orchestrator"
	"policyradar/internal/ratelimit"
	"policyradar/internal/registry"
	"policyradar/internal/render"
	"policyradar/internal/repository"
	"policyradar/internal/resilience/circuitbreaker"
	"policyradar/internal/store"
)

// flags mirrors the CLI surface PolicyRadar exposes for one-shot and
// scheduled operation (spec §6).
type flags struct {
	workers     int
	output      string
	debug       bool
	search      string
	filter      string
	export      string
	clearCache  bool
	test        bool
	fresh       bool
	maxFeeds    int
	maxArticles int
	daemon      bool
}

func parseFlags() flags {
	var f flags
	flag.IntVar(&f.workers, "workers", 0, "override the number of concurrent source fetches (0 = config default)")
	flag.StringVar(&f.output, "output", "", "override the output directory for rendered pages and exports")
	flag.BoolVar(&f.debug, "debug", false, "enable debug logging")
	flag.StringVar(&f.search, "search", "", "search stored articles by keyword and print matches, then exit")
	flag.StringVar(&f.filter, "filter", "", "restrict --search/--export to a single category")
	flag.StringVar(&f.export, "export", "", "write a JSON export of stored articles to this path and exit")
	flag.BoolVar(&f.clearCache, "clear-cache", false, "prune articles older than the retention window, then exit")
	flag.BoolVar(&f.test, "test", false, "print the run's stats after a normal scrape pass; the source set is not narrowed (combine with --max-feeds for that)")
	flag.BoolVar(&f.fresh, "fresh", false, "ignore feed health state and treat every source as active")
	flag.IntVar(&f.maxFeeds, "max-feeds", 0, "limit how many curated sources are crawled (0 = all)")
	flag.IntVar(&f.maxArticles, "max-articles", 0, "cap how many articles a single run stores (0 = unbounded)")
	flag.BoolVar(&f.daemon, "daemon", false, "run forever on the configured cron schedule instead of once")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()
	logger := initLogger(f.debug)

	cfgMetrics := config.NewMetrics()
	cfg := config.Load(logger, cfgMetrics)
	if f.workers > 0 {
		cfg.MaxConcurrentSources = f.workers
	}
	if f.output != "" {
		cfg.OutputDir = f.output
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	dbBreaker := circuitbreaker.NewDBCircuitBreaker(db)
	articleRepo := store.NewArticleRepo(dbBreaker)
	sourceRepo := store.NewSourceRepo(dbBreaker)
	healthRepo := store.NewFeedHealthRepo(dbBreaker)
	monitor := feedhealth.New(healthRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthAddr := fmt.Sprintf(":%d", cfg.HealthPort)
	healthServer := health.NewHealthServer(healthAddr, logger).WithFeedMonitor(monitor)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))
	startMetricsServer(ctx, logger, cfg.HealthPort+1)

	switch {
	case f.clearCache:
		runClearCache(ctx, logger, cfg, articleRepo)
		return
	case f.search != "":
		runSearch(ctx, logger, articleRepo, f.search, f.filter)
		return
	case f.export != "":
		runExport(ctx, logger, articleRepo, f.export, f.filter)
		return
	}

	deps := buildDependencies(logger, cfg, articleRepo, sourceRepo, monitor, f)

	if f.daemon {
		startCronWorker(ctx, logger, deps, cfg, cfgMetrics, healthServer, f)
		return
	}

	healthServer.SetReady(true)
	runOnce(ctx, logger, deps, cfg, cfgMetrics, f)
}

// startMetricsServer exposes Prometheus metrics on their own port,
// separate from the liveness/readiness endpoints, and shuts down when ctx
// is canceled.
func startMetricsServer(ctx context.Context, logger *slog.Logger, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("metrics server starting", slog.Int("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", slog.Any("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", slog.Any("error", err))
		}
	}()
}

func initLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func buildDependencies(logger *slog.Logger, cfg *config.Config, articleRepo repository.ArticleRepository, sourceRepo repository.SourceRepository, monitor *feedhealth.Monitor, f flags) *orchestrator.Dependencies {
	pool, err := httpclient.New(httpclient.Config{
		GlobalConcurrency:  cfg.MaxConcurrentSources * 4,
		PerHostConcurrency: cfg.MaxConcurrentPerDomain,
		Timeout:            cfg.HTTPTimeout,
		MaxAttempts:        5,
		BackoffBase:        1 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("failed to build http client pool", slog.Any("error", err))
		os.Exit(1)
	}

	reg := registry.New(logger)
	if f.maxFeeds > 0 {
		sources := reg.ListSources()
		if f.maxFeeds < len(sources) {
			reg = registry.NewWithSources(sources[:f.maxFeeds])
		}
	}

	newsFetcher := googlenews.New(pool, logger)

	for _, s := range reg.ListSources() {
		if err := sourceRepo.Upsert(context.Background(), s); err != nil {
			logger.Warn("failed to persist curated source", slog.String("source", s.Name), slog.Any("error", err))
		}
	}

	return &orchestrator.Dependencies{
		Config:           cfg,
		Logger:           logger,
		Registry:         reg,
		Pool:             pool,
		Limiter:          ratelimit.New(),
		Health:           monitor,
		Articles:         articleRepo,
		Sources:          sourceRepo,
		GoogleNews:       newsFetcher,
		SkipHealthFilter: f.fresh,
	}
}

// runOnce executes a single pipeline pass and renders the static output
// (spec §6's one-shot CLI mode).
func runOnce(ctx context.Context, logger *slog.Logger, deps *orchestrator.Dependencies, cfg *config.Config, metrics *config.Metrics, f flags) {
	runCtx, cancel := context.WithTimeout(ctx, cfg.RunTimeout)
	defer cancel()

	start := time.Now()
	articles, stats, err := deps.Run(runCtx, f.maxArticles)
	duration := time.Since(start).Seconds()

	if err != nil {
		logger.Error("scrape run failed", slog.Any("error", err))
		metrics.RecordRun("failure", duration)
		renderOutput(logger, cfg, deps, articles)
		return
	}

	metrics.RecordRun("success", duration)
	metrics.RecordSourcesProcessed(stats.SourcesAttempted)
	metrics.RecordArticlesStored(stats.ArticlesStored)
	metrics.RecordLastSuccess()

	logger.Info("run completed",
		slog.String("run_id", stats.RunID),
		slog.Int("sources_attempted", stats.SourcesAttempted),
		slog.Int("candidates_found", stats.CandidatesFound),
		slog.Int("articles_stored", stats.ArticlesStored),
		slog.Int("duplicates_found", stats.DuplicatesFound),
		slog.Int("below_threshold", stats.BelowThreshold),
		slog.Bool("used_google_news_only", stats.UsedGoogleNewsOnly),
		slog.Duration("duration", stats.Finished.Sub(stats.Started)))

	if f.test {
		fmt.Printf("sources=%d candidates=%d stored=%d duplicates=%d below_threshold=%d\n",
			stats.SourcesAttempted, stats.CandidatesFound, stats.ArticlesStored, stats.DuplicatesFound, stats.BelowThreshold)
	}

	renderOutput(logger, cfg, deps, articles)
}

// renderOutput writes the index page, health dashboard, about page, and
// JSON export to cfg.OutputDir (spec §6). A render failure is logged but
// never changes the process's exit code — a bad render is never worth
// failing an otherwise-successful scrape run over.
func renderOutput(logger *slog.Logger, cfg *config.Config, deps *orchestrator.Dependencies, articles []*entity.Article) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logger.Error("failed to create output directory", slog.Any("error", err))
		return
	}

	ctx := context.Background()
	categories, err := deps.Articles.Categories(ctx)
	if err != nil {
		logger.Warn("failed to load categories", slog.Any("error", err))
	}
	sources, err := deps.Articles.Sources(ctx)
	if err != nil {
		logger.Warn("failed to load sources", slog.Any("error", err))
	}
	now := time.Now()

	writeFile(logger, filepath.Join(cfg.OutputDir, "index.html"), func(w *os.File) error {
		return render.WriteIndex(w, render.IndexData{GeneratedAt: now, Articles: articles, Categories: categories, Sources: sources})
	})

	reports, err := deps.Health.BuildReport(ctx)
	if err != nil {
		logger.Warn("failed to build feed health report", slog.Any("error", err))
	}
	writeFile(logger, filepath.Join(cfg.OutputDir, "health.html"), func(w *os.File) error {
		return render.WriteHealthDashboard(w, render.HealthData{GeneratedAt: now, Feeds: reports})
	})

	writeFile(logger, filepath.Join(cfg.OutputDir, "about.html"), func(w *os.File) error {
		return render.WriteAbout(w)
	})

	writeFile(logger, filepath.Join(cfg.OutputDir, "export.json"), func(w *os.File) error {
		return render.WriteJSON(w, articles, categories, sources, now)
	})
}

func writeFile(logger *slog.Logger, path string, write func(*os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		logger.Error("failed to create output file", slog.String("path", path), slog.Any("error", err))
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		logger.Error("failed to render output file", slog.String("path", path), slog.Any("error", err))
	}
}

func runClearCache(ctx context.Context, logger *slog.Logger, cfg *config.Config, articles repository.ArticleRepository) {
	cutoff := time.Now().AddDate(0, 0, -cfg.RetentionDays)
	n, err := articles.Prune(ctx, cutoff)
	if err != nil {
		logger.Error("clear-cache failed", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Printf("pruned %d articles older than %s\n", n, cutoff.Format(time.RFC3339))
}

func runSearch(ctx context.Context, logger *slog.Logger, articles repository.ArticleRepository, keyword, filter string) {
	if strings.TrimSpace(keyword) == "" {
		logger.Error("search failed", slog.Any("error", fmt.Errorf("%w: -search keyword must not be empty", entity.ErrInvalidInput)))
		os.Exit(1)
	}
	results, err := articles.Search(ctx, keyword)
	if err != nil {
		logger.Error("search failed", slog.Any("error", err))
		os.Exit(1)
	}
	for _, a := range results {
		if filter != "" && a.Category != filter {
			continue
		}
		fmt.Printf("%s | %s | %s\n", a.Category, a.Title, a.URL)
	}
}

func runExport(ctx context.Context, logger *slog.Logger, articles repository.ArticleRepository, path, filter string) {
	var category *string
	if filter != "" {
		category = &filter
	}
	list, err := articles.List(ctx, repository.ArticleFilter{Category: category})
	if err != nil {
		logger.Error("export failed", slog.Any("error", err))
		os.Exit(1)
	}
	categories, err := articles.Categories(ctx)
	if err != nil {
		logger.Warn("failed to load categories for export", slog.Any("error", err))
	}
	sources, err := articles.Sources(ctx)
	if err != nil {
		logger.Warn("failed to load sources for export", slog.Any("error", err))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Error("failed to create export directory", slog.Any("error", err))
		os.Exit(1)
	}
	out, err := os.Create(path)
	if err != nil {
		logger.Error("failed to create export file", slog.Any("error", err))
		os.Exit(1)
	}
	defer out.Close()

	if err := render.WriteJSON(out, list, categories, sources, time.Now()); err != nil {
		logger.Error("failed to write export", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Printf("exported %d articles to %s\n", len(list), path)
}

func startCronWorker(ctx context.Context, logger *slog.Logger, deps *orchestrator.Dependencies, cfg *config.Config, metrics *config.Metrics, healthServer *health.HealthServer, f flags) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runOnce(ctx, logger, deps, cfg, metrics, f)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("radar daemon started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))
	select {}
}
