// Package httpclient implements the shared HTTP client pool (C2): retrying
// GETs with rotating user agents, a cookie jar for hosts that require a
// warm-up visit, and global/per-host concurrency caps.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"policyradar/internal/resilience/retry"
)

// userAgents rotates a small pool of realistic browser strings so a single
// repeated UA does not become a trivial block signal (spec §4.2).
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Edg/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 13_6) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 11.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36",
}

// RandomUserAgent returns a random entry from the rotation pool.
func RandomUserAgent() string {
	return userAgents[rand.Intn(len(userAgents))]
}

// Config controls pool-wide and per-host concurrency and timeouts
// (spec §4.2, §5).
type Config struct {
	GlobalConcurrency int
	PerHostConcurrency int
	Timeout           time.Duration
	MaxAttempts       int
	BackoffBase       time.Duration
}

// DefaultConfig returns the pool sizing spec §5 assigns to C2.
func DefaultConfig() Config {
	return Config{
		GlobalConcurrency:  50,
		PerHostConcurrency: 2,
		Timeout:            20 * time.Second,
		MaxAttempts:        5,
		BackoffBase:        1 * time.Second,
	}
}

// Pool is the shared client used by every fetch in the run. It is safe for
// concurrent use.
type Pool struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger

	globalSem chan struct{}
	hostMu    sync.Mutex
	hostSems  map[string]chan struct{}
}

// New builds a Pool with a cookie jar and permissive TLS defaults (many
// Indian government sites run with misconfigured certificate chains;
// spec §4.3 notes this explicitly).
func New(cfg Config, logger *slog.Logger) (*Pool, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	transport := &http.Transport{
		MaxIdleConns:        cfg.GlobalConcurrency,
		MaxIdleConnsPerHost: cfg.PerHostConcurrency,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Pool{
		cfg: cfg,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Jar:       jar,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
		logger:    logger,
		globalSem: make(chan struct{}, cfg.GlobalConcurrency),
		hostSems:  make(map[string]chan struct{}),
	}, nil
}

// hostSem returns (creating if needed) the per-host semaphore for host.
func (p *Pool) hostSem(host string) chan struct{} {
	p.hostMu.Lock()
	defer p.hostMu.Unlock()
	sem, ok := p.hostSems[host]
	if !ok {
		sem = make(chan struct{}, p.cfg.PerHostConcurrency)
		p.hostSems[host] = sem
	}
	return sem
}

// Headers carries request shaping; Extra is merged on top of the default
// Accept/Accept-Language/User-Agent set.
type Headers struct {
	UserAgent string
	Extra     map[string]string
	Cookies   map[string]string
}

// Result is a fetched response body plus the status code and final URL
// (after redirects), so callers can detect soft-404s and gov-site quirks.
type Result struct {
	StatusCode int
	Body       []byte
	FinalURL   string
}

// Get performs a retrying GET against url, honoring the pool's global and
// per-host concurrency caps (spec §4.2: up to 5 attempts on 403/429/5xx or
// connection/timeout errors, idempotent GETs only).
func (p *Pool) Get(ctx context.Context, host, url string, headers Headers) (*Result, error) {
	p.globalSem <- struct{}{}
	defer func() { <-p.globalSem }()

	sem := p.hostSem(host)
	sem <- struct{}{}
	defer func() { <-sem }()

	var result *Result
	cfg := retry.HTTPClientConfig()
	cfg.MaxAttempts = p.cfg.MaxAttempts
	cfg.InitialDelay = p.cfg.BackoffBase

	err := retry.WithBackoff(ctx, cfg, func() error {
		res, doErr := p.doGet(ctx, url, headers)
		if doErr != nil {
			return doErr
		}
		if retry.RetryableStatus(res.StatusCode) {
			return &retry.HTTPError{StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return result, nil
}

func (p *Pool) doGet(ctx context.Context, url string, headers Headers) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	ua := headers.UserAgent
	if ua == "" {
		ua = RandomUserAgent()
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-IN,en-US;q=0.9,en;q=0.8")
	for k, v := range headers.Extra {
		req.Header.Set(k, v)
	}
	for name, value := range headers.Cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       body,
		FinalURL:   resp.Request.URL.String(),
	}, nil
}

// Warm performs an initial GET against url purely to let the cookie jar
// populate cookies the host's real content requests depend on (spec §4.3,
// "hardened" government hosts that gate content behind a landing-page
// visit).
func (p *Pool) Warm(ctx context.Context, host, url string) error {
	_, err := p.Get(ctx, host, url, Headers{})
	return err
}
