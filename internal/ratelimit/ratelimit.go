// Package ratelimit implements per-domain politeness as a keyed token
// bucket (spec §9 design note: "a keyed token bucket rather than two
// separate semaphores"). Each host gets its own limiter, sized by the
// politeness tier the host falls into (internal/govsite.Tier).
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"policyradar/internal/govsite"
)

// tierInterval returns the minimum spacing between requests to a host in
// the given tier (spec §4.3): 3-5s for hardened regulators, 2-3s for other
// government hosts, 0.5-1.5s elsewhere. The limiter uses the midpoint of
// each range as its steady-state rate with a burst of one, so consecutive
// requests to a host are always spaced by the full interval.
func tierInterval(tier govsite.SecurityTier) time.Duration {
	switch tier {
	case govsite.TierHighSecurity:
		return 4 * time.Second
	case govsite.TierGovernment:
		return 2500 * time.Millisecond
	default:
		return 1 * time.Second
	}
}

// Limiter grants a per-host token before every fetch, blocking until the
// host's politeness interval has elapsed since its last grant.
type Limiter struct {
	mu       sync.Mutex
	perHost  map[string]*rate.Limiter
}

// New returns an empty Limiter; per-host buckets are created lazily on
// first use so the curated source list need not be known up front.
func New() *Limiter {
	return &Limiter{perHost: make(map[string]*rate.Limiter)}
}

// bucketFor returns (creating if needed) the token bucket for host.
func (l *Limiter) bucketFor(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.perHost[host]; ok {
		return b
	}
	interval := tierInterval(govsite.Tier(host))
	b := rate.NewLimiter(rate.Every(interval), 1)
	l.perHost[host] = b
	return b
}

// Wait blocks until host's politeness token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context, host string) error {
	return l.bucketFor(host).Wait(ctx)
}
