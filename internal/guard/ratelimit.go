package guard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/focusquest/platform/internal/domain"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per key (client IP or player ID).
// Idle buckets are evicted so the map does not grow without bound.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	lastSwep time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window,
// with the full window's worth of burst.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(float64(limit) / window.Seconds()),
		burst:   limit,
		idleTTL: 3 * window,
	}
}

// Check returns a GuardResult indicating whether the key is within rate limits.
func (rl *RateLimiter) Check(_ context.Context, key string) domain.GuardResult {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweep(now)

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now

	if !b.limiter.Allow() {
		return domain.GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("rate limit exceeded: %d burst, %.2f/s refill", rl.burst, float64(rl.limit)),
			Guard:   "rate_limiter",
		}
	}
	return domain.GuardResult{Allowed: true}
}

func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSwep) < rl.idleTTL {
		return
	}
	rl.lastSwep = now
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.idleTTL {
			delete(rl.buckets, key)
		}
	}
}
