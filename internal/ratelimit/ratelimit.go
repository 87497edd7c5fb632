// Package ratelimit provides a keyed token-bucket rate limiter. Each key
// gets its own independent bucket, so one busy endpoint cannot starve
// another. It supports non-blocking (Allow) and blocking (Wait) checks.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Keyed manages per-key rate limiting. All keys share the same
// rate and burst configuration.
type Keyed struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// New creates a keyed rate limiter.
// rps is requests per second per key, burst the tokens available immediately.
func New(rps float64, burst int) *Keyed {
	return &Keyed{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether a request for the given key may proceed now.
// Use for inbound request protection.
func (k *Keyed) Allow(key string) bool {
	return k.limiter(key).Allow()
}

// Wait blocks until a request for the given key is allowed or the context
// is canceled. Use for outbound requests that must respect provider quotas.
func (k *Keyed) Wait(ctx context.Context, key string) error {
	return k.limiter(key).Wait(ctx)
}

func (k *Keyed) limiter(key string) *rate.Limiter {
	k.mu.RLock()
	limiter, exists := k.limiters[key]
	k.mu.RUnlock()

	if exists {
		return limiter
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = k.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(k.limit, k.burst)
	k.limiters[key] = limiter
	return limiter
}
