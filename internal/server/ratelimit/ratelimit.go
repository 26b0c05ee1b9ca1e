// Package ratelimit provides per-client token-bucket rate limiting for the
// decision endpoints.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// bucket is a token bucket refilled continuously at a fixed rate.
type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func (b *bucket) take(now time.Time) bool {
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(b.capacity, b.tokens+elapsed*b.refillRate)
	b.lastRefill = now
	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// Limiter tracks one bucket per client id.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	limit    int
	window   time.Duration
	disabled bool
}

// NewLimiter creates a limiter allowing limit requests per window per
// client. A non-positive limit disables limiting.
func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{
		buckets:  make(map[string]*bucket),
		limit:    limit,
		window:   window,
		disabled: limit <= 0,
	}
}

// NewLimiterFromEnv builds a limiter from RATE_LIMIT_PER_MINUTE
// (default 120; 0 disables).
func NewLimiterFromEnv() *Limiter {
	limit := 120
	if limitStr := os.Getenv("RATE_LIMIT_PER_MINUTE"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}
	return NewLimiter(limit, time.Minute)
}

// Allow reports whether a request from the client is within its budget.
func (l *Limiter) Allow(clientID string) bool {
	if l.disabled {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{
			capacity:   float64(l.limit),
			refillRate: float64(l.limit) / l.window.Seconds(),
			tokens:     float64(l.limit),
			lastRefill: now,
		}
		l.buckets[clientID] = b
	}
	return b.take(now)
}
