package auth

import (
	"sync"
	"time"
)

// RateLimiter bounds how often a key (client IP, user id) may act.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	limit   int
	period  time.Duration
}

// NewRateLimiter allows limit requests per key per period, tracked with a
// sliding window.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string][]time.Time),
		limit:   limit,
		period:  period,
	}
}

// Allow records an attempt for key and reports whether it is within the
// limit. Stale window entries are pruned on the way.
func (l *RateLimiter) Allow(key string) bool {
	now := time.Now()
	cutoff := now.Add(-l.period)

	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.windows[key]
	kept := w[:0]
	for _, t := range w {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= l.limit {
		l.windows[key] = kept
		return false
	}
	l.windows[key] = append(kept, now)
	return true
}

// NewIPRateLimiter returns a per-minute limiter suitable for keying by
// client IP.
func NewIPRateLimiter(perMinute int) *RateLimiter {
	return NewRateLimiter(perMinute, time.Minute)
}
