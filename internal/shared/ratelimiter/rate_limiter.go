// Package ratelimiter throttles calls against external APIs.
package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface limits how often an operation such as an API call may run.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter allows at most limit calls per interval window and blocks the
// caller until the window resets once the limit is exceeded.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // calls allowed per window
	interval  time.Duration // window length
	count     int
	lastReset time.Time
	sleep     func(time.Duration)
}

// NewRateLimiter creates a RateLimiter allowing limit calls per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		sleep:     time.Sleep,
	}
}

// WaitIfNeeded counts one call and sleeps until the window resets if the limit is reached.
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		wait := rl.interval - now.Sub(rl.lastReset)
		if wait > 0 {
			slog.Warn("rate limit reached, waiting", "limit", rl.limit, "wait", wait)
			rl.sleep(wait)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}

// Unlimited is a RateLimiterInterface that never waits.
type Unlimited struct{}

// WaitIfNeeded returns immediately.
func (Unlimited) WaitIfNeeded() {}
