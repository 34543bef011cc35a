package auth

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SlidingWindowLimiter implements sliding window rate limiting
type SlidingWindowLimiter struct {
	mu         sync.Mutex
	windows    map[string][]time.Time
	limit      int
	windowSize time.Duration
	lastSweep  time.Time
	now        func() time.Time
}

// NewSlidingWindowLimiter creates a new sliding window rate limiter
func NewSlidingWindowLimiter(limit int, windowSize time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windows:    make(map[string][]time.Time),
		limit:      limit,
		windowSize: windowSize,
		now:        time.Now,
	}
}

// Allow checks if a request is allowed
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.windowSize)

	if now.Sub(l.lastSweep) >= l.windowSize {
		l.sweep(windowStart)
		l.lastSweep = now
	}

	requests := prune(l.windows[key], windowStart)
	if len(requests) >= l.limit {
		l.windows[key] = requests
		return false, nil
	}

	l.windows[key] = append(requests, now)
	return true, nil
}

// sweep drops keys with no request inside the window, so one-off clients
// do not accumulate. Caller holds l.mu.
func (l *SlidingWindowLimiter) sweep(windowStart time.Time) {
	for key, requests := range l.windows {
		valid := prune(requests, windowStart)
		if len(valid) == 0 {
			delete(l.windows, key)
			continue
		}
		l.windows[key] = valid
	}
}

// prune drops requests that slid out of the window
func prune(requests []time.Time, windowStart time.Time) []time.Time {
	valid := requests[:0]
	for _, reqTime := range requests {
		if reqTime.After(windowStart) {
			valid = append(valid, reqTime)
		}
	}
	return valid
}

// Limit returns the number of requests allowed per window
func (l *SlidingWindowLimiter) Limit() int {
	return l.limit
}

// tracked reports how many keys currently hold a window
func (l *SlidingWindowLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// IPRateLimiter wraps a rate limiter for IP-based limiting
type IPRateLimiter struct {
	limiter *SlidingWindowLimiter
}

// NewIPRateLimiter creates a new IP-based rate limiter
func NewIPRateLimiter(requestsPerMinute int) *IPRateLimiter {
	return &IPRateLimiter{
		limiter: NewSlidingWindowLimiter(requestsPerMinute, time.Minute),
	}
}

// Allow checks if a request from an IP is allowed
func (l *IPRateLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	return l.limiter.Allow(ctx, fmt.Sprintf("ip:%s", ip))
}

// Limit returns the per-minute allowance
func (l *IPRateLimiter) Limit() int {
	return l.limiter.Limit()
}
