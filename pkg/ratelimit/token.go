package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenLimiter hands out a fixed number of tokens per refill period.
// A capacity of zero or less disables limiting.
type TokenLimiter struct {
	sync.Mutex
	capacity     int
	remaining    int
	refillPeriod time.Duration
	lastRefill   time.Time
	now          func() time.Time
}

func NewTokenLimiter(tokensPerMinute int) *TokenLimiter {
	return newTokenLimiter(tokensPerMinute, time.Minute, time.Now)
}

func newTokenLimiter(capacity int, period time.Duration, now func() time.Time) *TokenLimiter {
	return &TokenLimiter{
		capacity:     capacity,
		remaining:    capacity,
		refillPeriod: period,
		lastRefill:   now(),
		now:          now,
	}
}

// Wait blocks until tokens are available or ctx is done. Requests larger
// than the capacity are clamped so a single big batch can still go through
// once the bucket is full.
func (l *TokenLimiter) Wait(ctx context.Context, tokens int) error {
	if l.capacity <= 0 {
		return nil
	}
	if tokens > l.capacity {
		tokens = l.capacity
	}

	for {
		if l.take(tokens) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (l *TokenLimiter) take(tokens int) bool {
	l.Lock()
	defer l.Unlock()

	now := l.now()
	if now.Sub(l.lastRefill) >= l.refillPeriod {
		l.remaining = l.capacity
		l.lastRefill = now
	}

	if l.remaining >= tokens {
		l.remaining -= tokens
		return true
	}
	return false
}

func (l *TokenLimiter) GetRemaining() int {
	l.Lock()
	defer l.Unlock()
	return l.remaining
}
