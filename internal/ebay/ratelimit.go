package ebay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily API call limit has been exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// Usage is a point-in-time view of the daily quota.
type Usage struct {
	Count   int64     `json:"count"`
	Limit   int64     `json:"limit"`
	ResetAt time.Time `json:"reset_at"`
}

// Remaining returns the calls left before the quota resets.
func (u Usage) Remaining() int64 {
	return max(u.Limit-u.Count, 0)
}

// RateLimiter paces calls with a token bucket and enforces a daily quota
// that resets at midnight in the limiter's location (eBay counts quota per
// Pacific calendar day).
type RateLimiter struct {
	limiter *rate.Limiter
	max     int64
	loc     *time.Location
	nowFunc func() time.Time

	mu      sync.Mutex
	count   int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// WithQuotaLocation sets the time zone whose midnight resets the quota.
// The default is UTC.
func WithQuotaLocation(loc *time.Location) RateLimiterOption {
	return func(r *RateLimiter) {
		r.loc = loc
	}
}

// NewRateLimiter creates a limiter allowing perSecond calls with the given
// burst and at most maxDaily calls per quota day.
func NewRateLimiter(perSecond float64, burst int, maxDaily int64, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		max:     maxDaily,
		loc:     time.UTC,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nextMidnight(r.nowFunc())
	return r
}

// Wait reserves one call against the daily quota, then blocks until the
// token bucket allows it or ctx is done. A canceled wait gives the
// reservation back.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	r.rollLocked()
	if r.count >= r.max {
		count := r.count
		r.mu.Unlock()
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, count, r.max)
	}
	r.count++
	r.mu.Unlock()

	if err := r.limiter.Wait(ctx); err != nil {
		r.mu.Lock()
		r.count--
		r.mu.Unlock()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// Usage reports the current quota state.
func (r *RateLimiter) Usage() Usage {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollLocked()
	return Usage{Count: r.count, Limit: r.max, ResetAt: r.resetAt}
}

func (r *RateLimiter) rollLocked() {
	now := r.nowFunc()
	if !now.Before(r.resetAt) {
		r.count = 0
		r.resetAt = r.nextMidnight(now)
	}
}

func (r *RateLimiter) nextMidnight(now time.Time) time.Time {
	local := now.In(r.loc)
	y, m, d := local.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, r.loc)
}
