package ebay_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/internal/ebay"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{name: "allows calls within quota", burst: 10, daily: 5000, calls: 3},
		{name: "allows burst", burst: 5, daily: 5000, calls: 5},
		{name: "rejects past daily limit", burst: 10, daily: 2, calls: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := ebay.NewRateLimiter(100, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				if lastErr = rl.Wait(context.Background()); lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.ErrorIs(t, lastErr, ebay.ErrDailyLimitReached)
				return
			}
			require.NoError(t, lastErr)
			assert.Equal(t, int64(tt.calls), rl.Usage().Count)
		})
	}
}

func TestRateLimiter_ResetsAtMidnight(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	now := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	rl := ebay.NewRateLimiter(100, 10, 1, ebay.WithRateLimiterNowFunc(clock))
	require.NoError(t, rl.Wait(context.Background()))
	require.ErrorIs(t, rl.Wait(context.Background()), ebay.ErrDailyLimitReached)

	u := rl.Usage()
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), u.ResetAt)
	assert.Equal(t, int64(0), u.Remaining())

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.Usage().Count)
}

func TestRateLimiter_CanceledWaitReturnsReservation(t *testing.T) {
	t.Parallel()

	rl := ebay.NewRateLimiter(0.001, 1, 10)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.Error(t, rl.Wait(ctx))

	assert.Equal(t, int64(1), rl.Usage().Count)
}

func TestRateLimiter_QuotaLocation(t *testing.T) {
	t.Parallel()

	pst := time.FixedZone("PST", -8*60*60)
	now := time.Date(2026, 3, 2, 5, 0, 0, 0, time.UTC) // 21:00 on the 1st in PST
	rl := ebay.NewRateLimiter(100, 1, 10,
		ebay.WithQuotaLocation(pst),
		ebay.WithRateLimiterNowFunc(func() time.Time { return now }),
	)

	assert.True(t, rl.Usage().ResetAt.Equal(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)))
}
