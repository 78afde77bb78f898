package markko

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterDailyQuota(t *testing.T) {
	t.Parallel()

	r := NewRateLimiter(1000, 1000, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Wait(ctx))
	}
	assert.Equal(t, int64(0), r.Remaining())

	err := r.Wait(ctx)
	require.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestRateLimiterDailyReset(t *testing.T) {
	t.Parallel()

	var (
		mu  sync.Mutex
		now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	)
	nowFunc := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	r := NewRateLimiter(1000, 1000, 1, WithRateLimiterNowFunc(nowFunc))
	ctx := context.Background()

	require.NoError(t, r.Wait(ctx))
	require.ErrorIs(t, r.Wait(ctx), ErrDailyLimitReached)
	assert.Equal(t, now.Add(24*time.Hour), r.ResetAt())

	// The quota returns once the 24-hour window rolls over.
	mu.Lock()
	now = now.Add(24*time.Hour + time.Minute)
	mu.Unlock()

	require.NoError(t, r.Wait(ctx))
	assert.Equal(t, int64(0), r.Remaining())
}

func TestRateLimiterRemaining(t *testing.T) {
	t.Parallel()

	r := NewRateLimiter(1000, 1000, 5)
	assert.Equal(t, int64(5), r.Remaining())

	require.NoError(t, r.Wait(context.Background()))
	assert.Equal(t, int64(4), r.Remaining())
}

func TestRateLimiterContextCancellation(t *testing.T) {
	t.Parallel()

	// A rate of one per hour with an exhausted burst forces Wait to block
	// until the context is canceled.
	r := NewRateLimiter(1.0/3600, 1, 100)
	require.NoError(t, r.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.Wait(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, "rate limiter wait")
}
