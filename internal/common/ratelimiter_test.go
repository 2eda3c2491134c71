package common

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRateLimiter(restrictions []Restriction) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(restrictions)
	rl.now = clock.Now
	return rl, clock
}

func TestRateLimiterWait(t *testing.T) {
	rl, clock := newTestRateLimiter([]Restriction{{Requests: 2, Duration: time.Hour}})

	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))

	// Third request has to wait for an hour
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, rl.Wait(ctx), context.DeadlineExceeded)

	clock.Advance(time.Hour)
	assert.NoError(t, rl.Wait(context.Background()))
}

func TestRateLimiterReceivedRateLimit(t *testing.T) {
	rl, clock := newTestRateLimiter([]Restriction{{Requests: 100, Duration: time.Minute}})

	rl.ReceivedRateLimit(10 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, rl.Wait(ctx), context.DeadlineExceeded)

	clock.Advance(10 * time.Minute)
	assert.NoError(t, rl.Wait(context.Background()))
}

func TestRateLimiterWithoutRestrictions(t *testing.T) {
	rl, _ := newTestRateLimiter(nil)
	for i := 0; i < 50; i++ {
		require.NoError(t, rl.Wait(context.Background()))
	}
}
