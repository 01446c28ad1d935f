package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
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

func newTestMemoryLimiter(t *testing.T, limit int, window time.Duration) (*MemoryLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)}
	l, err := NewMemoryLimiter(limit, window)
	require.NoError(t, err)
	l.now = clock.Now
	return l, clock
}

func TestNewMemoryLimiter_Invalid(t *testing.T) {
	_, err := NewMemoryLimiter(0, time.Minute)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = NewMemoryLimiter(5, 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestMemoryLimiter_RejectsOverLimitThenRecovers(t *testing.T) {
	const limit = 3
	l, clock := newTestMemoryLimiter(t, limit, time.Minute)
	ctx := context.Background()

	for i := range limit {
		d, err := l.Allow(ctx, "budi")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, limit-i-1, d.Remaining)
		clock.Advance(time.Second)
	}

	d, err := l.Allow(ctx, "budi")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	// first request was 3s ago
	assert.Equal(t, 57*time.Second, d.RetryAfter)

	clock.Advance(57 * time.Second)
	d, err = l.Allow(ctx, "budi")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestMemoryLimiter(t, 1, time.Minute)
	ctx := context.Background()

	d, _ := l.Allow(ctx, "10.0.0.1")
	assert.True(t, d.Allowed)
	d, _ = l.Allow(ctx, "10.0.0.1")
	assert.False(t, d.Allowed)

	d, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, d.Allowed)
}

func TestMemoryLimiter_RejectedRequestsAreNotRecorded(t *testing.T) {
	l, clock := newTestMemoryLimiter(t, 1, 10*time.Second)
	ctx := context.Background()

	d, _ := l.Allow(ctx, "k")
	require.True(t, d.Allowed)

	for range 5 {
		clock.Advance(time.Second)
		d, _ = l.Allow(ctx, "k")
		assert.False(t, d.Allowed)
	}

	clock.Advance(5 * time.Second)
	d, _ = l.Allow(ctx, "k")
	assert.True(t, d.Allowed)
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	l, clock := newTestMemoryLimiter(t, 5, time.Minute)
	ctx := context.Background()

	_, _ = l.Allow(ctx, "old")
	clock.Advance(45 * time.Second)
	_, _ = l.Allow(ctx, "fresh")
	require.Equal(t, 2, l.Len())

	clock.Advance(30 * time.Second)
	assert.Equal(t, 1, l.Sweep(clock.Now()))
	assert.Equal(t, 1, l.Len())

	clock.Advance(time.Hour)
	assert.Equal(t, 1, l.Sweep(clock.Now()))
	assert.Equal(t, 0, l.Len())
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	const limit = 50
	l, _ := newTestMemoryLimiter(t, limit, time.Minute)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := range 200 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := l.Allow(ctx, fmt.Sprintf("key-%d", i%2))
			if err == nil && d.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 2*limit, allowed)
}
