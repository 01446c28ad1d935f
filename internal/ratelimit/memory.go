package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps request timestamps per key in process memory.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	hits map[string][]time.Time
}

var (
	_ Limiter = (*MemoryLimiter)(nil)
	_ Sweeper = (*MemoryLimiter)(nil)
)

// NewMemoryLimiter allows limit requests per key in any window-long interval.
func NewMemoryLimiter(limit int, window time.Duration) (*MemoryLimiter, error) {
	if err := validate(limit, window); err != nil {
		return nil, err
	}
	return &MemoryLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}, nil
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	hits := m.trim(m.hits[key], now)
	if len(hits) >= m.limit {
		m.hits[key] = hits
		return Decision{
			Limit:      m.limit,
			RetryAfter: retryAfter(hits[0], m.window, now),
		}, nil
	}

	hits = append(hits, now)
	m.hits[key] = hits
	return Decision{
		Allowed:   true,
		Limit:     m.limit,
		Remaining: m.limit - len(hits),
	}, nil
}

func (m *MemoryLimiter) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, hits := range m.hits {
		hits = m.trim(hits, now)
		if len(hits) == 0 {
			delete(m.hits, key)
			removed++
			continue
		}
		m.hits[key] = hits
	}
	return removed
}

// Len returns the number of tracked keys.
func (m *MemoryLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.hits)
}

// trim drops timestamps at or before now-window. hits is sorted ascending.
func (m *MemoryLimiter) trim(hits []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-m.window)
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return hits
	}
	return append(hits[:0:0], hits[i:]...)
}
