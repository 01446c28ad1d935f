// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements sliding-window request limiters.
//
// Two backends are available: an in-process MemoryLimiter and a RedisLimiter
// whose state is shared by every server instance pointing at the same Redis.
package ratelimit

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidLimit = errors.New("rate limit requests and window must be positive")

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed bool
	// Limit is the number of requests allowed per window.
	Limit int
	// Remaining is how many more requests fit in the current window.
	Remaining int
	// RetryAfter is set on rejection: the time until the oldest request
	// leaves the window.
	RetryAfter time.Duration
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Sweeper is implemented by limiters that keep per-key state in memory.
type Sweeper interface {
	// Sweep drops keys with no requests inside the window and returns how
	// many keys were removed.
	Sweep(now time.Time) int
}

func validate(limit int, window time.Duration) error {
	if limit <= 0 || window <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

func retryAfter(oldest time.Time, window time.Duration, now time.Time) time.Duration {
	d := oldest.Add(window).Sub(now)
	if d < time.Millisecond {
		return time.Millisecond
	}
	return d
}
