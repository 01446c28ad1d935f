package store

import (
	"context"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/sethvargo/go-retry"
)

// retryPolicy describes how read queries are retried.
type retryPolicy struct {
	attempts uint64
	base     time.Duration
	cap      time.Duration
}

var defaultRetryPolicy = retryPolicy{attempts: 3, base: 50 * time.Millisecond, cap: time.Second}

func (p retryPolicy) backoff() retry.Backoff {
	b := retry.NewExponential(p.base)
	b = retry.WithJitterPercent(20, b)
	b = retry.WithCappedDuration(p.cap, b)
	return retry.WithMaxRetries(p.attempts, b)
}

// withRetry runs fn, retrying only errors the classifier marks [Retryable].
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	return retry.Do(ctx, db.retry.backoff(), func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.withRetry").Msg("retrying query")
			return retry.RetryableError(err)
		}
		return err
	})
}
