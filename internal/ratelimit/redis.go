package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter keeps one sorted set per key, scored by request time in
// milliseconds, so the window is shared between server instances.
type RedisLimiter struct {
	client redis.Cmdable
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter allows limit requests per key per window. Keys are stored
// under prefix.
func NewRedisLimiter(client redis.Cmdable, prefix string, limit int, window time.Duration) (*RedisLimiter, error) {
	if err := validate(limit, window); err != nil {
		return nil, err
	}
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}, nil
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := r.now()
	redisKey := r.prefix + key
	member := strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString()
	cutoff := strconv.FormatInt(now.Add(-r.window).UnixMilli(), 10)

	var card *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, redisKey, "-inf", cutoff)
		pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixMilli()), Member: member})
		card = pipe.ZCard(ctx, redisKey)
		pipe.PExpire(ctx, redisKey, r.window)
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit pipeline: %w", err)
	}

	count := int(card.Val())
	if count <= r.limit {
		return Decision{
			Allowed:   true,
			Limit:     r.limit,
			Remaining: r.limit - count,
		}, nil
	}

	// rejected requests must not occupy the window
	if err = r.client.ZRem(ctx, redisKey, member).Err(); err != nil {
		return Decision{}, fmt.Errorf("rate limit rollback: %w", err)
	}

	decision := Decision{Limit: r.limit, RetryAfter: r.window}
	oldest, err := r.client.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
	if err == nil && len(oldest) == 1 {
		decision.RetryAfter = retryAfter(time.UnixMilli(int64(oldest[0].Score)), r.window, now)
	}
	return decision, nil
}
