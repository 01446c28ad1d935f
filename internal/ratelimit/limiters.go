package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	authKeyPrefix = "selisih-berat:ratelimit:auth:"
	apiKeyPrefix  = "selisih-berat:ratelimit:api:"
)

// Limiters are the two limiters used by the HTTP layer.
// Both are nil when rate limiting is disabled.
type Limiters struct {
	// Auth guards login and registration.
	Auth Limiter
	// API guards authenticated routes.
	API Limiter

	redis *redis.Client
}

// NewLimiters builds the limiters for the configured backend.
func NewLimiters(ctx context.Context, cfg config.RateLimit, log *logger.Logger) (*Limiters, error) {
	if cfg.Disabled {
		log.Warn().Msg("rate limiting disabled")
		return &Limiters{}, nil
	}

	switch cfg.Backend {
	case config.RateLimitBackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err = client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}

		auth, err := NewRedisLimiter(client, authKeyPrefix, cfg.AuthRequests, cfg.AuthWindow)
		if err != nil {
			return nil, err
		}
		api, err := NewRedisLimiter(client, apiKeyPrefix, cfg.APIRequests, cfg.APIWindow)
		if err != nil {
			return nil, err
		}

		log.Info().Str("addr", opts.Addr).Msg("rate limiting backed by redis")
		return &Limiters{Auth: auth, API: api, redis: client}, nil

	default:
		auth, err := NewMemoryLimiter(cfg.AuthRequests, cfg.AuthWindow)
		if err != nil {
			return nil, err
		}
		api, err := NewMemoryLimiter(cfg.APIRequests, cfg.APIWindow)
		if err != nil {
			return nil, err
		}

		log.Info().Msg("rate limiting in memory")
		return &Limiters{Auth: auth, API: api}, nil
	}
}

// Sweepers returns the limiters that need periodic sweeping.
func (l *Limiters) Sweepers() []Sweeper {
	var sweepers []Sweeper
	for _, limiter := range []Limiter{l.Auth, l.API} {
		if s, ok := limiter.(Sweeper); ok {
			sweepers = append(sweepers, s)
		}
	}
	return sweepers
}

// Close releases the redis connection, if any.
func (l *Limiters) Close() error {
	if l.redis != nil {
		return l.redis.Close()
	}
	return nil
}
