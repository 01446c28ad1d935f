package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/ratelimit"
)

// LimiterSweeper periodically drops idle keys from in-memory rate limiters.
type LimiterSweeper struct {
	sweepers []ratelimit.Sweeper
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewLimiterSweeper(sweepers []ratelimit.Sweeper, interval time.Duration, logger *logger.Logger) *LimiterSweeper {
	return &LimiterSweeper{
		sweepers: sweepers,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *LimiterSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("limiter sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("limiter sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *LimiterSweeper) sweep() int {
	now := s.now()
	removed := 0
	for _, sweeper := range s.sweepers {
		removed += sweeper.Sweep(now)
	}
	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("idle rate limit keys swept")
	}
	return removed
}
