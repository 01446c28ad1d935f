package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/ratelimit"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured background workers. The limiter
// sweeper is only added when some limiter keeps in-memory state.
func NewWorkers(cfg config.Workers, limiters *ratelimit.Limiters, logger *logger.Logger) *Workers {
	w := &Workers{}

	if limiters != nil {
		if sweepers := limiters.Sweepers(); len(sweepers) > 0 && cfg.LimiterSweepInterval > 0 {
			w.workers = append(w.workers, NewLimiterSweeper(sweepers, cfg.LimiterSweepInterval, logger))
		}
	}

	logger.Info().Int("count", len(w.workers)).Msg("background workers created")
	return w
}

// Run starts every worker in its own goroutine and blocks until all of
// them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// Len reports the number of workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
