package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/handler"
	"github.com/MKhiriev/selisih-berat/internal/logger"
)

type server struct {
	apiServer     *httpServer
	metricsServer *httpServer
	workers       Runner

	logger *logger.Logger
}

// NewServer builds the API listener and, when handlers carry one, the
// metrics listener. workers may be nil.
func NewServer(handlers *handler.Handlers, workers Runner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	s := &server{
		apiServer: newHTTPServer("api", cfg.HTTPAddress, handlers.HTTP.Init(), cfg.RequestTimeout, logger),
		workers:   workers,
		logger:    logger,
	}
	if handlers.Metrics != nil && cfg.MetricsAddress != "" {
		s.metricsServer = newHTTPServer("metrics", cfg.MetricsAddress, handlers.Metrics, 0, logger)
	}

	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

// Shutdown stops the listeners; in-flight requests are given
// shutdownTimeout to finish.
func (s *server) Shutdown() {
	s.apiServer.Shutdown()

	if s.metricsServer != nil {
		s.metricsServer.Shutdown()
	}
}

// run serves until ctx is done, then shuts the listeners down and waits
// for the workers to return.
func (s *server) run(ctx context.Context) {
	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	s.logger.Info().Msg("Launching API server")
	go s.apiServer.RunServer()
	if s.metricsServer != nil {
		s.logger.Info().Msg("Launching metrics server")
		go s.metricsServer.RunServer()
	}

	<-idleConnectionsClosed
	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
}
