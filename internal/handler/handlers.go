package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/handler/http"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/ratelimit"
	"github.com/MKhiriev/selisih-berat/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	HTTP *http.Handler
	// Metrics serves the Prometheus registry; nil when no metrics address
	// is configured.
	Metrics nethttp.Handler
}

func NewHandlers(services *service.Services, limiters *ratelimit.Limiters, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handlers := &Handlers{
		HTTP: http.NewHandler(services, limiters, cfg, registry, logger),
	}

	if cfg.Server.MetricsAddress != "" {
		handlers.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}

	return handlers, nil
}
