package http

import (
	"net/netip"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/ratelimit"
	"github.com/MKhiriev/selisih-berat/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	limiters *ratelimit.Limiters
	metrics  *metrics

	cfg config.Server
	// trustedProxies may set the client address through forwarding headers.
	trustedProxies []netip.Prefix
	// loc interprets date-only query parameters.
	loc *time.Location

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Request metrics are registered on
// registerer; a nil registerer leaves them unregistered.
func NewHandler(services *service.Services, limiters *ratelimit.Limiters, cfg *config.StructuredConfig, registerer prometheus.Registerer, logger *logger.Logger) *Handler {
	if limiters == nil {
		limiters = &ratelimit.Limiters{}
	}

	trustedProxies, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		logger.Err(err).Str("func", "NewHandler").Msg("ignoring trusted proxies, forwarding headers will not be used")
		trustedProxies = nil
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiters: limiters,
		metrics:  newMetrics(registerer),
		cfg:      cfg.Server,
		loc:      cfg.App.Location(),
		logger:   logger,

		trustedProxies: trustedProxies,
	}
}
