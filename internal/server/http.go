package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 15 * time.Second
)

type httpServer struct {
	name   string
	server *http.Server

	logger *logger.Logger
}

// newHTTPServer builds a listener for handler. A positive requestTimeout
// also bounds body reads and response writes, with headroom for slow
// photo uploads.
func newHTTPServer(name, address string, handler http.Handler, requestTimeout time.Duration, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	if requestTimeout > 0 {
		srv.ReadTimeout = 2 * requestTimeout
		srv.WriteTimeout = 2 * requestTimeout
	}

	return &httpServer{name: name, server: srv, logger: logger}
}

func (h *httpServer) RunServer() {
	h.logger.Info().Str("server", h.name).Str("address", h.server.Addr).Msg("listening")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("server", h.name).Msg("ListenAndServe failed")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("server", h.name).Msg("shutdown failed")
		return
	}
	h.logger.Info().Str("server", h.name).Msg("stopped")
}
