package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/handler"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/ratelimit"
	"github.com/MKhiriev/selisih-berat/internal/server"
	"github.com/MKhiriev/selisih-berat/internal/service"
	"github.com/MKhiriev/selisih-berat/internal/store"
	"github.com/MKhiriev/selisih-berat/internal/workers"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("selisih-berat-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("selisih-berat-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("metrics_address", cfg.Server.MetricsAddress).
		Str("photo_backend", cfg.Storage.Photos.Backend).
		Str("rate_limit_backend", cfg.RateLimit.Backend).
		Msg("received configs")

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storages, err := store.NewStorages(startupCtx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	limiters, err := ratelimit.NewLimiters(startupCtx, cfg.RateLimit, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiters")
	}
	defer func() {
		if err := limiters.Close(); err != nil {
			log.Err(err).Msg("error closing rate limiters")
		}
	}()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AuthService.EnsureAdmin(startupCtx); err != nil {
		log.Fatal().Err(err).Msg("error creating admin account")
	}

	handlers, err := handler.NewHandlers(services, limiters, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(cfg.Workers, limiters, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
