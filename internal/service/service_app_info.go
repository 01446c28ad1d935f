package service

import (
	"context"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/models"
)

type appInfoService struct {
	appVersion string
	buildDate  string
	commit     string

	logger *logger.Logger
}

// NewAppInfoService prefers the linker-injected build version over the
// configured one.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := buildInfo.BuildVersion()
	if version == "" || version == "N/A" {
		version = cfg.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		buildDate:  buildInfo.BuildDate(),
		commit:     buildInfo.BuildCommit(),
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:      "ok",
		Version:     s.appVersion,
		BuildDate:   s.buildDate,
		BuildCommit: s.commit,
	}
}
