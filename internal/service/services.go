package service

import (
	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/store"
	"github.com/MKhiriev/selisih-berat/models"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	EntryService     EntryService
	DashboardService DashboardService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	entryService := NewEntryValidationService(cfg.Storage.Photos.MaxSize).
		Wrap(NewEntryService(storages, cfg, logger))

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, logger),
		EntryService:     entryService,
		DashboardService: NewDashboardService(storages.EntryRepository, storages.UserRepository, cfg, logger),
		AppInfoService:   appInfoService,
	}, nil
}
