package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/selisih-berat/internal/adapter"
	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
)

// Storages bundles every persistence component handed to the service layer.
type Storages struct {
	UserRepository  UserRepository
	EntryRepository EntryRepository
	PhotoStorage    PhotoStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and opens the
// configured photo backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info().Msg("database migrations applied")

	photos, err := NewPhotoStorage(ctx, cfg.Photos, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		EntryRepository: NewEntryRepository(db, log),
		PhotoStorage:    photos,
		db:              db,
	}, nil
}

// NewPhotoStorage returns the photo storage selected by cfg.Backend.
func NewPhotoStorage(ctx context.Context, cfg config.Photos, log *logger.Logger) (PhotoStorage, error) {
	switch cfg.Backend {
	case config.PhotoBackendMinio:
		return NewMinioPhotoStorage(ctx, cfg.Minio, log)
	case config.PhotoBackendCloudinary:
		return adapter.NewCloudinaryAdapter(cfg.Cloudinary, log), nil
	default:
		return nil, fmt.Errorf("unknown photo backend %q", cfg.Backend)
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
