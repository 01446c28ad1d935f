// Package store is the persistence layer: PostgreSQL repositories for users
// and entries, and photo storages for entry images.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/selisih-berat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts in the "users" table.
// Usernames are compared case-insensitively.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (total, active int64, err error)
	AdminExists(ctx context.Context) (bool, error)

	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateProfile(ctx context.Context, id int64, email, fullName *string) (models.User, error)
	SetActive(ctx context.Context, id int64, active bool) error
	DeleteUser(ctx context.Context, id int64) error
}

// EntryRepository persists weight-discrepancy entries in the "entries" table.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	GetEntry(ctx context.Context, id int64) (models.Entry, error)
	FindEntryByReceipt(ctx context.Context, noResi string) (models.Entry, error)

	// ListEntries returns one page of entries matching filter, newest
	// first, and the total number of matches. A zero filter.Limit returns
	// every match.
	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int64, error)

	// UpdateEntry overwrites the mutable columns of entry and returns the
	// stored row.
	UpdateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error

	// FetchStats returns the statistics projection of entries matching
	// filter. Pagination fields are ignored.
	FetchStats(ctx context.Context, filter models.EntryFilter) ([]models.EntryStat, error)
}

// PhotoStorage stores entry photos and returns their public URL.
type PhotoStorage interface {
	Upload(ctx context.Context, photo models.Photo) (string, error)
	Delete(ctx context.Context, url string) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
