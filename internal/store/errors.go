package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registering a username that
	// collides, case-insensitively, with an existing account.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEntryNotFound is returned when no entry matches the lookup.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrReceiptAlreadyExists is returned when an entry with the same
	// receipt number is already stored.
	ErrReceiptAlreadyExists = errors.New("receipt number already exists")

	// ErrNothingToUpdate is returned when an update carries no changes.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)

// Photo storage errors.
var (
	ErrUploadingPhoto = errors.New("failed to upload photo")
	ErrDeletingPhoto  = errors.New("failed to delete photo")
	ErrForeignPhoto   = errors.New("photo url does not belong to this storage")
)
