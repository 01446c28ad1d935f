package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		email     sql.NullString
		lastLogin sql.NullTime
		role      string
	)
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&email,
		&user.FullName,
		&role,
		&user.IsActive,
		&lastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Email = email.String
	user.Role = models.Role(role)
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}
	return user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateUser inserts user and returns the stored row. The username is
// stored as given; callers normalize it first.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Password, nullString(user.Email), user.FullName, string(user.Role), user.IsActive)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// FindUserByUsername looks a user up case-insensitively.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, arg))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Any("key", arg).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns every account ordered by creation time.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	var users []models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, listUsers)
		if err != nil {
			return err
		}
		defer rows.Close()

		users = make([]models.User, 0, 16)
		for rows.Next() {
			user, err := scanUser(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			users = append(users, user)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, nil
}

// CountUsers returns the number of accounts and of active accounts.
func (r *userRepository) CountUsers(ctx context.Context) (total, active int64, err error) {
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, countUsers).Scan(&total, &active)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, active, nil
}

// AdminExists reports whether at least one admin account exists.
func (r *userRepository) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, adminExists).Scan(&exists)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.AdminExists").Msg("error checking admin")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.exec(ctx, "*userRepository.UpdateLastLogin", updateLastLogin, id, at)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.exec(ctx, "*userRepository.UpdatePassword", updatePassword, id, passwordHash)
}

// UpdateProfile changes the non-nil fields and returns the stored row.
// An empty email clears it.
func (r *userRepository) UpdateProfile(ctx context.Context, id int64, email, fullName *string) (models.User, error) {
	log := logger.FromContext(ctx)

	var emailArg, fullNameArg any
	if email != nil {
		// COALESCE keeps the column for SQL NULL, so clearing stores ''
		emailArg = *email
	}
	if fullName != nil {
		fullNameArg = *fullName
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, updateProfile, id, emailArg, fullNameArg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Int64("user_id", id).Msg("error updating profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return user, nil
}

func (r *userRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.exec(ctx, "*userRepository.SetActive", setUserActive, id, active)
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.exec(ctx, "*userRepository.DeleteUser", deleteUser, id)
}

// exec runs a single-row statement and maps zero affected rows to
// [ErrUserNotFound].
func (r *userRepository) exec(ctx context.Context, funcName, query string, id int64, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", id).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
