// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "username", "password", "email", "full_name", "role", "is_active", "last_login", "created_at", "updated_at",
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

// ── CreateUser ──────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	user := models.User{
		Username: "budi",
		Password: "hash",
		FullName: "Budi",
		Role:     models.RoleUser,
		IsActive: true,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("budi", "hash", nil, "Budi", "user", true).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "budi", "hash", nil, "Budi", "user", true, nil, now, now))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.Empty(t, created.Email)
	assert.Nil(t, created.LastLogin)
	assertExpectations(t, mock)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "budi"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "budi"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── FindUserByUsername / FindUserByID ───────────────────────────────────────

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(`WHERE lower\(username\) = lower\(\$1\)`).
		WithArgs("BuDi").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "budi", "hash", "budi@example.com", "Budi", "admin", true, now, now, now))

	user, err := repo.FindUserByUsername(context.Background(), "BuDi")
	require.NoError(t, err)
	assert.Equal(t, "budi", user.Username)
	assert.Equal(t, "budi@example.com", user.Email)
	assert.True(t, user.IsAdmin())
	require.NotNil(t, user.LastLogin)
	assert.True(t, now.Equal(*user.LastLogin))
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery("WHERE id = ").
		WithArgs(int64(7)).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("WHERE id = ").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(7, "ani", "hash", nil, "Ani", "user", true, nil, now, now))

	user, err := repo.FindUserByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assertExpectations(t, mock)
}

func TestFindUserByID_DoesNotRetryPermanentErrors(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("WHERE id = ").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindUserByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assertExpectations(t, mock)
}

// ── ListUsers / CountUsers / AdminExists ────────────────────────────────────

func TestListUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery("ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "admin", "h", nil, "Administrator", "admin", true, nil, now, now).
			AddRow(2, "budi", "h", "b@example.com", "Budi", "user", false, nil, now, now))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.False(t, users[1].IsActive)
}

func TestCountUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\), COUNT\(\*\) FILTER`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "active"}).AddRow(5, 3))

	total, active, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, int64(3), active)
}

func TestAdminExists(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.AdminExists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}

// ── updates ─────────────────────────────────────────────────────────────────

func TestSetActive(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET is_active").
		WithArgs(int64(2), false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET is_active").
		WithArgs(int64(99), true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.SetActive(context.Background(), 2, false))
	assert.ErrorIs(t, repo.SetActive(context.Background(), 99, true), ErrUserNotFound)
}

func TestDeleteUser_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(2)).
		WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.DeleteUser(context.Background(), 2), ErrExecutingStatement)
}

func TestUpdateLastLoginAndPassword(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	at := time.Date(2026, time.October, 14, 3, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs(int64(1), at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET password").
		WithArgs(int64(1), "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateLastLogin(context.Background(), 1, at))
	require.NoError(t, repo.UpdatePassword(context.Background(), 1, "new-hash"))
	assertExpectations(t, mock)
}

func TestUpdateProfile(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()
	name := "Budi Santoso"

	mock.ExpectQuery("UPDATE users").
		WithArgs(int64(1), nil, name).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "budi", "h", "b@example.com", name, "user", true, nil, now, now))

	user, err := repo.UpdateProfile(context.Background(), 1, nil, &name)
	require.NoError(t, err)
	assert.Equal(t, name, user.FullName)

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err = repo.UpdateProfile(context.Background(), 2, nil, &name)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
