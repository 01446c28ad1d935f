// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the server: accounts and
// tokens, entry submission and review, and the dashboard reductions.
package service

import (
	"context"

	"github.com/MKhiriev/selisih-berat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=EntryServiceWrapper

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.TokenPair, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.User, models.TokenPair, error)
	ParseAccessToken(ctx context.Context, tokenString string) (models.Claims, error)

	Me(ctx context.Context, userID int64) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error)

	// EnsureAdmin creates the configured admin account when no admin exists yet.
	EnsureAdmin(ctx context.Context) error
}

// UserService is the admin-facing account management.
// An admin cannot deactivate or delete their own account.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SetActive(ctx context.Context, actor models.Claims, id int64, active bool) error
	DeleteUser(ctx context.Context, actor models.Claims, id int64) error
}

// EntryService manages weight-discrepancy entries on behalf of actor.
// Non-admin actors only see and edit their own entries.
type EntryService interface {
	Create(ctx context.Context, actor models.Claims, req models.NewEntryRequest) (models.Entry, error)
	List(ctx context.Context, actor models.Claims, filter models.EntryFilter) (models.EntryPage, error)
	Get(ctx context.Context, actor models.Claims, id int64) (models.Entry, error)
	Update(ctx context.Context, actor models.Claims, id int64, patch models.EntryPatch) (models.Entry, error)
	Delete(ctx context.Context, actor models.Claims, id int64) error

	CheckReceipt(ctx context.Context, noResi string) (models.ReceiptCheck, error)
	Export(ctx context.Context, filter models.EntryFilter, format models.ExportFormat) (models.ExportFile, error)
	MyStats(ctx context.Context, actor models.Claims) (models.UserStats, error)
}

// DashboardService computes statistics over stored entries.
type DashboardService interface {
	GlobalStats(ctx context.Context) (models.GlobalStats, error)
	// Leaderboard returns the top limit submitters. A non-positive limit
	// uses the configured size.
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	UserStats(ctx context.Context, username string) (models.UserStats, error)
	Earnings(ctx context.Context) (models.EarningsReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// EntryServiceWrapper decorates an EntryService with additional behavior
// such as input validation.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}
