package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing or identical token keys, unknown timezone).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidBusinessConfigs indicates negative rates or an empty leaderboard.
	ErrInvalidBusinessConfigs = errors.New("invalid business configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or incomplete photo backend credentials).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRateLimitConfigs indicates invalid limiter budgets or backend.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
