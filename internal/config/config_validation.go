// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AccessTokenKey == "" || cfg.App.RefreshTokenKey == "" {
		return fmt.Errorf("%w: access and refresh token keys are required", ErrInvalidAppConfigs)
	}
	if cfg.App.AccessTokenKey == cfg.App.RefreshTokenKey {
		return fmt.Errorf("%w: access and refresh token keys must differ", ErrInvalidAppConfigs)
	}
	if cfg.App.AccessTokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q: %w", ErrInvalidAppConfigs, cfg.App.Timezone, err)
	}

	if cfg.Business.EntryRate < 0 || cfg.Business.WorkingDayRate() < 0 || cfg.Business.LeaderboardSize < 1 {
		return ErrInvalidBusinessConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.PoolSize() < 0 {
		return fmt.Errorf("%w: max open connections must not be negative", ErrInvalidStorageConfigs)
	}
	if err := cfg.Storage.Photos.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if _, err := cfg.Server.TrustedProxyPrefixes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if err := cfg.RateLimit.validate(); err != nil {
		return err
	}

	return nil
}

func (p Photos) validate() error {
	if p.MaxSize <= 0 {
		return fmt.Errorf("%w: photo max size must be positive", ErrInvalidStorageConfigs)
	}

	switch p.Backend {
	case PhotoBackendMinio:
		if p.Minio.Endpoint == "" || p.Minio.Bucket == "" {
			return fmt.Errorf("%w: minio endpoint and bucket are required", ErrInvalidStorageConfigs)
		}
	case PhotoBackendCloudinary:
		if p.Cloudinary.CloudName == "" || p.Cloudinary.APIKey == "" || p.Cloudinary.APISecret == "" {
			return fmt.Errorf("%w: cloudinary credentials are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown photo backend %q", ErrInvalidStorageConfigs, p.Backend)
	}

	return nil
}

func (r RateLimit) validate() error {
	if r.Disabled {
		return nil
	}

	if r.AuthRequests < 1 || r.APIRequests < 1 || r.AuthWindow <= 0 || r.APIWindow <= 0 {
		return fmt.Errorf("%w: budgets and windows must be positive", ErrInvalidRateLimitConfigs)
	}

	switch r.Backend {
	case RateLimitBackendMemory:
	case RateLimitBackendRedis:
		if r.RedisURL == "" {
			return fmt.Errorf("%w: redis url is required", ErrInvalidRateLimitConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidRateLimitConfigs, r.Backend)
	}

	return nil
}
