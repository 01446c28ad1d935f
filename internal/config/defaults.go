package config

import "time"

// defaultConfig returns the built-in values every other source is merged over.
// Secrets and the database DSN have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          "selisih-berat",
			AccessTokenDuration:  time.Hour,
			RefreshTokenDuration: 7 * 24 * time.Hour,
			BcryptCost:           10,
			AdminUsername:        "admin",
			AdminFullName:        "Administrator",
			LogLevel:             "debug",
			Timezone:             "Asia/Jakarta",
			Version:              "dev",
		},
		Business: Business{
			EntryRate:       500,
			DailyRate:       ptr(int64(50000)),
			LeaderboardSize: 10,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: ptr(20),
			},
			Photos: Photos{
				Backend: PhotoBackendMinio,
				MaxSize: 5 << 20,
				Minio: Minio{
					Bucket: "selisih-berat",
				},
				Cloudinary: Cloudinary{
					Folder:  "selisih-berat",
					BaseURL: "https://api.cloudinary.com",
					Timeout: 30 * time.Second,
				},
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			CORSOrigins:    []string{"*"},
			MaxUploadSize:  12 << 20,
		},
		RateLimit: RateLimit{
			Backend:      RateLimitBackendMemory,
			AuthRequests: 10,
			AuthWindow:   time.Minute,
			APIRequests:  300,
			APIWindow:    time.Minute,
		},
		Workers: Workers{
			LimiterSweepInterval: time.Minute,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
