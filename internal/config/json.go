package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly duration fields.
type StructuredJSONConfig struct {
	App struct {
		AccessTokenKey       string   `json:"access_token_key"`
		RefreshTokenKey      string   `json:"refresh_token_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		BcryptCost           int      `json:"bcrypt_cost"`
		AdminUsername        string   `json:"admin_username"`
		AdminPassword        string   `json:"admin_password"`
		AdminFullName        string   `json:"admin_full_name"`
		LogLevel             string   `json:"log_level"`
		Timezone             string   `json:"timezone"`
	} `json:"app,omitempty"`

	Business struct {
		EntryRate       int64  `json:"entry_rate"`
		DailyRate       *int64 `json:"daily_rate"`
		LeaderboardSize int    `json:"leaderboard_size"`
	} `json:"business,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns *int   `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Photos struct {
			Backend string `json:"backend"`
			MaxSize int64  `json:"max_size"`
			Minio   struct {
				Endpoint  string `json:"endpoint"`
				AccessKey string `json:"access_key"`
				SecretKey string `json:"secret_key"`
				Bucket    string `json:"bucket"`
				UseSSL    bool   `json:"use_ssl"`
				PublicURL string `json:"public_url"`
			} `json:"minio,omitempty"`
			Cloudinary struct {
				CloudName string   `json:"cloud_name"`
				APIKey    string   `json:"api_key"`
				APISecret string   `json:"api_secret"`
				Folder    string   `json:"folder"`
				BaseURL   string   `json:"base_url"`
				Timeout   Duration `json:"timeout"`
			} `json:"cloudinary,omitempty"`
		} `json:"photos,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		MetricsAddress string   `json:"metrics_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
		TrustedProxies []string `json:"trusted_proxies"`
		Development    bool     `json:"development"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	RateLimit struct {
		Disabled     bool     `json:"disabled"`
		Backend      string   `json:"backend"`
		RedisURL     string   `json:"redis_url"`
		AuthRequests int      `json:"auth_requests"`
		AuthWindow   Duration `json:"auth_window"`
		APIRequests  int      `json:"api_requests"`
		APIWindow    Duration `json:"api_window"`
	} `json:"rate_limit,omitempty"`

	Workers struct {
		LimiterSweepInterval Duration `json:"limiter_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AccessTokenKey:       j.App.AccessTokenKey,
			RefreshTokenKey:      j.App.RefreshTokenKey,
			TokenIssuer:          j.App.TokenIssuer,
			AccessTokenDuration:  time.Duration(j.App.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(j.App.RefreshTokenDuration),
			BcryptCost:           j.App.BcryptCost,
			AdminUsername:        j.App.AdminUsername,
			AdminPassword:        j.App.AdminPassword,
			AdminFullName:        j.App.AdminFullName,
			LogLevel:             j.App.LogLevel,
			Timezone:             j.App.Timezone,
		},
		Business: Business{
			EntryRate:       j.Business.EntryRate,
			DailyRate:       j.Business.DailyRate,
			LeaderboardSize: j.Business.LeaderboardSize,
		},
		Storage: Storage{
			DB: DB{
				DSN:          j.Storage.DB.DSN,
				MaxOpenConns: j.Storage.DB.MaxOpenConns,
			},
			Photos: Photos{
				Backend: j.Storage.Photos.Backend,
				MaxSize: j.Storage.Photos.MaxSize,
				Minio: Minio{
					Endpoint:  j.Storage.Photos.Minio.Endpoint,
					AccessKey: j.Storage.Photos.Minio.AccessKey,
					SecretKey: j.Storage.Photos.Minio.SecretKey,
					Bucket:    j.Storage.Photos.Minio.Bucket,
					UseSSL:    j.Storage.Photos.Minio.UseSSL,
					PublicURL: j.Storage.Photos.Minio.PublicURL,
				},
				Cloudinary: Cloudinary{
					CloudName: j.Storage.Photos.Cloudinary.CloudName,
					APIKey:    j.Storage.Photos.Cloudinary.APIKey,
					APISecret: j.Storage.Photos.Cloudinary.APISecret,
					Folder:    j.Storage.Photos.Cloudinary.Folder,
					BaseURL:   j.Storage.Photos.Cloudinary.BaseURL,
					Timeout:   time.Duration(j.Storage.Photos.Cloudinary.Timeout),
				},
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			MetricsAddress: j.Server.MetricsAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			CORSOrigins:    j.Server.CORSOrigins,
			TrustedProxies: j.Server.TrustedProxies,
			Development:    j.Server.Development,
			MaxUploadSize:  j.Server.MaxUploadSize,
		},
		RateLimit: RateLimit{
			Disabled:     j.RateLimit.Disabled,
			Backend:      j.RateLimit.Backend,
			RedisURL:     j.RateLimit.RedisURL,
			AuthRequests: j.RateLimit.AuthRequests,
			AuthWindow:   time.Duration(j.RateLimit.AuthWindow),
			APIRequests:  j.RateLimit.APIRequests,
			APIWindow:    time.Duration(j.RateLimit.APIWindow),
		},
		Workers: Workers{
			LimiterSweepInterval: time.Duration(j.Workers.LimiterSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
