package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-metrics-address metrics server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-access-token-key access token signing key
//	-refresh-token-key refresh token signing key
//	-token-issuer token issuer name
//	-access-token-duration access token lifetime (e.g., "1h")
//	-refresh-token-duration refresh token lifetime (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level
//	-photo-backend minio or cloudinary
//	-rate-limit-backend memory or redis
//	-daily-rate payout per working day (0 for flat per-entry earnings)
//	-dev development mode
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, metricsAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var accessTokenKey, refreshTokenKey string
	var tokenIssuer string
	var accessTokenDuration, refreshTokenDuration time.Duration
	var requestTimeout time.Duration
	var logLevel string
	var photoBackend string
	var rateLimitBackend string
	var development bool
	var dailyRate int64

	fs := flag.NewFlagSet("selisih-berat", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Metrics server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&accessTokenKey, "access-token-key", "", "Access token signing key")
	fs.StringVar(&refreshTokenKey, "refresh-token-key", "", "Refresh token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 1h)")
	fs.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&photoBackend, "photo-backend", "", "Photo storage backend (minio, cloudinary)")
	fs.StringVar(&rateLimitBackend, "rate-limit-backend", "", "Rate limiter backend (memory, redis)")
	fs.BoolVar(&development, "dev", false, "Development mode")
	fs.Int64Var(&dailyRate, "daily-rate", 0, "Payout per working day")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// only flags given on the command line may override zero-meaningful settings
	var business Business
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "daily-rate" {
			business.DailyRate = &dailyRate
		}
	})

	return &StructuredConfig{
		App: App{
			AccessTokenKey:       accessTokenKey,
			RefreshTokenKey:      refreshTokenKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
			LogLevel:             logLevel,
		},
		Business: business,
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Photos: Photos{
				Backend: photoBackend,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			MetricsAddress: metricsAddress.String(),
			RequestTimeout: requestTimeout,
			Development:    development,
		},
		RateLimit: RateLimit{
			Backend: rateLimitBackend,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
