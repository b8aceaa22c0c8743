package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	envServerAddress = "SERVER_ADDRESS"
	envBaseURL       = "BASE_URL"
	envDatabaseDSN   = "DATABASE_DSN"
	envJWTSecret     = "JWT_SECRET"
	envJWTExpire     = "JWT_EXPIRE"
	envCookieMaxAge  = "COOKIE_MAX_AGE"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultBaseURL       = "http://localhost:8080"

	// Development fallback only. Flagged at startup; never ship with it.
	defaultJWTSecret = "your-secret-key"

	defaultJWTExpire    = 7 * 24 * time.Hour
	defaultCookieMaxAge = 24 * time.Hour
)

// Config is built once at process start and passed by reference into the
// services. Business logic never reads the environment on its own.
type Config struct {
	ServerAddress string
	BaseURL       string
	DatabaseDSN   string // empty DSN selects the in-memory store
	JWTSecret     string
	JWTExpire     time.Duration
	CookieMaxAge  time.Duration
}

// Load reads the configuration from the process environment, falling back to
// development defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(envServerAddress, defaultServerAddress)
	v.SetDefault(envBaseURL, defaultBaseURL)
	v.SetDefault(envDatabaseDSN, "")
	v.SetDefault(envJWTSecret, defaultJWTSecret)
	v.SetDefault(envJWTExpire, defaultJWTExpire)
	v.SetDefault(envCookieMaxAge, defaultCookieMaxAge)

	cfg := &Config{
		ServerAddress: v.GetString(envServerAddress),
		BaseURL:       strings.TrimRight(v.GetString(envBaseURL), "/"),
		DatabaseDSN:   v.GetString(envDatabaseDSN),
		JWTSecret:     v.GetString(envJWTSecret),
		JWTExpire:     v.GetDuration(envJWTExpire),
		CookieMaxAge:  v.GetDuration(envCookieMaxAge),
	}

	if cfg.JWTExpire <= 0 {
		cfg.JWTExpire = defaultJWTExpire
	}
	if cfg.CookieMaxAge <= 0 {
		cfg.CookieMaxAge = defaultCookieMaxAge
	}

	return cfg, nil
}

// Warn reports insecure fallbacks to the operator log.
func (c *Config) Warn(log *zerolog.Logger) {
	if c.JWTSecret == defaultJWTSecret {
		log.Warn().Msg("JWT_SECRET is not set, using the insecure development default")
	}
}
