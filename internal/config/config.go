// Package config loads application configuration from the environment.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	MetricsEnabled  bool          `envconfig:"METRICS_ENABLED" default:"true"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS"`
}

// DBConfig describes the SQLite database location.
type DBConfig struct {
	Path string `envconfig:"PATH" default:"./data/kashikari.db"`
}

// JWTConfig governs session token issuance. The 90-day default matches the
// long-lived sessions a private household app wants.
type JWTConfig struct {
	Secret string        `envconfig:"SECRET" default:"development-secret-change-in-production"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"2160h"`
}

// Config aggregates application configuration values.
type Config struct {
	HTTP HTTPConfig `envconfig:"SERVER"`
	DB   DBConfig   `envconfig:"DB"`
	JWT  JWTConfig  `envconfig:"JWT"`
}

// Load reads configuration from a .env file (if present) and the
// environment, applying defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
