// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the server settings.
type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Storage
	StorageDriver string        `envconfig:"STORAGE_DRIVER" default:"sqlite"`
	DBPath        string        `envconfig:"DB_PATH" default:"./data/resiq.db"`
	DatabaseURL   string        `envconfig:"DATABASE_URL"`
	SourceTimeout time.Duration `envconfig:"SOURCE_TIMEOUT" default:"10s"`

	// Auth
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Settlement months are bucketed in this zone.
	Timezone string `envconfig:"TIMEZONE" default:"Asia/Kolkata"`

	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"*"`
}

// Load reads a .env file when one exists, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
