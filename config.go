package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds server configuration
type Config struct {
	HTTPListen      string        `env:"HTTP_LISTEN" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseDSN    string `env:"DATABASE_DSN" envDefault:"inquiries.db"`
	AutoMigrate    bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogToDB  bool   `env:"LOG_TO_DB" envDefault:"true"`

	PasswordMode         string `env:"PASSWORD_MODE" envDefault:"plain"`
	AdminDefaultPassword string `env:"ADMIN_DEFAULT_PASSWORD" envDefault:"admin123"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// NewConfig loads .env files (when present) and then the process environment.
func NewConfig(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	switch c.PasswordMode {
	case PasswordModePlain, PasswordModeBcrypt:
	default:
		return fmt.Errorf("unsupported PASSWORD_MODE %q", c.PasswordMode)
	}

	if c.AdminDefaultPassword == "" {
		return errors.New("ADMIN_DEFAULT_PASSWORD must not be empty")
	}

	return nil
}
