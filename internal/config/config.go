// Package config loads service settings from the environment through viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the service.
type Config struct {
	AppPort          string
	DBDriver         string
	DatabaseDSN      string
	RabbitMQURL      string
	RabbitMQQueue    string
	ValidateImageURL bool
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "produtos.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "product_events")
	v.SetDefault("VALIDATE_IMAGE_URL", false)
	v.SetDefault("READ_TIMEOUT", "10s")
	v.SetDefault("WRITE_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
}

// Load reads an optional .env file into the process environment and then
// resolves the configuration from environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds and validates a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:          v.GetString("APP_PORT"),
		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:    v.GetString("RABBITMQ_QUEUE"),
		ValidateImageURL: v.GetBool("VALIDATE_IMAGE_URL"),
		ReadTimeout:      v.GetDuration("READ_TIMEOUT"),
		WriteTimeout:     v.GetDuration("WRITE_TIMEOUT"),
		ShutdownTimeout:  v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if cfg.AppPort == "" {
		return nil, fmt.Errorf("APP_PORT must not be empty")
	}
	if !strings.Contains(cfg.AppPort, ":") {
		cfg.AppPort = ":" + cfg.AppPort
	}
	switch cfg.DBDriver {
	case "sqlite", "postgres", "memory":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite, postgres or memory)", cfg.DBDriver)
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return cfg, nil
}

// InMemory reports whether products are kept in process memory only.
func (c *Config) InMemory() bool {
	return c.DBDriver == "memory"
}

// EventsEnabled reports whether product events should be published.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}
