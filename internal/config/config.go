package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development production test"`

	// RateLimit is the sustained number of requests per second allowed per
	// client. Zero disables rate limiting.
	RateLimit float64 `mapstructure:"rate_limit" validate:"gte=0"`
	// RateBurst is the number of requests a client may burst above the
	// sustained rate.
	RateBurst int `mapstructure:"rate_burst" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"               validate:"required"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"    validate:"gt=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// IsProduction reports whether the server runs in the production
// configuration. Production hides internal error detail from clients and
// requires schema changes to go through migrations instead of auto-sync.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}
