package config

import "time"

// DatabaseConfig selects where sessions are stored. The default is a
// local sqlite file; postgres is for shared installs.
type DatabaseConfig struct {
	// "postgres" or "sqlite"
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`

	// Full postgres URL, e.g. from a DATABASE_URL env var; takes
	// precedence over the individual fields below
	URL string `mapstructure:"url"`

	// Postgres connection fields (used if URL is empty)
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`

	// SQLite file path, or ":memory:"
	Path string `mapstructure:"path"`

	// Pool settings apply to postgres only; sqlite keeps gorm's defaults
	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig tunes the postgres connection pool
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"min=1"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"min=1"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
