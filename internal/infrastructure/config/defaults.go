package config

import (
	"os"
	"path/filepath"
	"time"
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults: a local sqlite file so the CLI works out of the box
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = defaultSQLitePath()
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "arcade"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "arcade"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}

// defaultSQLitePath returns the default sqlite database location
func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "arcade.db"
	}
	return filepath.Join(home, ".arcade", "arcade.db")
}
