package config

import (
	"strings"
	"time"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	Seeder SeederConfig `yaml:"seeder"`
}

// StoreConfig holds settings for the output relational store.
// Path is a file path for SQLite or a DSN for PostgreSQL.
type StoreConfig struct {
	Driver       string        `yaml:"driver"         env:"STORE_DRIVER"         env-default:"sqlite"`
	Path         string        `yaml:"path"           env:"STORE_PATH"           env-default:"dictionary.sqlite3"`
	SchemaPath   string        `yaml:"schema_path"    env:"SCHEMA_PATH"`
	MaxOpenConns int           `yaml:"max_open_conns" env:"STORE_MAX_OPEN_CONNS" env-default:"4"`
	BusyTimeout  time.Duration `yaml:"busy_timeout"   env:"STORE_BUSY_TIMEOUT"   env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// SeederConfig holds ingestion settings.
type SeederConfig struct {
	MaxLineBytes int  `yaml:"max_line_bytes" env:"SEEDER_MAX_LINE_BYTES" env-default:"16777216"`
	DryRun       bool `yaml:"dry_run"        env:"SEEDER_DRY_RUN"`
	NoProgress   bool `yaml:"no_progress"    env:"SEEDER_NO_PROGRESS"`
}

// ResolveDriver returns the effective driver name. A postgres:// or
// postgresql:// path always selects PostgreSQL.
func (c StoreConfig) ResolveDriver() string {
	if strings.HasPrefix(c.Path, "postgres://") || strings.HasPrefix(c.Path, "postgresql://") {
		return DriverPostgres
	}
	return strings.ToLower(strings.TrimSpace(c.Driver))
}
