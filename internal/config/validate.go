package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically; call it again after applying CLI overrides.
func (c *Config) Validate() error {
	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Seeder.MaxLineBytes <= 0 {
		return fmt.Errorf("seeder: max_line_bytes must be > 0 (got %d)", c.Seeder.MaxLineBytes)
	}
	return nil
}

func (s *StoreConfig) validate() error {
	switch s.ResolveDriver() {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown driver %q (want %s or %s)", s.Driver, DriverSQLite, DriverPostgres)
	}
	if strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("path must not be empty")
	}
	if s.MaxOpenConns <= 0 {
		return fmt.Errorf("max_open_conns must be > 0 (got %d)", s.MaxOpenConns)
	}
	if s.BusyTimeout < 0 {
		return fmt.Errorf("busy_timeout must be >= 0 (got %s)", s.BusyTimeout)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q (want json or text)", l.Format)
	}
	return nil
}
