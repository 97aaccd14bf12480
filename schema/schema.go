// Package schema bundles the default bootstrap DDL for each supported store.
// The ingestion core never imports this package; the CLI reads a script from
// here only when no schema file is configured.
package schema

import (
	"embed"
	"fmt"
	"os"
)

//go:embed sqlite.sql postgres.sql
var files embed.FS

var byDriver = map[string]string{
	"sqlite":   "sqlite.sql",
	"postgres": "postgres.sql",
}

// Default returns the bundled DDL for the given driver.
func Default(driver string) (string, error) {
	name, ok := byDriver[driver]
	if !ok {
		return "", fmt.Errorf("schema: no bundled script for driver %q", driver)
	}
	b, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema: read %s: %w", name, err)
	}
	return string(b), nil
}

// Load returns the DDL at path, or the bundled script for driver when path
// is empty.
func Load(path, driver string) (string, error) {
	if path == "" {
		return Default(driver)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("schema: read %s: %w", path, err)
	}
	return string(b), nil
}
