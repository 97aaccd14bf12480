// Package sqldb provides the relational store shared by all repositories:
// connection setup, context-carried transactions, error mapping and schema
// bootstrap. SQLite and PostgreSQL are supported through database/sql.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "github.com/mattn/go-sqlite3"    // registers the "sqlite3" driver

	"github.com/heartmarshall/wikt2sql/internal/config"
)

// Dialect captures what differs between the supported stores.
type Dialect struct {
	Name        string
	DriverName  string
	Placeholder squirrel.PlaceholderFormat
}

var (
	SQLite   = Dialect{Name: config.DriverSQLite, DriverName: "sqlite3", Placeholder: squirrel.Question}
	Postgres = Dialect{Name: config.DriverPostgres, DriverName: "pgx", Placeholder: squirrel.Dollar}
)

// DialectFor returns the dialect for a config driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverSQLite:
		return SQLite, nil
	case config.DriverPostgres:
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported store driver %q", driver)
	}
}

// Builder returns a squirrel statement builder using the dialect's placeholders.
func (d Dialect) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.Placeholder)
}

// Open opens the store described by cfg, applies pool settings and pings it
// for fail-fast validation. SQLite is limited to a single connection so that
// every statement observes the same transaction state.
func Open(ctx context.Context, cfg config.StoreConfig) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.ResolveDriver())
	if err != nil {
		return nil, Dialect{}, err
	}

	dsn := cfg.Path
	maxConns := cfg.MaxOpenConns
	if dialect == SQLite {
		dsn = sqliteDSN(cfg)
		maxConns = 1
	}

	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("open %s store: %w", dialect.Name, err)
	}
	db.SetMaxOpenConns(maxConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, Dialect{}, fmt.Errorf("ping %s store: %w", dialect.Name, err)
	}

	return db, dialect, nil
}

// sqliteDSN builds a go-sqlite3 DSN for a file path, enabling WAL journaling,
// NORMAL synchronous mode, foreign keys and a busy timeout.
func sqliteDSN(cfg config.StoreConfig) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", fmt.Sprint(cfg.BusyTimeout.Milliseconds()))

	if cfg.Path == ":memory:" {
		return "file::memory:?" + params.Encode()
	}

	params.Set("_journal_mode", "WAL")
	params.Set("_synchronous", "NORMAL")
	return "file:" + escapePath(cfg.Path) + "?" + params.Encode()
}

// escapePath percent-escapes each path segment so that '?', '#' and '%' in a
// file name are not read as URI syntax.
func escapePath(path string) string {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
