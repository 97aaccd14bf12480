// Package testhelper opens schema-initialized stores for tests: a private
// in-memory SQLite database per test, or a shared PostgreSQL container.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/wikt2sql/internal/adapter/sqldb"
	"github.com/heartmarshall/wikt2sql/internal/config"
	"github.com/heartmarshall/wikt2sql/schema"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupSQLite returns an in-memory SQLite database with the bundled schema
// applied. Every call gets a fresh, empty database closed via t.Cleanup.
func SetupSQLite(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, _, err := sqldb.Open(ctx, config.StoreConfig{
		Driver:       config.DriverSQLite,
		Path:         ":memory:",
		MaxOpenConns: 1,
		BusyTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("testhelper: open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	applySchema(t, ctx, db, config.DriverSQLite)
	return db
}

// SetupPostgres starts a shared PostgreSQL container (once for the entire test
// run), applies the bundled schema and returns a handle to it. All tables are
// truncated so each test starts from an empty store; callers must not run in
// parallel.
func SetupPostgres(t *testing.T) *sql.DB {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, _, err := sqldb.Open(ctx, config.StoreConfig{
		Driver:       config.DriverPostgres,
		Path:         sharedDSN,
		MaxOpenConns: 4,
	})
	if err != nil {
		t.Fatalf("testhelper: open postgres: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	applySchema(t, ctx, db, config.DriverPostgres)

	if _, err := db.ExecContext(ctx,
		`TRUNCATE words, definitions, related_words, synonymous_words RESTART IDENTITY CASCADE`,
	); err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}

	return db
}

func applySchema(t *testing.T, ctx context.Context, db *sql.DB, driver string) {
	t.Helper()

	ddl, err := schema.Default(driver)
	if err != nil {
		t.Fatalf("testhelper: load schema: %v", err)
	}
	if err := sqldb.NewBootstrapper(db, ddl).Apply(ctx); err != nil {
		t.Fatalf("testhelper: %v", err)
	}
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port()), nil
}
