package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/heartmarshall/wikt2sql/internal/domain"
)

var errEmptySchema = errors.New("schema is empty")

// Bootstrapper applies a DDL batch to the store before any record is written.
// The batch is expected to be idempotent (CREATE ... IF NOT EXISTS).
type Bootstrapper struct {
	db  *sql.DB
	ddl string
}

// NewBootstrapper creates a Bootstrapper for the given DDL text.
func NewBootstrapper(db *sql.DB, ddl string) *Bootstrapper {
	return &Bootstrapper{db: db, ddl: ddl}
}

// Apply executes the whole DDL batch in one call. Both go-sqlite3 and pgx
// (simple protocol, no arguments) accept multiple statements per Exec.
func (b *Bootstrapper) Apply(ctx context.Context) error {
	if strings.TrimSpace(b.ddl) == "" {
		return &domain.SchemaError{Err: errEmptySchema}
	}

	if _, err := b.db.ExecContext(ctx, b.ddl); err != nil {
		return &domain.SchemaError{Err: err}
	}
	return nil
}
