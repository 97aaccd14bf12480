package sqldb

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
)

// Querier is the common interface implemented by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// unexported context key type for storing tx
type txCtxKey struct{}

// withTx puts a transaction into the context.
func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns the database handle.
func QuerierFromCtx(ctx context.Context, db *sql.DB) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

// InsertOrIgnore executes ib with ON CONFLICT DO NOTHING and reports whether
// a row was inserted. Both SQLite and PostgreSQL accept the target-less form.
func InsertOrIgnore(ctx context.Context, db *sql.DB, ib squirrel.InsertBuilder) (bool, error) {
	query, args, err := ib.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return false, err
	}

	res, err := QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
