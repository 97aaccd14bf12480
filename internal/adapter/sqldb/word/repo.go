// Package word implements the word identity repository. A word string maps to
// exactly one id, assigned on first insertion and reused thereafter.
package word

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/wikt2sql/internal/adapter/sqldb"
)

const table = "words"

// Repo provides word persistence.
type Repo struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// New creates a new word repository.
func New(db *sql.DB, dialect sqldb.Dialect) *Repo {
	return &Repo{db: db, sb: dialect.Builder()}
}

// Ensure inserts word unless it already exists and reports whether a row was
// created. Uses the transaction from ctx if present.
func (r *Repo) Ensure(ctx context.Context, word string) (bool, error) {
	created, err := sqldb.InsertOrIgnore(ctx, r.db, r.sb.Insert(table).Columns("word").Values(word))
	if err != nil {
		return false, sqldb.MapError(err, "word", word)
	}
	return created, nil
}

// LookupID returns the id of word, or domain.ErrNotFound.
func (r *Repo) LookupID(ctx context.Context, word string) (int64, error) {
	query, args, err := r.sb.Select("id").From(table).Where(squirrel.Eq{"word": word}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build lookup query: %w", err)
	}

	var id int64
	if err := sqldb.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, sqldb.MapError(err, "word", word)
	}
	return id, nil
}

// Resolve returns the id of word, inserting it first if absent.
func (r *Repo) Resolve(ctx context.Context, word string) (id int64, created bool, err error) {
	created, err = r.Ensure(ctx, word)
	if err != nil {
		return 0, false, err
	}

	id, err = r.LookupID(ctx, word)
	if err != nil {
		return 0, false, err
	}
	return id, created, nil
}
