// Package definition implements the definitions repository: one row per
// (word, part of speech, gloss) triple.
package definition

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/wikt2sql/internal/adapter/sqldb"
)

// Repo provides definition persistence.
type Repo struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// New creates a new definition repository.
func New(db *sql.DB, dialect sqldb.Dialect) *Repo {
	return &Repo{db: db, sb: dialect.Builder()}
}

// Insert stores the triple unless an identical one exists and reports whether
// a row was created. The word must already exist.
func (r *Repo) Insert(ctx context.Context, wordID int64, pos, gloss string) (bool, error) {
	ib := r.sb.Insert("definitions").
		Columns("word_id", "pos", "gloss").
		Values(wordID, pos, gloss)

	created, err := sqldb.InsertOrIgnore(ctx, r.db, ib)
	if err != nil {
		return false, sqldb.MapError(err, "definition of word", strconv.FormatInt(wordID, 10))
	}
	return created, nil
}
