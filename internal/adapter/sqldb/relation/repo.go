// Package relation implements the directed word-to-word edge tables.
package relation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/wikt2sql/internal/adapter/sqldb"
	"github.com/heartmarshall/wikt2sql/internal/domain"
)

// tables maps each relation kind to its edge table.
var tables = map[domain.RelationKind]string{
	domain.RelationRelated: "related_words",
	domain.RelationSynonym: "synonymous_words",
}

// Repo provides edge persistence.
type Repo struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// New creates a new relation repository.
func New(db *sql.DB, dialect sqldb.Dialect) *Repo {
	return &Repo{db: db, sb: dialect.Builder()}
}

// Table returns the edge table name for kind.
func Table(kind domain.RelationKind) (string, error) {
	table, ok := tables[kind]
	if !ok {
		return "", fmt.Errorf("unknown relation kind %q", kind)
	}
	return table, nil
}

// Link stores the edge wordID -> otherID for kind unless it already exists,
// and reports whether a row was created. Self-loops are allowed and no
// reverse edge is added.
func (r *Repo) Link(ctx context.Context, kind domain.RelationKind, wordID, otherID int64) (bool, error) {
	table, err := Table(kind)
	if err != nil {
		return false, err
	}

	ib := r.sb.Insert(table).
		Columns("word_id", "other_id").
		Values(wordID, otherID)

	created, err := sqldb.InsertOrIgnore(ctx, r.db, ib)
	if err != nil {
		return false, sqldb.MapError(err, table, fmt.Sprintf("%d->%d", wordID, otherID))
	}
	return created, nil
}
