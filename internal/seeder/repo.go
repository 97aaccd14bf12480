// Package seeder defines interfaces and orchestration for loading a
// line-delimited dictionary dump into the relational store.
package seeder

import (
	"context"

	"github.com/heartmarshall/wikt2sql/internal/domain"
)

// The contracts below use only domain types; no adapter imports.

// TxManager runs fn inside one transaction carried by the context passed to it.
// Implemented by sqldb.TxManager.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WordRepo maps word strings to stable ids. Implemented by word.Repo.
type WordRepo interface {
	Resolve(ctx context.Context, word string) (id int64, created bool, err error)
}

// DefinitionRepo stores (word, pos, gloss) triples. Implemented by definition.Repo.
type DefinitionRepo interface {
	Insert(ctx context.Context, wordID int64, pos, gloss string) (bool, error)
}

// RelationRepo stores directed word edges. Implemented by relation.Repo.
type RelationRepo interface {
	Link(ctx context.Context, kind domain.RelationKind, wordID, otherID int64) (bool, error)
}

// RecordWriter persists one record. Implemented by Writer and DiscardWriter.
type RecordWriter interface {
	Write(ctx context.Context, rec domain.Record) (WriteResult, error)
}
