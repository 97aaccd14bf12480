package seeder

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wikt2sql/internal/domain"
)

// Counts holds numbers of rows actually inserted per table.
type Counts struct {
	Words       int
	Definitions int
	Related     int
	Synonyms    int
}

// Add accumulates o into c.
func (c *Counts) Add(o Counts) {
	c.Words += o.Words
	c.Definitions += o.Definitions
	c.Related += o.Related
	c.Synonyms += o.Synonyms
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	return c.Words + c.Definitions + c.Related + c.Synonyms
}

// WriteResult describes one committed record.
type WriteResult struct {
	WordID   int64
	Inserted Counts
}

// Writer persists records, one transaction per record.
type Writer struct {
	txm   TxManager
	words WordRepo
	defs  DefinitionRepo
	rels  RelationRepo
}

// NewWriter creates a new Writer.
func NewWriter(txm TxManager, words WordRepo, defs DefinitionRepo, rels RelationRepo) *Writer {
	return &Writer{txm: txm, words: words, defs: defs, rels: rels}
}

// Write stores rec atomically: the primary word, every non-empty gloss, and
// the related and synonym edges. On error nothing from rec is visible and the
// zero WriteResult is returned.
func (w *Writer) Write(ctx context.Context, rec domain.Record) (WriteResult, error) {
	var res WriteResult

	err := w.txm.RunInTx(ctx, func(ctx context.Context) error {
		res = WriteResult{}

		id, created, err := w.words.Resolve(ctx, rec.Word)
		if err != nil {
			return fmt.Errorf("resolve word: %w", err)
		}
		res.WordID = id
		if created {
			res.Inserted.Words++
		}

		for _, sense := range rec.Senses {
			for _, gloss := range sense.Glosses {
				if gloss == "" {
					continue
				}
				ok, err := w.defs.Insert(ctx, id, rec.POS, gloss)
				if err != nil {
					return fmt.Errorf("insert definition: %w", err)
				}
				if ok {
					res.Inserted.Definitions++
				}
			}
		}

		words, edges, err := w.link(ctx, domain.RelationRelated, id, rec.Related)
		if err != nil {
			return err
		}
		res.Inserted.Words += words
		res.Inserted.Related += edges

		words, edges, err = w.link(ctx, domain.RelationSynonym, id, rec.Synonyms)
		if err != nil {
			return err
		}
		res.Inserted.Words += words
		res.Inserted.Synonyms += edges
		return nil
	})
	if err != nil {
		return WriteResult{}, err
	}

	return res, nil
}

// link resolves each target and stores the edge from wordID. It returns the
// number of newly created words and edges.
func (w *Writer) link(ctx context.Context, kind domain.RelationKind, wordID int64, refs []domain.WordRef) (words, edges int, err error) {
	for _, ref := range refs {
		otherID, created, err := w.words.Resolve(ctx, ref.Word)
		if err != nil {
			return 0, 0, fmt.Errorf("resolve %s word %q: %w", kind, ref.Word, err)
		}
		if created {
			words++
		}

		ok, err := w.rels.Link(ctx, kind, wordID, otherID)
		if err != nil {
			return 0, 0, fmt.Errorf("link %s word %q: %w", kind, ref.Word, err)
		}
		if ok {
			edges++
		}
	}
	return words, edges, nil
}

// DiscardWriter accepts every record without storing anything. Used for dry
// runs.
type DiscardWriter struct{}

func (DiscardWriter) Write(context.Context, domain.Record) (WriteResult, error) {
	return WriteResult{}, nil
}
