package wiktionary

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/wikt2sql/internal/domain"
)

var errNotObject = errors.New("line is not a JSON object")

// Decode converts a single JSONL line into a Record. Absent fields default to
// the empty string or an empty slice; an explicit null in a known field is a
// decode error. Unknown fields are ignored.
func Decode(line []byte) (domain.Record, error) {
	var entry *kaikkiEntry
	if err := json.Unmarshal(line, &entry); err != nil {
		return domain.Record{}, fmt.Errorf("unmarshal entry: %w", err)
	}
	if entry == nil {
		return domain.Record{}, errNotObject
	}
	return entry.toRecord(), nil
}

func (e *kaikkiEntry) toRecord() domain.Record {
	rec := domain.Record{
		Word:     e.Word,
		POS:      e.POS,
		Senses:   make([]domain.Definition, 0, len(e.Senses)),
		Related:  toWordRefs(e.Related),
		Synonyms: toWordRefs(e.Synonyms),
	}
	for _, s := range e.Senses {
		rec.Senses = append(rec.Senses, domain.Definition{Glosses: s.Glosses})
	}
	return rec
}

func toWordRefs(in []kaikkiWordRef) []domain.WordRef {
	out := make([]domain.WordRef, 0, len(in))
	for _, w := range in {
		out = append(out, domain.WordRef{Word: w.Word})
	}
	return out
}
