// Package wiktionary decodes Kaikki (wiktextract) JSONL lines into domain records.
// Pure functions: bytes in, domain structs out. No database dependencies.
package wiktionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	errMissingWord = errors.New(`word reference has no "word" field`)
	errNullSense   = errors.New("sense is null")
	errNullGloss   = errors.New("gloss is null")
)

// kaikkiEntry mirrors the Kaikki JSONL structure (only fields we need).
// Absent fields keep their zero value; an explicit null is rejected.
type kaikkiEntry struct {
	Word     string
	POS      string
	Senses   []kaikkiSense
	Related  []kaikkiWordRef
	Synonyms []kaikkiWordRef
}

func (e *kaikkiEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Word     json.RawMessage `json:"word"`
		POS      json.RawMessage `json:"pos"`
		Senses   json.RawMessage `json:"senses"`
		Related  json.RawMessage `json:"related"`
		Synonyms json.RawMessage `json:"synonyms"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		name string
		raw  json.RawMessage
		dst  any
	}{
		{"word", raw.Word, &e.Word},
		{"pos", raw.POS, &e.POS},
		{"senses", raw.Senses, &e.Senses},
		{"related", raw.Related, &e.Related},
		{"synonyms", raw.Synonyms, &e.Synonyms},
	}
	for _, f := range fields {
		if err := decodeField(f.name, f.raw, f.dst); err != nil {
			return err
		}
	}
	return nil
}

// kaikkiSense mirrors one sense from a Kaikki entry.
type kaikkiSense struct {
	Glosses []string
}

func (s *kaikkiSense) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNullSense
	}

	var raw struct {
		Glosses json.RawMessage `json:"glosses"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var glosses []*string
	if err := decodeField("glosses", raw.Glosses, &glosses); err != nil {
		return err
	}
	if glosses == nil {
		return nil
	}

	s.Glosses = make([]string, 0, len(glosses))
	for _, g := range glosses {
		if g == nil {
			return errNullGloss
		}
		s.Glosses = append(s.Glosses, *g)
	}
	return nil
}

// kaikkiWordRef mirrors an element of the related/synonyms arrays.
// Unlike the entry fields, "word" is mandatory here.
type kaikkiWordRef struct {
	Word string
}

func (w *kaikkiWordRef) UnmarshalJSON(data []byte) error {
	var raw struct {
		Word *string `json:"word"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Word == nil {
		return errMissingWord
	}
	w.Word = *raw.Word
	return nil
}

// decodeField unmarshals a present, non-null field into dst.
func decodeField(name string, raw json.RawMessage, dst any) error {
	if raw == nil {
		return nil
	}
	if isNull(raw) {
		return fmt.Errorf("field %q is null", name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
