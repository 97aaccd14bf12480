package domain

// Record is one decoded dictionary entry: a single word and part of speech
// with its definitions and outgoing relations.
type Record struct {
	Word     string
	POS      string
	Senses   []Definition
	Related  []WordRef
	Synonyms []WordRef
}

// Definition is a group of glosses belonging to one sense.
type Definition struct {
	Glosses []string
}

// Len returns the number of glosses in the group.
func (d Definition) Len() int {
	return len(d.Glosses)
}

// WordRef is a bare word used as the target of a related or synonym edge.
type WordRef struct {
	Word string
}

func (w WordRef) String() string {
	return w.Word
}

// HasAnyDefinitions reports whether at least one sense carries a gloss.
// Records without definitions are not persisted.
func (r *Record) HasAnyDefinitions() bool {
	for _, d := range r.Senses {
		if d.Len() > 0 {
			return true
		}
	}
	return false
}

// NumDefinitions returns the total number of glosses across all senses.
func (r *Record) NumDefinitions() int {
	n := 0
	for _, d := range r.Senses {
		n += d.Len()
	}
	return n
}

// RelationKind distinguishes the two word-to-word edge sets.
type RelationKind string

const (
	RelationRelated RelationKind = "related"
	RelationSynonym RelationKind = "synonym"
)
