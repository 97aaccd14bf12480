package wiktionary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wikt2sql/internal/domain"
)

func TestDecode_EmptyObjectDefaults(t *testing.T) {
	t.Parallel()

	rec, err := Decode([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "", rec.Word)
	assert.Equal(t, "", rec.POS)
	assert.Empty(t, rec.Senses)
	assert.Empty(t, rec.Related)
	assert.Empty(t, rec.Synonyms)
	assert.False(t, rec.HasAnyDefinitions(), "empty record must be filtered out")
}

func TestDecode_FullEntry(t *testing.T) {
	t.Parallel()

	line := `{"word":"cat","pos":"noun","lang":"English",` +
		`"senses":[{"glosses":["a feline","a pet"],"tags":["common"]},{"glosses":[]},{}],` +
		`"related":[{"word":"kitten","sense":"young"}],` +
		`"synonyms":[{"word":"moggy"},{"word":"puss"}]}`

	rec, err := Decode([]byte(line))
	require.NoError(t, err)

	want := domain.Record{
		Word: "cat",
		POS:  "noun",
		Senses: []domain.Definition{
			{Glosses: []string{"a feline", "a pet"}},
			{Glosses: []string{}},
			{Glosses: nil},
		},
		Related:  []domain.WordRef{{Word: "kitten"}},
		Synonyms: []domain.WordRef{{Word: "moggy"}, {Word: "puss"}},
	}
	assert.Equal(t, want, rec)
	assert.Equal(t, 2, rec.NumDefinitions())
}

func TestDecode_NonASCII(t *testing.T) {
	t.Parallel()

	rec, err := Decode([]byte(`{"word":"кошка","pos":"noun","senses":[{"glosses":["cat"]}]}`))
	require.NoError(t, err)
	assert.Equal(t, "кошка", rec.Word)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "malformed json", line: `{"word": "cat"`},
		{name: "empty line", line: ``},
		{name: "not json", line: `cat, noun, a feline`},
		{name: "top-level array", line: `[{"word":"cat"}]`},
		{name: "top-level string", line: `"cat"`},
		{name: "top-level null", line: `null`},
		{name: "word has wrong type", line: `{"word": 42}`},
		{name: "senses has wrong type", line: `{"word":"cat","senses":"a feline"}`},
		{name: "glosses has wrong type", line: `{"word":"cat","senses":[{"glosses":[1,2]}]}`},
		{name: "related element without word", line: `{"word":"cat","related":[{"sense":"x"}]}`},
		{name: "synonym element is a string", line: `{"word":"cat","synonyms":["moggy"]}`},
		{name: "word is null", line: `{"word":null,"senses":[{"glosses":["g"]}]}`},
		{name: "pos is null", line: `{"word":"cat","pos":null}`},
		{name: "gloss element is null", line: `{"senses":[{"glosses":[null]}]}`},
		{name: "glosses is null", line: `{"word":"cat","senses":[{"glosses":null}]}`},
		{name: "senses is null", line: `{"senses":null}`},
		{name: "sense element is null", line: `{"senses":[null]}`},
		{name: "related is null", line: `{"word":"cat","related":null}`},
		{name: "synonym element is null", line: `{"word":"cat","synonyms":[null]}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(tt.line))
			assert.Error(t, err)
		})
	}
}

func TestDecode_NullIsNotAnObject(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`null`))
	if !errors.Is(err, errNotObject) {
		t.Fatalf("expected errNotObject, got %v", err)
	}
}

func TestDecode_MissingWordReference(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"word":"cat","related":[{}]}`))
	if !errors.Is(err, errMissingWord) {
		t.Fatalf("expected errMissingWord, got %v", err)
	}
}

func TestDecode_NullFieldIsRejected(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"word":null,"senses":[{"glosses":["g"]}]}`))
	assert.ErrorContains(t, err, `field "word" is null`)

	_, err = Decode([]byte(`{"word":"cat","senses":[{"glosses":["g",null]}]}`))
	assert.ErrorIs(t, err, errNullGloss)

	_, err = Decode([]byte(`{"word":"cat","senses":[{"glosses":["g"]},null]}`))
	assert.ErrorIs(t, err, errNullSense)
}
