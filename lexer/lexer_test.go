package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contents(els []Element) []string {
	out := make([]string, len(els))
	for i, e := range els {
		out[i] = e.Content
	}
	return out
}

func kinds(els []Element) []Kind {
	out := make([]Kind, len(els))
	for i, e := range els {
		out[i] = e.Kind
	}
	return out
}

func TestLexSplitsTextOutputTag(t *testing.T) {
	els, err := Lex("Hi {{ name }}, {% if x %}yes{% endif %}")
	require.NoError(t, err)
	require.Equal(t, []Kind{Text, Output, Text, Tag, Text, Tag}, kinds(els))
	assert.Equal(t, "name", els[1].Content)
	assert.Equal(t, "if x", els[3].Content)
	assert.Equal(t, "endif", els[5].Content)
}

func TestLexTrimMarkersStripAdjacentWhitespace(t *testing.T) {
	els, err := Lex("A \n {{- x -}} \n B")
	require.NoError(t, err)
	require.Len(t, els, 3)
	assert.Equal(t, "A", els[0].Content)
	assert.Equal(t, "x", els[1].Content)
	assert.Equal(t, "B", els[2].Content)
}

func TestLexQuotedStringHidesDelimiterLookalikes(t *testing.T) {
	els, err := Lex(`{% assign x = "}} not a close" %}`)
	require.NoError(t, err)
	require.Len(t, els, 1)
	assert.Equal(t, `assign x = "}} not a close"`, els[0].Content)
}

func TestLexUnterminatedTagIsError(t *testing.T) {
	_, err := Lex("{{ oops")
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 1, lexErr.Pos.Line)
}

func TestLexTracksLineAndColumn(t *testing.T) {
	els, err := Lex("a\nb {{ x }}")
	require.NoError(t, err)
	require.Len(t, els, 2)
	assert.Equal(t, 2, els[1].Pos.Line)
	assert.Equal(t, 3, els[1].Pos.Col)
}
