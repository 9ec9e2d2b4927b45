package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseError(t *testing.T) {
	t.Run("Should build from error with code, position, and details", func(t *testing.T) {
		e := NewParseError(errors.New("unknown tag"), "E_PARSE", 3, 7, "{% bogus %}", map[string]any{"k": "v"})
		assert.Equal(t, "unknown tag", e.Error())
		m := e.AsMap()
		assert.Equal(t, "unknown tag", m["message"])
		assert.Equal(t, "E_PARSE", m["code"])
		assert.Equal(t, map[string]any{"k": "v"}, m["details"])
		assert.Equal(t, 3, m["line"])
		assert.Equal(t, 7, m["col"])
		assert.Equal(t, "{% bogus %}", m["excerpt"])
	})
	t.Run("Should build from nil error and handle empty/nil cases", func(t *testing.T) {
		e := NewParseError(nil, "", 0, 0, "", nil)
		assert.Equal(t, "unknown error", e.Error())
		var enil *ParseError
		assert.Equal(t, "", enil.Error())
		assert.Nil(t, enil.AsMap())
	})
	t.Run("Should unwrap to the underlying cause", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewParseError(cause, "E_PARSE", 1, 1, "", nil)
		assert.Equal(t, cause, errors.Unwrap(e))
	})
}

func Test_RenderError(t *testing.T) {
	t.Run("Should build from error with code, trace, and context", func(t *testing.T) {
		e := NewRenderError(
			errors.New("unknown variable"),
			"E_RENDER",
			[]string{"{% if x %}", "{{ y }}"},
			map[string]any{"y": nil},
			map[string]any{"k": "v"},
		)
		assert.Equal(t, "unknown variable", e.Error())
		m := e.AsMap()
		assert.Equal(t, "unknown variable", m["message"])
		assert.Equal(t, "E_RENDER", m["code"])
		assert.Equal(t, []string{"{% if x %}", "{{ y }}"}, m["trace"])
		assert.Equal(t, map[string]any{"y": nil}, m["context"])
	})
	t.Run("Should build from nil error and handle empty/nil cases", func(t *testing.T) {
		e := NewRenderError(nil, "", nil, nil, nil)
		assert.Equal(t, "unknown error", e.Error())
		var enil *RenderError
		assert.Equal(t, "", enil.Error())
		assert.Nil(t, enil.AsMap())
	})
	t.Run("Should unwrap to the underlying cause", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewRenderError(cause, "E_RENDER", nil, nil, nil)
		assert.Equal(t, cause, errors.Unwrap(e))
	})
}
