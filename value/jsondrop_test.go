package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONDropGetResolvesNestedPath(t *testing.T) {
	v := NewJSONDropValue(`{"user": {"name": "Ada", "age": 30}}`)
	obj, ok := v.AsObject()
	require.True(t, ok)
	user, ok := obj.Get("user")
	require.True(t, ok)
	inner, ok := user.AsObject()
	require.True(t, ok)
	name, ok := inner.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Ada", name.ToKStr())
}

func TestJSONDropDirectGetAccelerated(t *testing.T) {
	drop := &JSONDrop{raw: `{"a": {"b": {"c": 42}}}`}
	v, ok := drop.Get("a.b.c")
	require.True(t, ok)
	s, ok := v.AsScalar()
	require.True(t, ok)
	assert.Equal(t, int64(42), s.Int)
}

func TestJSONDropArray(t *testing.T) {
	v := NewJSONDropValue(`[1, 2, 3]`)
	arr, ok := v.AsArray()
	require.True(t, ok)
	assert.Equal(t, 3, arr.Size())
	e, ok := arr.Get(1)
	require.True(t, ok)
	assert.Equal(t, "2", e.ToKStr())
}

func TestJSONDropMissingKey(t *testing.T) {
	drop := &JSONDrop{raw: `{"a": 1}`}
	_, ok := drop.Get("missing")
	assert.False(t, ok)
}

func TestJSONDropRenderAndTypeName(t *testing.T) {
	v := NewJSONDropValue(`{"x": 1}`)
	assert.Equal(t, "object", v.TypeName())
	assert.NotEmpty(t, v.Render())
}
