package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumberCoercion(t *testing.T) {
	t.Run("numeric string parses", func(t *testing.T) {
		s, _ := NewString("42").AsScalar()
		assert.Equal(t, int64(42), s.ToNumber().IntPart())
	})
	t.Run("non-numeric string yields zero in arithmetic context", func(t *testing.T) {
		s, _ := NewString("abc").AsScalar()
		assert.True(t, s.ToNumber().IsZero())
	})
	t.Run("bool coerces to 1/0", func(t *testing.T) {
		s, _ := NewBool(true).AsScalar()
		assert.Equal(t, int64(1), s.ToNumber().IntPart())
	})
}

func TestTryNumberAbsentForNonNumeric(t *testing.T) {
	s, _ := NewString("abc").AsScalar()
	_, ok := s.TryNumber()
	assert.False(t, ok)
}

func TestFromAnyConvertsHostValues(t *testing.T) {
	m := map[string]any{"a": 1, "b": []any{1, "two", nil}}
	v := FromAny(m)
	obj, ok := v.AsObject()
	assert.True(t, ok)
	a, _ := obj.Get("a")
	assert.Equal(t, int64(1), mustInt(t, a))
}

func TestFromAnyNilIsValueNil(t *testing.T) {
	assert.True(t, FromAny(nil).IsNil())
}
