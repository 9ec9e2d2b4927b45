package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayNegativeIndex(t *testing.T) {
	arr, ok := NewArray([]Value{NewInteger(10), NewInteger(20), NewInteger(30)}).AsArray()
	require.True(t, ok)

	t.Run("negative index counts from the end", func(t *testing.T) {
		v, ok := arr.Get(-1)
		require.True(t, ok)
		assert.Equal(t, int64(30), mustInt(t, v))
	})
	t.Run("get(i) == get(len+i) for -len <= i < 0", func(t *testing.T) {
		for _, i := range []int{-1, -2, -3} {
			a, aok := arr.Get(i)
			b, bok := arr.Get(arr.Size() + i)
			require.Equal(t, aok, bok)
			assert.True(t, Equal(a, b))
		}
	})
	t.Run("out of range yields absent", func(t *testing.T) {
		_, ok := arr.Get(3)
		assert.False(t, ok)
		_, ok = arr.Get(-4)
		assert.False(t, ok)
	})
}

func mustInt(t *testing.T, v Value) int64 {
	t.Helper()
	s, ok := v.AsScalar()
	require.True(t, ok)
	return s.Int
}

func TestArrayPreservesInsertionOrder(t *testing.T) {
	arr, _ := NewArray([]Value{NewInteger(3), NewInteger(1), NewInteger(2)}).AsArray()
	assert.Equal(t, int64(3), mustInt(t, arr.Values()[0]))
	assert.Equal(t, int64(1), mustInt(t, arr.Values()[1]))
	assert.Equal(t, int64(2), mustInt(t, arr.Values()[2]))
}
