package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneMap(t *testing.T) {
	t.Run("Should copy a populated map independently of the source", func(t *testing.T) {
		src := map[string]int{"a": 1, "b": 2}
		got := CloneMap(src)
		assert.Equal(t, src, got)
		got["a"] = 99
		assert.Equal(t, 1, src["a"])
	})
	t.Run("Should return an empty initialized map for nil input", func(t *testing.T) {
		var src map[string]int
		got := CloneMap(src)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCopyMaps(t *testing.T) {
	t.Run("Should merge maps with later maps overriding earlier ones", func(t *testing.T) {
		a := map[string]int{"x": 1, "y": 2}
		b := map[string]int{"y": 20, "z": 3}
		got := CopyMaps(a, b)
		assert.Equal(t, map[string]int{"x": 1, "y": 20, "z": 3}, got)
	})
	t.Run("Should skip nil maps", func(t *testing.T) {
		a := map[string]int{"x": 1}
		got := CopyMaps[string, int](nil, a, nil)
		assert.Equal(t, map[string]int{"x": 1}, got)
	})
	t.Run("Should return an empty map when every input is nil", func(t *testing.T) {
		got := CopyMaps[string, int](nil, nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestDeepCopy(t *testing.T) {
	t.Run("Should deep copy primitives by value", func(t *testing.T) {
		got, err := DeepCopy(42)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})
	t.Run("Should deep copy a nested map so the clone diverges from the source", func(t *testing.T) {
		orig := map[string]any{
			"a": 1,
			"nested": map[string]any{
				"b": []int{1, 2, 3},
			},
		}
		cpy, err := DeepCopy(orig)
		require.NoError(t, err)
		assert.Equal(t, orig, cpy)

		nested := cpy["nested"].(map[string]any)
		nums := nested["b"].([]int)
		nums[0] = 999

		origNested := orig["nested"].(map[string]any)
		origNums := origNested["b"].([]int)
		assert.Equal(t, 1, origNums[0], "mutating the copy must not affect the source")
	})
	t.Run("Should deep copy a slice of structs recursively", func(t *testing.T) {
		type inner struct{ Vals []int }
		type outer struct{ Inner inner }
		orig := outer{Inner: inner{Vals: []int{1, 2, 3}}}
		cpy, err := DeepCopy(orig)
		require.NoError(t, err)
		assert.Equal(t, orig, cpy)
		cpy.Inner.Vals[0] = 100
		assert.Equal(t, 1, orig.Inner.Vals[0])
	})
}
