package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectIterationOrder(t *testing.T) {
	obj, ok := NewObject(map[string]Value{
		"zebra": NewInteger(1),
		"alpha": NewInteger(2),
		"mango": NewInteger(3),
	}).AsObject()
	require.True(t, ok)

	var seen []string
	obj.Iter(func(key string, _ Value) bool {
		seen = append(seen, key)
		return true
	})
	assert.Equal(t, []string{"alpha", "mango", "zebra"}, seen)
	assert.Equal(t, []string{"alpha", "mango", "zebra"}, obj.Keys())
}

func TestObjectContainsKey(t *testing.T) {
	obj, _ := NewObject(map[string]Value{"present": NewBool(true)}).AsObject()
	assert.True(t, obj.ContainsKey("present"))
	assert.False(t, obj.ContainsKey("absent"))
}

func TestObjectCopyIsolatesCaller(t *testing.T) {
	src := map[string]Value{"a": NewInteger(1)}
	obj := NewObject(src)
	src["a"] = NewInteger(99)
	view, _ := obj.AsObject()
	v, ok := view.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), mustInt(t, v))
}
