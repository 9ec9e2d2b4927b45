package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDrop struct{ fields map[string]Value }

func (d fakeDrop) Render() string   { return "fake" }
func (d fakeDrop) Source() string   { return "<fake>" }
func (d fakeDrop) TypeName() string { return "fake" }
func (d fakeDrop) ToKStr() string   { return "fake" }
func (d fakeDrop) ToValue() Value   { return NewObject(d.fields) }
func (d fakeDrop) QueryState(s State) bool {
	if s == Truthy {
		return true
	}
	return false
}
func (d fakeDrop) AsScalar() (Scalar, bool)   { return Scalar{}, false }
func (d fakeDrop) AsArray() (ArrayView, bool) { return nil, false }
func (d fakeDrop) AsObject() (ObjectView, bool) {
	return objectView{d.fields}, true
}
func (d fakeDrop) Get(key string) (Value, bool) {
	v, ok := d.fields[key]
	return v, ok
}
func (d fakeDrop) Keys() []string {
	out := make([]string, 0, len(d.fields))
	for k := range d.fields {
		out = append(out, k)
	}
	return out
}

func TestNullDropBehavesLikeNil(t *testing.T) {
	v := NewCustom(nil)
	assert.False(t, v.QueryState(Truthy))
	assert.Equal(t, "drop", v.TypeName())
	assert.Equal(t, "", v.Render())
}

func TestCustomDropDelegatesObjectView(t *testing.T) {
	d := fakeDrop{fields: map[string]Value{"name": NewString("Ada")}}
	v := NewCustom(d)

	obj, ok := v.AsObject()
	require.True(t, ok)
	got, ok := obj.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Ada", got.Render())
	assert.True(t, v.QueryState(Truthy))
}
