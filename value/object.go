package value

import "sort"

// ObjectView exposes read-only access to a string-keyed mapping.
// Iteration order is ascending key order — this is observable in
// rendered output (spec 4.A).
type ObjectView interface {
	Size() int
	Get(key string) (Value, bool)
	ContainsKey(key string) bool
	Keys() []string
	Values() []Value
	Iter(func(key string, v Value) bool)
}

type objectView struct{ items map[string]Value }

func (o objectView) Size() int { return len(o.items) }

func (o objectView) Get(key string) (Value, bool) {
	v, ok := o.items[key]
	return v, ok
}

func (o objectView) ContainsKey(key string) bool {
	_, ok := o.items[key]
	return ok
}

// Keys returns the object's keys in ascending sort order.
func (o objectView) Keys() []string {
	keys := make([]string, 0, len(o.items))
	for k := range o.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o objectView) Values() []Value {
	keys := o.Keys()
	out := make([]Value, len(keys))
	for i, k := range keys {
		out[i] = o.items[k]
	}
	return out
}

func (o objectView) Iter(fn func(key string, v Value) bool) {
	for _, k := range o.Keys() {
		if !fn(k, o.items[k]) {
			return
		}
	}
}

// NewObject constructs an Object value from a string-keyed map. The
// map is copied; mutating the caller's map after construction has no
// effect on the returned Value.
func NewObject(fields map[string]Value) Value {
	out := make(map[string]Value, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return Value{kind: KindObject, obj: out}
}
