package value

import (
	"github.com/tidwall/gjson"
)

// JSONDrop is a Drop backed by raw JSON text (spec 4.A "Custom"):
// Get/Keys resolve through gjson's path queries without first
// decoding the whole document into a Value tree, which matters for
// large host payloads where only a few fields are ever read during a
// render. ToValue/AsArray/AsObject fall back to a full decode, cached
// after the first call, for callers that do need the whole shape.
type JSONDrop struct {
	raw    string
	cached *Value
}

// NewJSONDropValue wraps raw JSON text as a Custom value.
func NewJSONDropValue(raw string) Value {
	return NewCustom(&JSONDrop{raw: raw})
}

func (d *JSONDrop) result() gjson.Result { return gjson.Parse(d.raw) }

func (d *JSONDrop) decode() Value {
	if d.cached != nil {
		return *d.cached
	}
	v := gjsonToValue(d.result())
	d.cached = &v
	return v
}

func (d *JSONDrop) Render() string   { return d.decode().Render() }
func (d *JSONDrop) Source() string   { return d.decode().Source() }
func (d *JSONDrop) TypeName() string { return d.decode().TypeName() }
func (d *JSONDrop) ToKStr() string   { return d.decode().ToKStr() }
func (d *JSONDrop) ToValue() Value   { return d.decode().ToValue() }

func (d *JSONDrop) QueryState(s State) bool { return d.decode().QueryState(s) }
func (d *JSONDrop) AsScalar() (Scalar, bool) { return d.decode().AsScalar() }
func (d *JSONDrop) AsArray() (ArrayView, bool) { return d.decode().AsArray() }
func (d *JSONDrop) AsObject() (ObjectView, bool) { return d.decode().AsObject() }

// Get resolves key via gjson directly, the accelerated path this type
// exists for: no full-document decode for a single field access.
func (d *JSONDrop) Get(key string) (Value, bool) {
	r := d.result().Get(key)
	if !r.Exists() {
		return Value{}, false
	}
	return gjsonToValue(r), true
}

func (d *JSONDrop) Keys() []string {
	r := d.result()
	if !r.IsObject() {
		return nil
	}
	var keys []string
	r.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}

var _ Drop = (*JSONDrop)(nil)

// gjsonToValue converts a gjson.Result into the owned Value model.
func gjsonToValue(r gjson.Result) Value {
	switch {
	case !r.Exists() || r.Type == gjson.Null:
		return Nil()
	case r.IsArray():
		items := r.Array()
		out := make([]Value, len(items))
		for i, e := range items {
			out[i] = gjsonToValue(e)
		}
		return NewArray(out)
	case r.IsObject():
		fields := map[string]Value{}
		r.ForEach(func(k, v gjson.Result) bool {
			fields[k.String()] = gjsonToValue(v)
			return true
		})
		return NewObject(fields)
	case r.Type == gjson.True || r.Type == gjson.False:
		return NewBool(r.Bool())
	case r.Type == gjson.String:
		return NewString(r.String())
	case r.Type == gjson.Number:
		if r.Num == float64(int64(r.Num)) {
			return NewInteger(int64(r.Num))
		}
		return NewFloat(r.Num)
	default:
		return Nil()
	}
}
