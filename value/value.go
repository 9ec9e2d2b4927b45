package value

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Value is the tagged union at the center of the value model: Nil,
// Scalar, Array, Object, or a host-supplied Custom (drop). Exactly
// one payload is meaningful at a time, selected by Kind().
type Value struct {
	kind   Kind
	scalar Scalar
	arr    []Value
	obj    map[string]Value
	custom Drop
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the Nil variant.
func (v Value) IsNil() bool { return v.kind == KindNil }

// Render produces the human-readable output form (spec 4.A).
func (v Value) Render() string {
	switch v.kind {
	case KindNil:
		return ""
	case KindScalar:
		return v.scalar.ToKStr()
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = renderElement(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		keys := objectView{v.obj}.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%q=>%s", k, renderElement(v.obj[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindCustom:
		return v.custom.Render()
	default:
		return ""
	}
}

// renderElement formats a value nested inside an array or object:
// arrays/objects render themselves recursively, everything else is
// JSON-encoded (string-quoted, numeric literal, `nil` for Nil).
func renderElement(v Value) string {
	switch v.kind {
	case KindArray, KindObject:
		return v.Render()
	case KindNil:
		return "nil"
	case KindCustom:
		return jsonQuote(v.custom.Render())
	case KindScalar:
		switch v.scalar.Kind {
		case ScalarString:
			return jsonQuote(v.scalar.Str)
		case ScalarBool:
			if v.scalar.Bool {
				return "true"
			}
			return "false"
		case ScalarInteger, ScalarFloat:
			return v.scalar.ToKStr()
		case ScalarDate, ScalarDateTime:
			return jsonQuote(v.scalar.ToKStr())
		}
	}
	return "nil"
}

func jsonQuote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

// Source produces a debug/reconstruction form. It is intentionally
// free to differ from Render — equality tests must compare Render
// output, never Source (spec 4.9 Open Question).
func (v Value) Source() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindScalar:
		switch v.scalar.Kind {
		case ScalarString:
			return jsonQuote(v.scalar.Str)
		default:
			return v.scalar.ToKStr()
		}
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.Source()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		keys := objectView{v.obj}.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s: %s", k, v.obj[k].Source())
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case KindCustom:
		return v.custom.Source()
	default:
		return ""
	}
}

// TypeName names v's variant for diagnostics.
func (v Value) TypeName() string {
	switch v.kind {
	case KindScalar:
		return v.scalar.Kind.String()
	case KindCustom:
		return v.custom.TypeName()
	default:
		return v.kind.String()
	}
}

// ToKStr coerces v to its string form (identical to Render except
// for Custom, which defers to the drop's own coercion).
func (v Value) ToKStr() string {
	if v.kind == KindCustom {
		return v.custom.ToKStr()
	}
	return v.Render()
}

// ToValue deep-clones v into an owned Value with no aliasing to the
// source's backing arrays/maps, recursively: nested arrays/objects
// inside v are cloned too, not just the top-level slice/map (spec
// 4.A: "Values cloned by to_value are deep copies").
func (v Value) ToValue() Value {
	switch v.kind {
	case KindArray:
		cloned := make([]Value, len(v.arr))
		for i, e := range v.arr {
			cloned[i] = e.ToValue()
		}
		return NewArray(cloned)
	case KindObject:
		cloned := make(map[string]Value, len(v.obj))
		for k, e := range v.obj {
			cloned[k] = e.ToValue()
		}
		return NewObject(cloned)
	case KindCustom:
		return v.custom.ToValue()
	default:
		return v
	}
}

// QueryState answers the boolean predicates of spec 4.A.
func (v Value) QueryState(s State) bool {
	if v.kind == KindCustom {
		return v.custom.QueryState(s)
	}
	switch s {
	case Truthy:
		return !(v.kind == KindNil || (v.kind == KindScalar && v.scalar.Kind == ScalarBool && !v.scalar.Bool))
	case DefaultValue:
		if v.kind == KindNil {
			return false
		}
		if v.kind == KindScalar && v.scalar.Kind == ScalarBool {
			return !v.scalar.Bool
		}
		return v.QueryState(Empty)
	case Empty:
		switch v.kind {
		case KindScalar:
			return v.scalar.Kind == ScalarString && v.scalar.Str == ""
		case KindArray:
			return len(v.arr) == 0
		case KindObject:
			return len(v.obj) == 0
		default:
			return false
		}
	case Blank:
		switch v.kind {
		case KindNil:
			return true
		case KindScalar:
			switch v.scalar.Kind {
			case ScalarBool:
				return !v.scalar.Bool
			case ScalarString:
				return strings.TrimFunc(v.scalar.Str, isASCIIWhitespace) == ""
			default:
				return false
			}
		default:
			return false
		}
	default:
		return false
	}
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// AsScalar narrows v to its Scalar payload.
func (v Value) AsScalar() (Scalar, bool) {
	if v.kind == KindCustom {
		return v.custom.AsScalar()
	}
	if v.kind != KindScalar {
		return Scalar{}, false
	}
	return v.scalar, true
}

// AsArray narrows v to an ArrayView.
func (v Value) AsArray() (ArrayView, bool) {
	if v.kind == KindCustom {
		return v.custom.AsArray()
	}
	if v.kind != KindArray {
		return nil, false
	}
	return arrayView{v.arr}, true
}

// AsObject narrows v to an ObjectView.
func (v Value) AsObject() (ObjectView, bool) {
	if v.kind == KindCustom {
		return v.custom.AsObject()
	}
	if v.kind != KindObject {
		return nil, false
	}
	return objectView{v.obj}, true
}

var _ ValueView = Value{}
