package value

import (
	"fmt"
	"strings"
)

func resolve(v Value) Value {
	if v.kind == KindCustom {
		return v.custom.ToValue()
	}
	return v
}

func isNumeric(k ScalarKind) bool { return k == ScalarInteger || k == ScalarFloat }
func isDateish(k ScalarKind) bool { return k == ScalarDate || k == ScalarDateTime }

func scalarEqual(a, b Scalar) bool {
	if isNumeric(a.Kind) && isNumeric(b.Kind) {
		return a.ToNumber().Equal(b.ToNumber())
	}
	if isDateish(a.Kind) && isDateish(b.Kind) {
		return a.asDateTime().Equal(b.asDateTime())
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ScalarBool:
		return a.Bool == b.Bool
	case ScalarString:
		return a.Str == b.Str
	default:
		return false
	}
}

// Equal implements the value-equality relation of spec 4.3: equal
// semantic kind (with numeric cross-equality) and equal payload.
// Arrays/objects compare elementwise/keywise; incompatible kinds are
// never equal.
func Equal(a, b Value) bool {
	ra, rb := resolve(a), resolve(b)
	if ra.kind != rb.kind {
		return false
	}
	switch ra.kind {
	case KindNil:
		return true
	case KindScalar:
		return scalarEqual(ra.scalar, rb.scalar)
	case KindArray:
		if len(ra.arr) != len(rb.arr) {
			return false
		}
		for i := range ra.arr {
			if !Equal(ra.arr[i], rb.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(ra.obj) != len(rb.obj) {
			return false
		}
		for k, v := range ra.obj {
			ov, ok := rb.obj[k]
			if !ok || !Equal(v, ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare orders two scalars. ok is false when the values are not
// scalars of a mutually-ordered kind (e.g. string vs array); callers
// must not panic on such inputs (spec 4.3).
func Compare(a, b Value) (cmp int, ok bool) {
	ra, rb := resolve(a), resolve(b)
	if ra.kind != KindScalar || rb.kind != KindScalar {
		return 0, false
	}
	sa, sb := ra.scalar, rb.scalar
	switch {
	case isNumeric(sa.Kind) && isNumeric(sb.Kind):
		return sa.ToNumber().Cmp(sb.ToNumber()), true
	case isDateish(sa.Kind) && isDateish(sb.Kind):
		ta, tb := sa.asDateTime(), sb.asDateTime()
		switch {
		case ta.Before(tb):
			return -1, true
		case ta.After(tb):
			return 1, true
		default:
			return 0, true
		}
	case sa.Kind == ScalarString && sb.Kind == ScalarString:
		return strings.Compare(sa.Str, sb.Str), true
	default:
		return 0, false
	}
}

// Contains implements the `contains` operator semantics of spec
// 4.F.1: substring test for strings, key-membership for objects,
// elementwise equality for arrays. Any other left-hand kind returns
// an error.
func Contains(left, right Value) (bool, error) {
	rl := resolve(left)
	switch rl.kind {
	case KindScalar:
		if rl.scalar.Kind != ScalarString {
			return false, fmt.Errorf("string | array | object expected")
		}
		return strings.Contains(rl.scalar.Str, resolve(right).ToKStr()), nil
	case KindObject:
		return objectView{rl.obj}.ContainsKey(resolve(right).ToKStr()), nil
	case KindArray:
		for _, e := range rl.arr {
			if Equal(e, right) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("string | array | object expected")
	}
}
