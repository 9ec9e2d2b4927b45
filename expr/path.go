package expr

import "github.com/compozy/liquid/value"

// Accessor is one step of a path: a string key (dot or bracketed) or
// an integer index, or — for `[expr]` bracket forms — an arbitrary
// sub-expression evaluated to a string or integer (spec 4.C).
type Accessor struct{ Expr Expression }

// NewKeyAccessor builds a constant string-key accessor (`.name` or
// `["name"]`).
func NewKeyAccessor(name string) Accessor {
	return Accessor{Expr: Literal{V: value.NewString(name)}}
}

// NewIndexAccessor builds a constant integer-index accessor (`[0]`).
func NewIndexAccessor(i int64) Accessor {
	return Accessor{Expr: Literal{V: value.NewInteger(i)}}
}

// NewExprAccessor builds a dynamic bracket accessor (`[user.id]`).
func NewExprAccessor(e Expression) Accessor {
	return Accessor{Expr: e}
}

func (a Accessor) resolve(stack Stack) value.Value {
	return a.Expr.Evaluate(stack)
}

// Variable is a root name followed by zero or more accessors.
type Variable struct {
	Root      string
	Accessors []Accessor
}

func (v Variable) TryEvaluate(stack Stack) (value.Value, bool) {
	cur, ok := stack.Resolve(v.Root)
	if !ok {
		return value.Nil(), false
	}
	for _, acc := range v.Accessors {
		key := acc.resolve(stack)
		cur, ok = applyAccessor(cur, key)
		if !ok {
			return value.Nil(), false
		}
	}
	return cur, true
}

func (v Variable) Evaluate(stack Stack) value.Value {
	res, ok := v.TryEvaluate(stack)
	if !ok {
		return value.Nil()
	}
	return res
}

// applyAccessor traverses one step of a path: object lookup by key,
// array lookup by (negative-normalized) integer index, anything else
// is a miss.
func applyAccessor(cur value.Value, key value.Value) (value.Value, bool) {
	if obj, ok := cur.AsObject(); ok {
		return obj.Get(key.ToKStr())
	}
	if arr, ok := cur.AsArray(); ok {
		s, ok := key.AsScalar()
		if !ok || s.Kind != value.ScalarInteger {
			return value.Value{}, false
		}
		return arr.Get(int(s.Int))
	}
	return value.Value{}, false
}

var _ Expression = Variable{}
