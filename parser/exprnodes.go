package parser

import (
	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/value"
)

// comparisonExpr implements one `L op R` test of spec 4.F.1: equality,
// ordering, and the `contains` operator. Evaluating it never reports
// "absent" — any operand miss is treated as value.Nil() per spec's
// loose condition semantics, the way the if/unless grammar expects.
// It never reports an error either: an ordering of incompatible kinds
// and a `contains` whose left side is not a string, array or object
// (for which value.Contains returns an error) both evaluate to false.
type comparisonExpr struct {
	Op string // == != < > <= >= contains
	L  expr.Expression
	R  expr.Expression
}

func (c comparisonExpr) TryEvaluate(stack expr.Stack) (value.Value, bool) {
	return c.Evaluate(stack), true
}

func (c comparisonExpr) Evaluate(stack expr.Stack) value.Value {
	l := c.L.Evaluate(stack)
	r := c.R.Evaluate(stack)
	switch c.Op {
	case "==":
		return value.NewBool(value.Equal(l, r))
	case "!=", "<>":
		return value.NewBool(!value.Equal(l, r))
	case "contains":
		ok, err := value.Contains(l, r)
		if err != nil {
			return value.NewBool(false)
		}
		return value.NewBool(ok)
	default:
		cmp, ok := value.Compare(l, r)
		if !ok {
			return value.NewBool(false)
		}
		switch c.Op {
		case "<":
			return value.NewBool(cmp < 0)
		case ">":
			return value.NewBool(cmp > 0)
		case "<=":
			return value.NewBool(cmp <= 0)
		case ">=":
			return value.NewBool(cmp >= 0)
		default:
			return value.NewBool(false)
		}
	}
}

var _ expr.Expression = comparisonExpr{}

// stateComparisonExpr implements `x == empty` / `x != blank` (spec
// 4.F.1): a QueryState predicate test rather than value.Equal, since
// "empty"/"blank" name a state, not a representable value.
type stateComparisonExpr struct {
	Left   expr.Expression
	State  value.State
	Negate bool
}

func (c stateComparisonExpr) TryEvaluate(stack expr.Stack) (value.Value, bool) {
	return c.Evaluate(stack), true
}

func (c stateComparisonExpr) Evaluate(stack expr.Stack) value.Value {
	got := c.Left.Evaluate(stack).QueryState(c.State)
	if c.Negate {
		return value.NewBool(!got)
	}
	return value.NewBool(got)
}

var _ expr.Expression = stateComparisonExpr{}

// logicalExpr is one binary `and`/`or` node. The parser builds
// `and`-chains as the leaves of `or`-chains (spec 4.F.1: `and` binds
// tighter than `or`), so this node itself need only know its own
// operator and already-built operands; short-circuits on evaluation.
type logicalExpr struct {
	Op string // "and" | "or"
	L  expr.Expression
	R  expr.Expression
}

func (n logicalExpr) TryEvaluate(stack expr.Stack) (value.Value, bool) {
	return n.Evaluate(stack), true
}

func (n logicalExpr) Evaluate(stack expr.Stack) value.Value {
	l := n.L.Evaluate(stack).QueryState(value.Truthy)
	if n.Op == "and" {
		if !l {
			return value.NewBool(false)
		}
		return value.NewBool(n.R.Evaluate(stack).QueryState(value.Truthy))
	}
	if l {
		return value.NewBool(true)
	}
	return value.NewBool(n.R.Evaluate(stack).QueryState(value.Truthy))
}

var _ expr.Expression = logicalExpr{}

// notExpr implements a leading `not` negation of one comparison
// term, which original_source's if_block grammar allows ahead of the
// and/or chain.
type notExpr struct{ Inner expr.Expression }

func (n notExpr) TryEvaluate(stack expr.Stack) (value.Value, bool) { return n.Evaluate(stack), true }
func (n notExpr) Evaluate(stack expr.Stack) value.Value {
	return value.NewBool(!n.Inner.Evaluate(stack).QueryState(value.Truthy))
}

var _ expr.Expression = notExpr{}
