// Package filter implements the filter pipeline (spec 4.E): parsing
// `| name: arg, kw: arg` chains and evaluating them left-to-right
// against a host-provided filter registry.
package filter

import (
	"fmt"

	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/value"
)

// ParamType is the closed enumeration a FilterParser validates its
// arguments against (spec 6).
type ParamType int

const (
	Integer ParamType = iota
	Float
	Bool
	String
	Date
	DateTime
	Any
)

// Args is the parsed argument list of one filter invocation: ordered
// positional expressions and a keyword map, both evaluated against
// the active Stack at render time.
type Args struct {
	Positional []expr.Expression
	Keyword    map[string]expr.Expression
}

// Eval returns the i'th positional argument's value, or value.Nil()
// if absent.
func (a Args) Eval(stack expr.Stack, i int) value.Value {
	if i < 0 || i >= len(a.Positional) {
		return value.Nil()
	}
	return a.Positional[i].Evaluate(stack)
}

// Kw returns a keyword argument's value and whether it was supplied.
func (a Args) Kw(stack expr.Stack, name string) (value.Value, bool) {
	e, ok := a.Keyword[name]
	if !ok {
		return value.Nil(), false
	}
	return e.Evaluate(stack), true
}

// Filter is the bound evaluator a FilterParser produces: argument
// validation already happened at parse time, so Evaluate only does
// the per-render work.
type Filter interface {
	Evaluate(input value.Value, stack expr.Stack) (value.Value, error)
}

// FilterFunc adapts a plain function to Filter.
type FilterFunc func(input value.Value, stack expr.Stack) (value.Value, error)

func (f FilterFunc) Evaluate(input value.Value, stack expr.Stack) (value.Value, error) {
	return f(input, stack)
}

// FilterParser validates a filter's argument list and produces a
// bound Filter. Parsing happens once, at template-parse time, and an
// error returned here is reported as a parse error. An error a Filter
// returns at render time is wrapped by Chain in an *Error that names
// the filter; Chain leaves Error.Role empty. Filters built by FromFunc
// do not report argument type mismatches: each argument is coerced to
// the Go parameter type instead.
type FilterParser interface {
	Parse(args Args) (Filter, error)
}

// FilterParserFunc adapts a plain function to FilterParser.
type FilterParserFunc func(Args) (Filter, error)

func (f FilterParserFunc) Parse(args Args) (Filter, error) { return f(args) }

// Registry looks up a FilterParser by name. language.Language
// implements Registry.
type Registry interface {
	Lookup(name string) (FilterParser, bool)
}

// Error wraps a render-time filter failure with the filter name and
// argument role, per spec 4.E/6.
type Error struct {
	Filter string
	Role   string
	Err    error
}

func (e *Error) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("filter %q: %s: %v", e.Filter, e.Role, e.Err)
	}
	return fmt.Sprintf("filter %q: %v", e.Filter, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
