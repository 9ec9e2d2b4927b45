// Package expr implements expression and path evaluation (spec 4.C):
// literal and variable expressions evaluated against a variable stack,
// with dotted/indexed path traversal over the value model.
package expr

import "github.com/compozy/liquid/value"

// Stack is the minimal variable-resolution capability expression
// evaluation needs. render.Stack implements it; expr never imports
// the render package, so there is no import cycle between the two
// halves of variable binding (lookup vs. scoping).
type Stack interface {
	// Resolve looks up a root name, lexical frame first then globals.
	Resolve(name string) (value.Value, bool)
}

// Expression is anything that can be evaluated against a Stack:
// literals and variable (path) references.
type Expression interface {
	// TryEvaluate returns (v, false) when the expression names an
	// absent binding; literals are never absent.
	TryEvaluate(stack Stack) (value.Value, bool)
	// Evaluate returns value.Nil() in place of an absent binding.
	Evaluate(stack Stack) value.Value
}

// Literal wraps a constant Value.
type Literal struct{ V value.Value }

func (l Literal) TryEvaluate(Stack) (value.Value, bool) { return l.V, true }
func (l Literal) Evaluate(Stack) value.Value            { return l.V }

var _ Expression = Literal{}
