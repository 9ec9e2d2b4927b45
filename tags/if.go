// Package tags implements the control-flow blocks of spec 4.F:
// if/unless/elsif/else, case/when/else with parse-time whitespace
// elision, and for with break/continue, on top of the parser and
// render packages.
package tags

import (
	"io"

	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/lexer"
	"github.com/compozy/liquid/parser"
	"github.com/compozy/liquid/render"
	"github.com/compozy/liquid/value"
)

// IfBlock implements both `if` and `unless` (spec 4.F.1): the only
// difference is whether the leading condition is negated. `elsif`
// desugars into an additional branch rather than a nested node, which
// is equivalent to (and cheaper than) the spec's literal "nested if in
// the else branch" description.
type IfBlock struct{ Negate bool }

type ifBranch struct {
	cond expr.Expression
	body render.Renderable
}

type ifNode struct {
	branches []ifBranch
	elseBody render.Renderable
}

func (n *ifNode) Render(rt *render.Runtime, w io.Writer) error {
	for _, b := range n.branches {
		if b.cond.Evaluate(rt.Stack()).QueryState(value.Truthy) {
			return b.body.Render(rt, w)
		}
	}
	if n.elseBody != nil {
		return n.elseBody.Render(rt, w)
	}
	return nil
}

// IsBlank is conservative: if/unless is a tag, and spec 4.F.3 treats
// tags as non-blank by default for the purposes of case-block elision.
func (n *ifNode) IsBlank() bool { return false }
func (n *ifNode) IsText() bool  { return false }

var _ render.Renderable = (*ifNode)(nil)

func (b IfBlock) Parse(p *parser.Parser, args string, pos lexer.Position) (render.Renderable, error) {
	cond, err := p.ParseCondition(args, pos)
	if err != nil {
		return nil, err
	}
	if b.Negate {
		cond = notCond{cond}
	}
	endName := "endif"
	if b.Negate {
		endName = "endunless"
	}
	node := &ifNode{}
	for {
		body, stop, stopArgs, stopPos, err := p.ParseUntil("elsif", "else", endName)
		if err != nil {
			return nil, err
		}
		node.branches = append(node.branches, ifBranch{cond: cond, body: body})
		switch stop {
		case "elsif":
			cond, err = p.ParseCondition(stopArgs, stopPos)
			if err != nil {
				return nil, err
			}
			continue
		case "else":
			elseBody, _, _, _, err := p.ParseUntil(endName)
			if err != nil {
				return nil, err
			}
			node.elseBody = elseBody
			return node, nil
		default: // endName
			return node, nil
		}
	}
}

type notCond struct{ inner expr.Expression }

func (n notCond) TryEvaluate(stack expr.Stack) (value.Value, bool) { return n.Evaluate(stack), true }
func (n notCond) Evaluate(stack expr.Stack) value.Value {
	return value.NewBool(!n.inner.Evaluate(stack).QueryState(value.Truthy))
}

var _ expr.Expression = notCond{}
var _ parser.BlockParser = IfBlock{}
