package tags

import (
	"io"

	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/lexer"
	"github.com/compozy/liquid/parser"
	"github.com/compozy/liquid/render"
	"github.com/compozy/liquid/value"
)

// CaseBlock implements `case`/`when`/`else` (spec 4.F.2/4.F.3).
type CaseBlock struct{}

type whenBranch struct {
	values []expr.Expression
	body   render.Renderable
}

type caseNode struct {
	target   expr.Expression
	branches []whenBranch
	elseBody render.Renderable
	blank    bool // computed at parse time (spec 4.F.3)
}

func (n *caseNode) Render(rt *render.Runtime, w io.Writer) error {
	target := n.target.Evaluate(rt.Stack())
	for _, b := range n.branches {
		for _, v := range b.values {
			if value.Equal(target, v.Evaluate(rt.Stack())) {
				return b.body.Render(rt, w)
			}
		}
	}
	if n.elseBody != nil {
		return n.elseBody.Render(rt, w)
	}
	return nil
}

func (n *caseNode) IsBlank() bool { return n.blank }
func (n *caseNode) IsText() bool  { return false }

var _ render.Renderable = (*caseNode)(nil)
var _ parser.BlockParser = CaseBlock{}

func (CaseBlock) Parse(p *parser.Parser, args string, pos lexer.Position) (render.Renderable, error) {
	target, err := p.ParseCondition(args, pos) // a bare operand is a valid condition expression
	if err != nil {
		return nil, err
	}
	node := &caseNode{target: target}

	body, stop, stopArgs, stopPos, err := p.ParseUntil("when", "else", "endcase")
	if err != nil {
		return nil, err
	}
	// Content before the first `when`/`else` is ignored (spec is silent;
	// Liquid implementations treat it as insignificant whitespace).
	_ = body

	for stop == "when" {
		values, verr := p.ParseValueList(stopArgs, stopPos)
		if verr != nil {
			return nil, verr
		}
		branchBody, nextStop, nextArgs, nextPos, berr := p.ParseUntil("when", "else", "endcase")
		if berr != nil {
			return nil, berr
		}
		node.branches = append(node.branches, whenBranch{values: values, body: branchBody})
		stop, stopArgs, stopPos = nextStop, nextArgs, nextPos
	}
	if stop == "else" {
		elseBody, afterElse, _, elsePos, eerr := p.ParseUntil("else", "endcase")
		if eerr != nil {
			return nil, eerr
		}
		node.elseBody = elseBody
		if afterElse == "else" {
			return nil, &parser.Error{Pos: elsePos, Message: "duplicate else in case block"}
		}
	}

	node.blank = allBlank(node)
	if node.blank {
		stripText(node)
	}
	return node, nil
}

func allBlank(n *caseNode) bool {
	for _, b := range n.branches {
		if !b.body.IsBlank() {
			return false
		}
	}
	return n.elseBody == nil || n.elseBody.IsBlank()
}

// stripText deletes pure-text children from every branch once the
// whole case block has been determined blank (spec 4.F.3), so a
// non-matching branch contributes nothing and a matching branch
// contributes only its non-text content (e.g. a nested output or tag).
func stripText(n *caseNode) {
	for i := range n.branches {
		n.branches[i].body = stripSequenceText(n.branches[i].body)
	}
	if n.elseBody != nil {
		n.elseBody = stripSequenceText(n.elseBody)
	}
}

func stripSequenceText(r render.Renderable) render.Renderable {
	seq, ok := r.(render.SequenceNode)
	if !ok {
		return r
	}
	kept := make([]render.Renderable, 0, len(seq.Children))
	for _, c := range seq.Children {
		if c.IsText() {
			continue
		}
		kept = append(kept, c)
	}
	return render.SequenceNode{Children: kept}
}
