package tags

import (
	"io"

	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/filter"
	"github.com/compozy/liquid/lexer"
	"github.com/compozy/liquid/parser"
	"github.com/compozy/liquid/render"
)

// AssignTag implements `{% assign name = expr [| filters] %}`. It
// never produces output, so IsBlank reports true unconditionally —
// this is what lets an assign-only case/when branch participate in
// spec 4.F.3's whitespace elision.
type AssignTag struct{}

type assignNode struct {
	name    string
	expr    expr.Expression
	filters *filter.Chain
}

func (n *assignNode) Render(rt *render.Runtime, _ io.Writer) error {
	v := rt.Evaluate(n.expr)
	if n.filters != nil && n.filters.Len() > 0 {
		out, err := n.filters.Evaluate(v, rt.Stack())
		if err != nil {
			return err
		}
		v = out
	}
	rt.Stack().Set(n.name, v)
	return nil
}

func (n *assignNode) IsBlank() bool { return true }
func (n *assignNode) IsText() bool  { return false }

var _ render.Renderable = (*assignNode)(nil)
var _ parser.TagParser = AssignTag{}

func (AssignTag) Parse(p *parser.Parser, args string, pos lexer.Position) (render.Renderable, error) {
	name, e, chain, err := p.ParseAssignment(args, pos)
	if err != nil {
		return nil, err
	}
	return &assignNode{name: name, expr: e, filters: chain}, nil
}
