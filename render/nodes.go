package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/compozy/liquid/engine/core"
	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/filter"
	"github.com/compozy/liquid/value"
)

// TextNode is a literal run of source text between tags/outputs,
// already trimmed per spec 4.D.4's `{{-`/`-}}`/`{%-`/`-%}` markers.
type TextNode struct {
	Text string
}

func (n TextNode) Render(_ *Runtime, w io.Writer) error {
	_, err := io.WriteString(w, n.Text)
	return err
}

// IsBlank reports true when the text has no non-whitespace ASCII
// character (spec 4.F.3), not merely when it is empty.
func (n TextNode) IsBlank() bool {
	return strings.TrimFunc(n.Text, isASCIISpace) == ""
}
func (n TextNode) IsText() bool { return true }

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

var _ Renderable = TextNode{}

// OutputNode is a `{{ expr | filters }}` interpolation: an expression
// evaluated against the current scope, then piped through a bound
// filter chain, then rendered to text (spec 4.D/4.E).
type OutputNode struct {
	Expr    expr.Expression
	Filters *filter.Chain
}

func (n OutputNode) Render(rt *Runtime, w io.Writer) error {
	v, ok := rt.TryEvaluate(n.Expr)
	if !ok {
		if rt.Strict {
			return core.NewRenderError(
				fmt.Errorf("undefined variable"),
				"E_UNDEFINED_VARIABLE",
				rt.Trace(),
				map[string]any{"expr": fmt.Sprintf("%v", n.Expr)},
				nil,
			)
		}
		v = value.Nil()
	}
	if n.Filters != nil && n.Filters.Len() > 0 {
		out, err := n.Filters.Evaluate(v, rt.stack)
		if err != nil {
			return err
		}
		v = out
	}
	_, err := io.WriteString(w, v.Render())
	return err
}

// IsBlank is conservative: an output node can only be known blank when
// its expression is a blank literal with no filters, since filters may
// produce non-blank text from a blank input.
func (n OutputNode) IsBlank() bool {
	if n.Filters != nil && n.Filters.Len() > 0 {
		return false
	}
	lit, ok := n.Expr.(expr.Literal)
	return ok && lit.V.QueryState(value.Blank)
}

func (n OutputNode) IsText() bool { return false }

var _ Renderable = OutputNode{}

// SequenceNode renders a list of child nodes in order; it is the
// top-level container the parser builds a template's body from, and
// the body a BlockParser wraps for each branch of a control-flow
// block (spec 4.D/4.F).
type SequenceNode struct {
	Children []Renderable
}

func (n SequenceNode) Render(rt *Runtime, w io.Writer) error {
	for _, c := range n.Children {
		if err := c.Render(rt, w); err != nil {
			return err
		}
	}
	return nil
}

func (n SequenceNode) IsBlank() bool {
	for _, c := range n.Children {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

func (n SequenceNode) IsText() bool {
	for _, c := range n.Children {
		if !c.IsText() {
			return false
		}
	}
	return len(n.Children) > 0
}

var _ Renderable = SequenceNode{}
