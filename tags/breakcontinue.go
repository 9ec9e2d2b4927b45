package tags

import (
	"io"

	"github.com/compozy/liquid/lexer"
	"github.com/compozy/liquid/parser"
	"github.com/compozy/liquid/render"
)

// BreakTag and ContinueTag implement `{% break %}`/`{% continue %}`
// (spec 4.F.4): they signal the enclosing ForBlock via a sentinel
// error that forNode.Render intercepts and never lets escape further.
type BreakTag struct{}
type ContinueTag struct{}

type breakNode struct{}
type continueNode struct{}

func (breakNode) Render(*render.Runtime, io.Writer) error    { return breakSignal{} }
func (breakNode) IsBlank() bool                              { return true }
func (breakNode) IsText() bool                                { return false }
func (continueNode) Render(*render.Runtime, io.Writer) error { return continueSignal{} }
func (continueNode) IsBlank() bool                            { return true }
func (continueNode) IsText() bool                             { return false }

var _ render.Renderable = breakNode{}
var _ render.Renderable = continueNode{}
var _ parser.TagParser = BreakTag{}
var _ parser.TagParser = ContinueTag{}

func (BreakTag) Parse(*parser.Parser, string, lexer.Position) (render.Renderable, error) {
	return breakNode{}, nil
}

func (ContinueTag) Parse(*parser.Parser, string, lexer.Position) (render.Renderable, error) {
	return continueNode{}, nil
}
