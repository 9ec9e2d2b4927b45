// Package render implements the runtime evaluator (spec 4.G): the
// variable-binding stack, the render-to-writer driver, and the error
// trace accumulator. It also defines the Renderable contract that the
// parser's tree of nodes and the tags package's control-flow blocks
// implement, plus the two universal leaf nodes (text, output).
package render

import (
	"io"
	"strings"

	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/value"
)

// Renderable is anything the render driver can walk: text, `{{ }}`
// output, and `{% %}` tag/block nodes all implement it.
type Renderable interface {
	// Render writes this node's output to w using rt's current scope.
	Render(rt *Runtime, w io.Writer) error
	// IsBlank reports whether this node is guaranteed to render no
	// non-whitespace output (spec 4.F.3/4.G).
	IsBlank() bool
	// IsText reports whether this node is a pure-text leaf.
	IsText() bool
}

// Template is a compiled, immutable tree ready to render repeatedly.
type Template struct {
	Root   Renderable
	Source string
}

// Runtime holds everything a render pass needs: the lexical frame
// stack (globals included), a trace accumulator, and the strict-lookup
// flag. The output sink is passed to each Render call, not stored. A
// Runtime is exclusively owned by a single render.
type Runtime struct {
	stack   *Stack
	trace   []string
	Strict  bool // strict lookup: unknown variable is a render error
}

// NewRuntime constructs a Runtime with empty globals.
func NewRuntime() *Runtime {
	return &Runtime{stack: NewStack()}
}

// Stack exposes the variable-binding stack for direct manipulation
// (spec 4.G `stack().get(path)`).
func (rt *Runtime) Stack() *Stack { return rt.stack }

// SetGlobal binds name in the outermost (global) frame.
func (rt *Runtime) SetGlobal(name string, v value.Value) {
	rt.stack.SetGlobal(name, v)
}

// PushFrame/PopFrame manage lexical scopes for control-flow blocks
// (spec 4.F.4): the frame is popped on exit regardless of error.
func (rt *Runtime) PushFrame() { rt.stack.Push() }
func (rt *Runtime) PopFrame()  { rt.stack.Pop() }

// PushTrace/PopTrace maintain the enclosing-block trace spec 6/7
// requires on render errors (innermost inside outermost).
func (rt *Runtime) PushTrace(s string) { rt.trace = append(rt.trace, s) }
func (rt *Runtime) PopTrace() {
	if len(rt.trace) > 0 {
		rt.trace = rt.trace[:len(rt.trace)-1]
	}
}
func (rt *Runtime) Trace() []string {
	out := make([]string, len(rt.trace))
	copy(out, rt.trace)
	return out
}

// Render walks tmpl's tree and returns the rendered output as a
// string (spec 4.G `render(template) -> String`).
func (rt *Runtime) Render(tmpl *Template) (string, error) {
	var sb strings.Builder
	if err := rt.RenderTo(tmpl, &sb); err != nil {
		return sb.String(), err
	}
	return sb.String(), nil
}

// RenderTo walks tmpl's tree, writing to w (spec 4.G `render_to`).
// Output produced before an error is left written and visible to the
// caller — the driver never rewinds the sink.
func (rt *Runtime) RenderTo(tmpl *Template, w io.Writer) error {
	if tmpl == nil || tmpl.Root == nil {
		return nil
	}
	return tmpl.Root.Render(rt, w)
}

// Evaluate/TryEvaluate let nodes reach the current scope through the
// expr.Stack contract without importing expr.Stack's implementation.
func (rt *Runtime) Evaluate(e expr.Expression) value.Value { return e.Evaluate(rt.stack) }
func (rt *Runtime) TryEvaluate(e expr.Expression) (value.Value, bool) {
	return e.TryEvaluate(rt.stack)
}
