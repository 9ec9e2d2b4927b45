package tags

import (
	"io"

	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/lexer"
	"github.com/compozy/liquid/parser"
	"github.com/compozy/liquid/render"
	"github.com/compozy/liquid/value"
)

// ForBlock implements `for`/`endfor` (spec 4.F.4): iterates an array,
// pushing a new lexical frame per spec's contract that holds the loop
// variable and forloop metadata, popped on exit regardless of
// break/continue or error.
type ForBlock struct{}

type forNode struct {
	varName    string
	collection expr.Expression
	reversed   bool
	limit      expr.Expression
	offset     expr.Expression
	body       render.Renderable
	elseBody   render.Renderable // renders when the collection is empty
}

// breakSignal/continueSignal are render-local control-flow signals;
// ForNode.Render is the only place that ever catches them.
type breakSignal struct{}
type continueSignal struct{}

func (breakSignal) Error() string    { return "break outside for" }
func (continueSignal) Error() string { return "continue outside for" }

func (n *forNode) Render(rt *render.Runtime, w io.Writer) error {
	coll := n.collection.Evaluate(rt.Stack())
	arr, ok := coll.AsArray()
	items := []value.Value(nil)
	if ok {
		items = arr.Values()
	} else if obj, ok := coll.AsObject(); ok {
		for _, k := range obj.Keys() {
			v, _ := obj.Get(k)
			items = append(items, value.NewArray([]value.Value{value.NewString(k), v}))
		}
	}
	if len(items) == 0 {
		if n.elseBody != nil {
			return n.elseBody.Render(rt, w)
		}
		return nil
	}

	start := 0
	if n.offset != nil {
		start = int(scalarInt(n.offset.Evaluate(rt.Stack())))
	}
	if start > len(items) {
		start = len(items)
	}
	items = items[start:]
	if n.limit != nil {
		lim := int(scalarInt(n.limit.Evaluate(rt.Stack())))
		if lim >= 0 && lim < len(items) {
			items = items[:lim]
		}
	}
	if n.reversed {
		reversed := make([]value.Value, len(items))
		for i, v := range items {
			reversed[len(items)-1-i] = v
		}
		items = reversed
	}

	total := len(items)
	for i, item := range items {
		rt.PushFrame()
		rt.Stack().Set(n.varName, item)
		rt.Stack().Set("forloop", loopMeta(i, total))
		err := n.body.Render(rt, w)
		rt.PopFrame()
		if err != nil {
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			if _, ok := err.(continueSignal); ok {
				continue
			}
			return err
		}
	}
	return nil
}

func scalarInt(v value.Value) int64 {
	s, ok := v.AsScalar()
	if !ok {
		return 0
	}
	return s.ToNumber().IntPart()
}

func loopMeta(i, total int) value.Value {
	return value.NewObject(map[string]value.Value{
		"index":     value.NewInteger(int64(i + 1)),
		"index0":    value.NewInteger(int64(i)),
		"rindex":    value.NewInteger(int64(total - i)),
		"rindex0":   value.NewInteger(int64(total - i - 1)),
		"first":     value.NewBool(i == 0),
		"last":      value.NewBool(i == total-1),
		"length":    value.NewInteger(int64(total)),
	})
}

func (n *forNode) IsBlank() bool { return false }
func (n *forNode) IsText() bool  { return false }

var _ render.Renderable = (*forNode)(nil)
var _ parser.BlockParser = ForBlock{}

func (ForBlock) Parse(p *parser.Parser, args string, pos lexer.Position) (render.Renderable, error) {
	h, err := p.ParseForHeader(args, pos)
	if err != nil {
		return nil, err
	}
	node := &forNode{
		varName:    h.VarName,
		collection: h.Collection,
		reversed:   h.Reversed,
		limit:      h.Limit,
		offset:     h.Offset,
	}

	body, stop, _, _, err := p.ParseUntil("else", "endfor")
	if err != nil {
		return nil, err
	}
	node.body = body
	if stop == "else" {
		elseBody, _, _, _, eerr := p.ParseUntil("endfor")
		if eerr != nil {
			return nil, eerr
		}
		node.elseBody = elseBody
	}
	return node, nil
}
