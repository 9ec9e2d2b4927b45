package parser

import (
	"io"
	"strings"
	"testing"

	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/filter"
	"github.com/compozy/liquid/lexer"
	"github.com/compozy/liquid/render"
	"github.com/compozy/liquid/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRegistry is a minimal Registry used to exercise the parser in
// isolation, without depending on the tags/language packages (which
// are built on top of parser).
type testRegistry struct {
	tags    map[string]TagParser
	blocks  map[string]BlockParser
	filters map[string]filter.FilterParser
}

func newTestRegistry() *testRegistry {
	return &testRegistry{
		tags:    map[string]TagParser{},
		blocks:  map[string]BlockParser{},
		filters: map[string]filter.FilterParser{},
	}
}

func (r *testRegistry) LookupTag(name string) (TagParser, bool) {
	t, ok := r.tags[name]
	return t, ok
}

func (r *testRegistry) LookupBlock(name string) (BlockParser, bool) {
	b, ok := r.blocks[name]
	return b, ok
}

func (r *testRegistry) LookupFilter(name string) (filter.FilterParser, bool) {
	f, ok := r.filters[name]
	return f, ok
}

var _ Registry = (*testRegistry)(nil)

// testIfBlock is a stand-in for the real `if`/`endif` BlockParser,
// just enough to prove ParseUntil's nested-block recursion works.
type testIfBlock struct{}

func (testIfBlock) Parse(p *Parser, args string, pos lexer.Position) (render.Renderable, error) {
	cond, err := p.ParseCondition(args, pos)
	if err != nil {
		return nil, err
	}
	body, stop, elseArgs, _, err := p.ParseUntil("else", "endif")
	if err != nil {
		return nil, err
	}
	var elseBody render.Renderable
	if stop == "else" {
		_ = elseArgs
		elseBody, stop, _, _, err = p.ParseUntil("endif")
		if err != nil {
			return nil, err
		}
	}
	return testIfNode{cond: cond, body: body, elseBody: elseBody}, nil
}

type testIfNode struct {
	cond     expr.Expression
	body     render.Renderable
	elseBody render.Renderable
}

func (n testIfNode) Render(rt *render.Runtime, w io.Writer) error {
	if rt.Evaluate(n.cond).QueryState(value.Truthy) {
		return n.body.Render(rt, w)
	}
	if n.elseBody != nil {
		return n.elseBody.Render(rt, w)
	}
	return nil
}
func (n testIfNode) IsBlank() bool { return false }
func (n testIfNode) IsText() bool  { return false }

func upcaseFilter() filter.FilterParser {
	return filter.FilterParserFunc(func(filter.Args) (filter.Filter, error) {
		return filter.FilterFunc(func(in value.Value, _ expr.Stack) (value.Value, error) {
			return value.NewString(strings.ToUpper(in.ToKStr())), nil
		}), nil
	})
}

func TestParsePlainText(t *testing.T) {
	reg := newTestRegistry()
	tmpl, err := Parse("hello world", reg)
	require.NoError(t, err)
	rt := render.NewRuntime()
	out, err := rt.Render(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestParseOutputVariable(t *testing.T) {
	reg := newTestRegistry()
	tmpl, err := Parse("Hi, {{ name }}!", reg)
	require.NoError(t, err)
	rt := render.NewRuntime()
	rt.SetGlobal("name", value.NewString("Ada"))
	out, err := rt.Render(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "Hi, Ada!", out)
}

func TestParseOutputWithPath(t *testing.T) {
	reg := newTestRegistry()
	tmpl, err := Parse("{{ user.address.city }}", reg)
	require.NoError(t, err)
	rt := render.NewRuntime()
	rt.SetGlobal("user", value.NewObject(map[string]value.Value{
		"address": value.NewObject(map[string]value.Value{"city": value.NewString("Lagos")}),
	}))
	out, err := rt.Render(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "Lagos", out)
}

func TestParseUnknownFilterIsParseError(t *testing.T) {
	reg := newTestRegistry()
	_, err := Parse("{{ name | shout }}", reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filter")
}

func TestParseOutputAppliesRegisteredFilter(t *testing.T) {
	reg := newTestRegistry()
	reg.filters["upcase"] = upcaseFilter()
	tmpl, err := Parse("{{ name | upcase }}", reg)
	require.NoError(t, err)

	rt := render.NewRuntime()
	rt.SetGlobal("name", value.NewString("Ada"))
	out, err := rt.Render(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "ADA", out)
}

func TestParseUnknownTagIsParseError(t *testing.T) {
	reg := newTestRegistry()
	_, err := Parse("{% bogus %}", reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tag")
}

func TestParseNestedBlockWithElse(t *testing.T) {
	reg := newTestRegistry()
	reg.blocks["if"] = testIfBlock{}
	tmpl, err := Parse("{% if flag %}yes{% else %}no{% endif %}", reg)
	require.NoError(t, err)

	rt := render.NewRuntime()
	rt.SetGlobal("flag", value.NewBool(true))
	out, err := rt.Render(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "yes", out)

	rt2 := render.NewRuntime()
	rt2.SetGlobal("flag", value.NewBool(false))
	out2, err := rt2.Render(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "no", out2)
}

func TestParseUnterminatedBlockIsParseError(t *testing.T) {
	reg := newTestRegistry()
	reg.blocks["if"] = testIfBlock{}
	_, err := Parse("{% if x %}body", reg)
	require.Error(t, err)
}

func TestSplitTagHeader(t *testing.T) {
	name, args := splitTagHeader("assign x = 1")
	assert.Equal(t, "assign", name)
	assert.Equal(t, "x = 1", args)

	name, args = splitTagHeader("endif")
	assert.Equal(t, "endif", name)
	assert.Equal(t, "", args)
}
