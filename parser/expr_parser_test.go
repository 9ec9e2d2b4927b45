package parser

import (
	"testing"

	"github.com/compozy/liquid/lexer"
	"github.com/compozy/liquid/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStack map[string]value.Value

func (m mapStack) Resolve(name string) (value.Value, bool) {
	v, ok := m[name]
	return v, ok
}

func TestParseConditionComparison(t *testing.T) {
	reg := newTestRegistry()
	p := New(nil, reg)
	cond, err := p.ParseCondition("age >= 18", lexer.Position{Line: 1, Col: 1})
	require.NoError(t, err)

	assert.True(t, cond.Evaluate(mapStack{"age": value.NewInteger(21)}).QueryState(value.Truthy))
	assert.False(t, cond.Evaluate(mapStack{"age": value.NewInteger(10)}).QueryState(value.Truthy))
}

func TestParseConditionAndOrLeftToRight(t *testing.T) {
	reg := newTestRegistry()
	p := New(nil, reg)
	cond, err := p.ParseCondition("a and b or c", lexer.Position{Line: 1, Col: 1})
	require.NoError(t, err)

	stack := mapStack{"a": value.NewBool(false), "b": value.NewBool(true), "c": value.NewBool(true)}
	assert.True(t, cond.Evaluate(stack).QueryState(value.Truthy))

	stack2 := mapStack{"a": value.NewBool(false), "b": value.NewBool(true), "c": value.NewBool(false)}
	assert.False(t, cond.Evaluate(stack2).QueryState(value.Truthy))
}

// TestParseConditionAndBindsTighterThanOr pins spec 4.F.1's worked
// example: `A or B and C` parses as `A or (B and C)`, not `(A or B) and
// C` — with A=true, B=false, C=false the two readings disagree
// (true vs false).
func TestParseConditionAndBindsTighterThanOr(t *testing.T) {
	reg := newTestRegistry()
	p := New(nil, reg)
	cond, err := p.ParseCondition("a or b and c", lexer.Position{Line: 1, Col: 1})
	require.NoError(t, err)

	stack := mapStack{"a": value.NewBool(true), "b": value.NewBool(false), "c": value.NewBool(false)}
	assert.True(t, cond.Evaluate(stack).QueryState(value.Truthy))
}

func TestParseConditionContains(t *testing.T) {
	reg := newTestRegistry()
	p := New(nil, reg)
	cond, err := p.ParseCondition("title contains 'cat'", lexer.Position{Line: 1, Col: 1})
	require.NoError(t, err)
	assert.True(t, cond.Evaluate(mapStack{"title": value.NewString("concatenate")}).QueryState(value.Truthy))
}

func TestParseConditionStateComparison(t *testing.T) {
	reg := newTestRegistry()
	p := New(nil, reg)
	cond, err := p.ParseCondition("name == blank", lexer.Position{Line: 1, Col: 1})
	require.NoError(t, err)
	assert.True(t, cond.Evaluate(mapStack{"name": value.NewString("  ")}).QueryState(value.Truthy))
	assert.False(t, cond.Evaluate(mapStack{"name": value.NewString("x")}).QueryState(value.Truthy))
}

func TestParseConditionNot(t *testing.T) {
	reg := newTestRegistry()
	p := New(nil, reg)
	cond, err := p.ParseCondition("not done", lexer.Position{Line: 1, Col: 1})
	require.NoError(t, err)
	assert.True(t, cond.Evaluate(mapStack{"done": value.NewBool(false)}).QueryState(value.Truthy))
}

func TestParseValueListCommaSeparated(t *testing.T) {
	reg := newTestRegistry()
	p := New(nil, reg)
	exprs, err := p.ParseValueList("1, 2, 'x'", lexer.Position{Line: 1, Col: 1})
	require.NoError(t, err)
	require.Len(t, exprs, 3)
	assert.Equal(t, "x", exprs[2].Evaluate(mapStack{}).ToKStr())
}

func TestParseAssignment(t *testing.T) {
	reg := newTestRegistry()
	p := New(nil, reg)
	name, e, chain, err := p.ParseAssignment("y = 5", lexer.Position{Line: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, "y", name)
	assert.Equal(t, int64(5), mustScalar(t, e.Evaluate(mapStack{})).Int)
	assert.Equal(t, 0, chain.Len())
}

func mustScalar(t *testing.T, v value.Value) value.Scalar {
	t.Helper()
	s, ok := v.AsScalar()
	require.True(t, ok)
	return s
}

func TestParseIndexAccessor(t *testing.T) {
	reg := newTestRegistry()
	p := New(nil, reg)
	e, _, err := p.ParseOutputExpr("items[0]", lexer.Position{Line: 1, Col: 1})
	require.NoError(t, err)
	stack := mapStack{"items": value.NewArray([]value.Value{value.NewString("a"), value.NewString("b")})}
	assert.Equal(t, "a", e.Evaluate(stack).ToKStr())
}
