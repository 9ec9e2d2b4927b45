package filter

import (
	"strings"
	"testing"

	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopStack struct{}

func (nopStack) Resolve(string) (value.Value, bool) { return value.Value{}, false }

func TestChainEvaluatesLeftToRight(t *testing.T) {
	upcase := FilterFunc(func(in value.Value, _ expr.Stack) (value.Value, error) {
		return value.NewString(strings.ToUpper(in.ToKStr())), nil
	})
	exclaim := FilterFunc(func(in value.Value, _ expr.Stack) (value.Value, error) {
		return value.NewString(in.ToKStr() + "!"), nil
	})
	chain := NewChain()
	chain.Add("upcase", upcase)
	chain.Add("exclaim", exclaim)

	out, err := chain.Evaluate(value.NewString("hi"), nopStack{})
	require.NoError(t, err)
	assert.Equal(t, "HI!", out.Render())
}

func TestChainWrapsFilterErrorWithName(t *testing.T) {
	boom := FilterFunc(func(value.Value, expr.Stack) (value.Value, error) {
		return value.Value{}, assertErr{}
	})
	chain := NewChain()
	chain.Add("boom", boom)

	_, err := chain.Evaluate(value.NewString("x"), nopStack{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

type assertErr struct{}

func (assertErr) Error() string { return "kaboom" }

func TestFromFuncBindsPositionalArguments(t *testing.T) {
	repeat := FromFunc(func(s string, n int64) string {
		return strings.Repeat(s, int(n))
	})
	f, err := repeat.Parse(Args{Positional: []expr.Expression{expr.Literal{V: value.NewInteger(3)}}})
	require.NoError(t, err)

	out, err := f.Evaluate(value.NewString("ab"), nopStack{})
	require.NoError(t, err)
	assert.Equal(t, "ababab", out.Render())
}

func TestFromFuncPropagatesErrorResult(t *testing.T) {
	strict := FromFunc(func(s string) (string, error) {
		if s == "" {
			return "", assertErr{}
		}
		return s, nil
	})
	f, err := strict.Parse(Args{})
	require.NoError(t, err)

	_, err = f.Evaluate(value.NewString(""), nopStack{})
	assert.Error(t, err)
}

func TestFromFuncRejectsTooManyArguments(t *testing.T) {
	one := FromFunc(func(s string) string { return s })
	_, err := one.Parse(Args{Positional: []expr.Expression{
		expr.Literal{V: value.NewInteger(1)},
		expr.Literal{V: value.NewInteger(2)},
	}})
	assert.Error(t, err)
}
