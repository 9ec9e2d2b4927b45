package filter

import (
	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/value"
)

type boundFilter struct {
	name string
	f    Filter
}

// Chain is a fully-bound filter pipeline: by the time it exists, every
// filter name has already been resolved against a Registry (unknown
// filter is a parse-time error, spec 4.E), so Evaluate never consults
// a registry again.
type Chain struct {
	filters []boundFilter
}

// NewChain returns an empty Chain (the identity pipeline).
func NewChain() *Chain { return &Chain{} }

// Add appends a bound filter to the end of the pipeline.
func (c *Chain) Add(name string, f Filter) {
	c.filters = append(c.filters, boundFilter{name: name, f: f})
}

// Len reports how many filters are in the chain.
func (c *Chain) Len() int { return len(c.filters) }

// Evaluate applies the chain left-to-right, passing each filter's
// result as the next filter's input.
func (c *Chain) Evaluate(input value.Value, stack expr.Stack) (value.Value, error) {
	cur := input
	for _, bf := range c.filters {
		v, err := bf.f.Evaluate(cur, stack)
		if err != nil {
			return value.Nil(), &Error{Filter: bf.name, Err: err}
		}
		cur = v
	}
	return cur, nil
}
