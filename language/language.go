// Package language implements the registry configuration of spec 4.H:
// a Language bundles tag, block, and filter registries and is the
// entry point a host uses to parse templates with its chosen set of
// extensions. It depends on parser/filter/tags but is never imported
// back by them, keeping the dependency graph acyclic.
package language

import (
	"github.com/compozy/liquid/filter"
	"github.com/compozy/liquid/parser"
	"github.com/compozy/liquid/render"
	"github.com/compozy/liquid/tags"
)

// Language holds the three registries spec 4.H requires and
// implements parser.Registry so it can be handed straight to
// parser.Parse.
type Language struct {
	tagParsers   map[string]parser.TagParser
	blockParsers map[string]parser.BlockParser
	filters      map[string]filter.FilterParser
}

// New returns an empty Language with no tags, blocks, or filters
// registered.
func New() *Language {
	return &Language{
		tagParsers:   map[string]parser.TagParser{},
		blockParsers: map[string]parser.BlockParser{},
		filters:      map[string]filter.FilterParser{},
	}
}

// Default returns a Language with the built-in control-flow blocks of
// spec 4.F registered: if/unless/elsif/else, case/when/else, for (with
// break/continue), and assign.
func Default() *Language {
	l := New()
	l.RegisterBlock("if", tags.IfBlock{})
	l.RegisterBlock("unless", tags.IfBlock{Negate: true})
	l.RegisterBlock("case", tags.CaseBlock{})
	l.RegisterBlock("for", tags.ForBlock{})
	l.RegisterTag("assign", tags.AssignTag{})
	l.RegisterTag("break", tags.BreakTag{})
	l.RegisterTag("continue", tags.ContinueTag{})
	return l
}

// RegisterTag adds a self-contained tag (spec 6 `register_tag`).
func (l *Language) RegisterTag(name string, p parser.TagParser) { l.tagParsers[name] = p }

// RegisterBlock adds a block tag that owns a nested body (spec 6
// `register_block`).
func (l *Language) RegisterBlock(name string, p parser.BlockParser) { l.blockParsers[name] = p }

// RegisterFilter adds a pre-built FilterParser (spec 6
// `register_filter`).
func (l *Language) RegisterFilter(name string, p filter.FilterParser) { l.filters[name] = p }

// RegisterFilterFunc adapts a plain Go function into a FilterParser
// via reflection (see filter.FromFunc) and registers it.
func (l *Language) RegisterFilterFunc(name string, fn any) {
	l.filters[name] = filter.FromFunc(fn)
}

func (l *Language) LookupTag(name string) (parser.TagParser, bool) {
	p, ok := l.tagParsers[name]
	return p, ok
}

func (l *Language) LookupBlock(name string) (parser.BlockParser, bool) {
	p, ok := l.blockParsers[name]
	return p, ok
}

func (l *Language) LookupFilter(name string) (filter.FilterParser, bool) {
	p, ok := l.filters[name]
	return p, ok
}

// Lookup satisfies filter.Registry, for host code that only needs
// filter resolution (e.g. a custom FilterParser composing others).
func (l *Language) Lookup(name string) (filter.FilterParser, bool) { return l.LookupFilter(name) }

var _ parser.Registry = (*Language)(nil)
var _ filter.Registry = (*Language)(nil)

// Parse compiles src into a renderable Template using l's registries
// (spec 4.D top-level entry point).
func (l *Language) Parse(src string) (*render.Template, error) {
	return parser.Parse(src, l)
}
