// Package parser implements the block-tree builder (spec 4.D): it
// consumes the lexer's flat element stream and produces a tree of
// render.Renderable nodes, resolving every filter name and tag/block
// name against a host-supplied Registry at parse time (spec 4.D.2,
// 4.E — unknown filter or tag is a parse error, never deferred to
// render).
package parser

import (
	"strings"

	"github.com/compozy/liquid/engine/core"
	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/filter"
	"github.com/compozy/liquid/lexer"
	"github.com/compozy/liquid/render"
)

// Registry resolves tag, block, and filter names. language.Language
// implements it; parser never imports language (see the language
// package doc).
type Registry interface {
	LookupTag(name string) (TagParser, bool)
	LookupBlock(name string) (BlockParser, bool)
	LookupFilter(name string) (filter.FilterParser, bool)
}

// TagParser builds a node for a self-contained tag (`{% assign x = 1 %}`,
// `{% break %}`) that never owns a nested body.
type TagParser interface {
	Parse(p *Parser, args string, pos lexer.Position) (render.Renderable, error)
}

// BlockParser builds a node for a tag that owns a nested body up to a
// matching `end<name>` (`if`, `for`, `case`). It drives the nested
// parse itself via Parser.ParseUntil, so it controls exactly which
// tag names terminate or separate its branches (`elsif`, `else`, …).
type BlockParser interface {
	Parse(p *Parser, args string, pos lexer.Position) (render.Renderable, error)
}

// Parser walks a lexer.Element stream and builds the render tree.
type Parser struct {
	elements []lexer.Element
	pos      int
	reg      Registry
}

// New constructs a Parser over an already-lexed element stream.
func New(elements []lexer.Element, reg Registry) *Parser {
	return &Parser{elements: elements, reg: reg}
}

// Parse lexes and parses src in one step (spec 4.D top-level entry).
// Any failure is returned as an *engine/core.ParseError carrying the
// source position and excerpt spec §6 requires, regardless of
// whether it originated in the lexer or the block parser.
func Parse(src string, reg Registry) (*render.Template, error) {
	elements, err := lexer.Lex(src)
	if err != nil {
		return nil, toParseError(src, err)
	}
	p := New(elements, reg)
	root, stopName, _, pos, err := p.ParseUntil()
	if err != nil {
		return nil, toParseError(src, err)
	}
	if stopName != "" {
		return nil, toParseError(src, errf(pos, "unexpected tag %q with no matching opening block", stopName))
	}
	return &render.Template{Root: root, Source: src}, nil
}

// toParseError normalizes a lexer.Error or parser.Error into the
// spec §7 taxonomy type, filling in a source excerpt when the
// original error didn't already carry one.
func toParseError(src string, err error) error {
	switch e := err.(type) {
	case *lexer.Error:
		excerpt := e.Excerpt
		if excerpt == "" {
			excerpt = sourceLine(src, e.Pos.Line)
		}
		return core.NewParseError(e, "", e.Pos.Line, e.Pos.Col, excerpt, nil)
	case *Error:
		return core.NewParseError(e, "", e.Pos.Line, e.Pos.Col, sourceLine(src, e.Pos.Line), nil)
	default:
		return err
	}
}

// sourceLine returns the 1-based line of src, or "" if out of range.
func sourceLine(src string, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func (p *Parser) peek() (lexer.Element, bool) {
	if p.pos >= len(p.elements) {
		return lexer.Element{}, false
	}
	return p.elements[p.pos], true
}

// ParseUntil parses a run of nodes and stops at the first Tag element
// whose name appears in stopNames (consuming that tag), or at EOF if
// stopNames is empty. It returns the accumulated body, the stop tag's
// name ("" at EOF), its raw argument string, and its position.
func (p *Parser) ParseUntil(stopNames ...string) (render.Renderable, string, string, lexer.Position, error) {
	var children []render.Renderable
	for {
		el, ok := p.peek()
		if !ok {
			if len(stopNames) > 0 {
				return nil, "", "", lexer.Position{}, errf(lastPos(p.elements), "unexpected end of template: expected %s", strings.Join(stopNames, " or "))
			}
			return render.SequenceNode{Children: children}, "", "", lexer.Position{}, nil
		}
		switch el.Kind {
		case lexer.Text:
			children = append(children, render.TextNode{Text: el.Content})
			p.pos++
		case lexer.Output:
			node, err := p.parseOutput(el)
			if err != nil {
				return nil, "", "", lexer.Position{}, err
			}
			children = append(children, node)
			p.pos++
		case lexer.Tag:
			name, args := splitTagHeader(el.Content)
			if contains(stopNames, name) {
				p.pos++
				return render.SequenceNode{Children: children}, name, args, el.Pos, nil
			}
			node, err := p.parseTag(name, args, el.Pos)
			if err != nil {
				return nil, "", "", lexer.Position{}, err
			}
			children = append(children, node)
		}
	}
}

func (p *Parser) parseOutput(el lexer.Element) (render.Renderable, error) {
	e, chain, err := p.ParseOutputExpr(el.Content, el.Pos)
	if err != nil {
		return nil, err
	}
	return render.OutputNode{Expr: e, Filters: chain}, nil
}

func (p *Parser) parseTag(name, args string, pos lexer.Position) (render.Renderable, error) {
	if bp, ok := p.reg.LookupBlock(name); ok {
		p.pos++ // consume the opening tag header; the block parser owns the rest
		return bp.Parse(p, args, pos)
	}
	if tp, ok := p.reg.LookupTag(name); ok {
		p.pos++
		return tp.Parse(p, args, pos)
	}
	return nil, errf(pos, "unknown tag %q", name)
}

// splitTagHeader separates a tag's name from its raw argument string.
func splitTagHeader(content string) (string, string) {
	content = strings.TrimSpace(content)
	i := strings.IndexFunc(content, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' })
	if i < 0 {
		return content, ""
	}
	return content[:i], strings.TrimSpace(content[i+1:])
}

func contains(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}

func lastPos(elements []lexer.Element) lexer.Position {
	if len(elements) == 0 {
		return lexer.Position{Line: 1, Col: 1}
	}
	return elements[len(elements)-1].Pos
}

// ParseOutputExpr parses a `{{ ... }}` interior: an expression
// followed by zero or more `| filter: args` stages (spec 4.D/4.E).
func (p *Parser) ParseOutputExpr(src string, pos lexer.Position) (expr.Expression, *filter.Chain, error) {
	toks, err := tokenize(src, pos)
	if err != nil {
		return nil, nil, err
	}
	ep := &exprParser{toks: toks, pos: pos, reg: p.reg}
	e, err := ep.parseOperand()
	if err != nil {
		return nil, nil, err
	}
	chain, err := ep.parseFilterChain()
	if err != nil {
		return nil, nil, err
	}
	if ep.cur().Kind != tokEOF {
		return nil, nil, errf(pos, "unexpected trailing token %q", ep.cur().Text)
	}
	return e, chain, nil
}

// ParseCondition parses a boolean expression for if/unless/elsif/case
// conditions: `and` binds tighter than `or` (spec 4.F.1), i.e.
// Disjunction := Conjunction ("or" Conjunction)*, Conjunction :=
// CondTerm ("and" CondTerm)*. `A or B and C` parses as `A or (B and C)`.
func (p *Parser) ParseCondition(src string, pos lexer.Position) (expr.Expression, error) {
	toks, err := tokenize(src, pos)
	if err != nil {
		return nil, err
	}
	ep := &exprParser{toks: toks, pos: pos, reg: p.reg}
	e, err := ep.parseLogical()
	if err != nil {
		return nil, err
	}
	if ep.cur().Kind != tokEOF {
		return nil, errf(pos, "unexpected trailing token %q", ep.cur().Text)
	}
	return e, nil
}

// ParseValueList parses a comma-separated list of operands (spec
// 4.F.2 `when a, b, c`).
func (p *Parser) ParseValueList(src string, pos lexer.Position) ([]expr.Expression, error) {
	toks, err := tokenize(src, pos)
	if err != nil {
		return nil, err
	}
	ep := &exprParser{toks: toks, pos: pos, reg: p.reg}
	var out []expr.Expression
	for {
		e, err := ep.parseOperand()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
		if ep.cur().Kind == tokOp && ep.cur().Text == "," {
			ep.advance()
			continue
		}
		if ep.cur().Kind == tokIdent && ep.cur().Text == "or" {
			ep.advance()
			continue
		}
		break
	}
	if ep.cur().Kind != tokEOF {
		return nil, errf(pos, "unexpected trailing token %q", ep.cur().Text)
	}
	return out, nil
}

// ForHeader is the parsed form of a `for` tag's argument string:
// `item in collection [reversed] [limit: expr] [offset: expr]`.
type ForHeader struct {
	VarName    string
	Collection expr.Expression
	Reversed   bool
	Limit      expr.Expression
	Offset     expr.Expression
}

// ParseForHeader parses the `for` tag's header (spec 4.F.4).
func (p *Parser) ParseForHeader(src string, pos lexer.Position) (ForHeader, error) {
	toks, err := tokenize(src, pos)
	if err != nil {
		return ForHeader{}, err
	}
	ep := &exprParser{toks: toks, pos: pos, reg: p.reg}
	var h ForHeader
	if ep.cur().Kind != tokIdent {
		return h, errf(pos, "expected loop variable name")
	}
	h.VarName = ep.advance().Text
	if !(ep.cur().Kind == tokIdent && ep.cur().Text == "in") {
		return h, errf(pos, "expected 'in' after loop variable")
	}
	ep.advance()
	coll, err := ep.parseOperand()
	if err != nil {
		return h, err
	}
	h.Collection = coll
	for ep.cur().Kind == tokIdent {
		switch ep.cur().Text {
		case "reversed":
			ep.advance()
			h.Reversed = true
		case "limit":
			ep.advance()
			if !(ep.cur().Kind == tokOp && ep.cur().Text == ":") {
				return h, errf(pos, "expected ':' after 'limit'")
			}
			ep.advance()
			h.Limit, err = ep.parseOperand()
			if err != nil {
				return h, err
			}
		case "offset":
			ep.advance()
			if !(ep.cur().Kind == tokOp && ep.cur().Text == ":") {
				return h, errf(pos, "expected ':' after 'offset'")
			}
			ep.advance()
			h.Offset, err = ep.parseOperand()
			if err != nil {
				return h, err
			}
		default:
			return h, errf(pos, "unexpected token %q in for header", ep.cur().Text)
		}
	}
	if ep.cur().Kind != tokEOF {
		return h, errf(pos, "unexpected trailing token %q", ep.cur().Text)
	}
	return h, nil
}

// ParseAssignment parses `name = expr [| filters]` (the `assign` tag).
func (p *Parser) ParseAssignment(src string, pos lexer.Position) (string, expr.Expression, *filter.Chain, error) {
	toks, err := tokenize(src, pos)
	if err != nil {
		return "", nil, nil, err
	}
	ep := &exprParser{toks: toks, pos: pos, reg: p.reg}
	if ep.cur().Kind != tokIdent {
		return "", nil, nil, errf(pos, "expected variable name")
	}
	name := ep.cur().Text
	ep.advance()
	if !(ep.cur().Kind == tokOp && ep.cur().Text == "=") {
		return "", nil, nil, errf(pos, "expected '=' in assignment")
	}
	ep.advance()
	e, err := ep.parseOperand()
	if err != nil {
		return "", nil, nil, err
	}
	chain, err := ep.parseFilterChain()
	if err != nil {
		return "", nil, nil, err
	}
	if ep.cur().Kind != tokEOF {
		return "", nil, nil, errf(pos, "unexpected trailing token %q", ep.cur().Text)
	}
	return name, e, chain, nil
}
