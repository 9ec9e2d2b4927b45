package parser

import (
	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/filter"
	"github.com/compozy/liquid/lexer"
	"github.com/compozy/liquid/value"
)

// exprParser is a small recursive-descent parser over an already
// tokenized argument string, shared by output/condition/assignment
// parsing. It resolves filter names against reg immediately, so an
// unknown filter fails at parse time (spec 4.E).
type exprParser struct {
	toks []exprToken
	pos  lexer.Position
	reg  Registry
	i    int
}

func (p *exprParser) cur() exprToken {
	if p.i >= len(p.toks) {
		return exprToken{Kind: tokEOF}
	}
	return p.toks[p.i]
}

func (p *exprParser) advance() exprToken {
	t := p.cur()
	if p.i < len(p.toks) {
		p.i++
	}
	return t
}

var comparisonOps = map[string]bool{"==": true, "!=": true, "<>": true, "<": true, ">": true, "<=": true, ">=": true}

// parseLogical implements `Disjunction := Conjunction ("or" Conjunction)*`,
// `Conjunction := CondTerm ("and" CondTerm)*`: `and` binds tighter than
// `or`, so `A or B and C` parses as `A or (B and C)` (spec 4.F.1).
func (p *exprParser) parseLogical() (expr.Expression, error) {
	return p.parseDisjunction()
}

func (p *exprParser) parseDisjunction() (expr.Expression, error) {
	left, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == tokIdent && p.cur().Text == "or" {
		p.advance()
		right, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		left = logicalExpr{Op: "or", L: left, R: right}
	}
	return left, nil
}

func (p *exprParser) parseConjunction() (expr.Expression, error) {
	left, err := p.parseCondTerm()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == tokIdent && p.cur().Text == "and" {
		p.advance()
		right, err := p.parseCondTerm()
		if err != nil {
			return nil, err
		}
		left = logicalExpr{Op: "and", L: left, R: right}
	}
	return left, nil
}

// parseCondTerm implements `["not"] Operand [CompOp Operand]`.
func (p *exprParser) parseCondTerm() (expr.Expression, error) {
	negate := false
	if p.cur().Kind == tokIdent && p.cur().Text == "not" {
		p.advance()
		negate = true
	}
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	var result expr.Expression = left
	if p.cur().Kind == tokIdent && p.cur().Text == "contains" {
		p.advance()
		right, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		result = comparisonExpr{Op: "contains", L: left, R: right}
	} else if (p.cur().Kind == tokOp && (p.cur().Text == "==" || p.cur().Text == "!=" || p.cur().Text == "<>")) && p.isStateKeywordNext() {
		op := p.advance().Text
		kw := p.advance().Text // "empty" | "blank"
		st := value.Empty
		if kw == "blank" {
			st = value.Blank
		}
		result = stateComparisonExpr{Left: left, State: st, Negate: op != "=="}
	} else if p.cur().Kind == tokOp && comparisonOps[p.cur().Text] {
		op := p.advance().Text
		right, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		result = comparisonExpr{Op: op, L: left, R: right}
	}
	if negate {
		result = notExpr{Inner: result}
	}
	return result, nil
}

// parseOperand parses a literal or a dotted/bracketed variable path.
func (p *exprParser) parseOperand() (expr.Expression, error) {
	tok := p.cur()
	switch tok.Kind {
	case tokString:
		p.advance()
		return expr.Literal{V: value.NewString(tok.Text)}, nil
	case tokInt:
		p.advance()
		return expr.Literal{V: value.NewInteger(tok.Num)}, nil
	case tokFloat:
		p.advance()
		return expr.Literal{V: value.NewFloat(tok.Flt)}, nil
	case tokIdent:
		return p.parseIdentOrPath()
	default:
		return nil, errf(p.pos, "expected a value, got %q", tok.Text)
	}
}

func (p *exprParser) parseIdentOrPath() (expr.Expression, error) {
	name := p.advance().Text
	switch name {
	case "true":
		return expr.Literal{V: value.NewBool(true)}, nil
	case "false":
		return expr.Literal{V: value.NewBool(false)}, nil
	case "nil", "null":
		return expr.Literal{V: value.Nil()}, nil
	}
	v := expr.Variable{Root: name}
	for {
		if p.cur().Kind == tokOp && p.cur().Text == "." {
			p.advance()
			if p.cur().Kind != tokIdent {
				return nil, errf(p.pos, "expected identifier after '.'")
			}
			key := p.advance().Text
			v.Accessors = append(v.Accessors, expr.NewKeyAccessor(key))
			continue
		}
		if p.cur().Kind == tokOp && p.cur().Text == "[" {
			p.advance()
			inner, err := p.parseOperand()
			if err != nil {
				return nil, err
			}
			if !(p.cur().Kind == tokOp && p.cur().Text == "]") {
				return nil, errf(p.pos, "expected ']'")
			}
			p.advance()
			v.Accessors = append(v.Accessors, expr.NewExprAccessor(inner))
			continue
		}
		break
	}
	return v, nil
}

// parseFilterChain parses zero or more `| name[: arg, kw: arg]` stages,
// resolving and binding each filter against p.reg immediately.
func (p *exprParser) parseFilterChain() (*filter.Chain, error) {
	chain := filter.NewChain()
	for p.cur().Kind == tokOp && p.cur().Text == "|" {
		p.advance()
		if p.cur().Kind != tokIdent {
			return nil, errf(p.pos, "expected filter name after '|'")
		}
		name := p.advance().Text
		parser, ok := p.reg.LookupFilter(name)
		if !ok {
			return nil, errf(p.pos, "unknown filter %q", name)
		}
		args, err := p.parseFilterArgs()
		if err != nil {
			return nil, err
		}
		f, err := parser.Parse(args)
		if err != nil {
			return nil, errf(p.pos, "filter %q: %v", name, err)
		}
		chain.Add(name, f)
	}
	return chain, nil
}

func (p *exprParser) parseFilterArgs() (filter.Args, error) {
	var args filter.Args
	if !(p.cur().Kind == tokOp && p.cur().Text == ":") {
		return args, nil
	}
	p.advance()
	for {
		if p.cur().Kind == tokIdent && p.peekIsColon() {
			name := p.advance().Text
			p.advance() // ':'
			val, err := p.parseOperand()
			if err != nil {
				return args, err
			}
			if args.Keyword == nil {
				args.Keyword = map[string]expr.Expression{}
			}
			args.Keyword[name] = val
		} else {
			val, err := p.parseOperand()
			if err != nil {
				return args, err
			}
			args.Positional = append(args.Positional, val)
		}
		if p.cur().Kind == tokOp && p.cur().Text == "," {
			p.advance()
			continue
		}
		break
	}
	return args, nil
}

func (p *exprParser) peekIsColon() bool {
	return p.i+1 < len(p.toks) && p.toks[p.i+1].Kind == tokOp && p.toks[p.i+1].Text == ":"
}

// isStateKeywordNext reports whether the token after the current
// comparison operator is the `empty`/`blank` keyword (spec 4.F.1),
// which compares by QueryState predicate rather than by value.Equal.
func (p *exprParser) isStateKeywordNext() bool {
	if p.i+1 >= len(p.toks) {
		return false
	}
	t := p.toks[p.i+1]
	return t.Kind == tokIdent && (t.Text == "empty" || t.Text == "blank")
}
