package parser

import (
	"strconv"
	"strings"

	"github.com/compozy/liquid/lexer"
)

// exprTokenKind discriminates the small token set needed inside a tag's
// or output's argument string (spec 4.C/4.E): this is a separate,
// finer-grained tokenizer from lexer.Lex, which only splits template
// source into text/output/tag spans.
type exprTokenKind int

const (
	tokIdent exprTokenKind = iota
	tokInt
	tokFloat
	tokString
	tokOp // == != <= >= < > . [ ] , : | =
	tokEOF
)

type exprToken struct {
	Kind exprTokenKind
	Text string
	Num  int64
	Flt  float64
}

type exprScanner struct {
	src  string
	pos  int
	base lexer.Position // position of src[0] in the original template, for error reporting
}

func newExprScanner(src string, base lexer.Position) *exprScanner {
	return &exprScanner{src: src, base: base}
}

func (s *exprScanner) posAt(offset int) lexer.Position {
	return lexer.Position{Line: s.base.Line, Col: s.base.Col + offset, Offset: s.base.Offset + offset}
}

func (s *exprScanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '?' || c == '!'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// multiCharOps must be checked longest-first so `==` isn't split into
// two `=` tokens.
var multiCharOps = []string{"==", "!=", "<>", "<=", ">="}

func (s *exprScanner) next() (exprToken, error) {
	s.skipSpace()
	if s.pos >= len(s.src) {
		return exprToken{Kind: tokEOF}, nil
	}
	start := s.pos
	c := s.src[s.pos]

	for _, op := range multiCharOps {
		if strings.HasPrefix(s.src[s.pos:], op) {
			s.pos += len(op)
			return exprToken{Kind: tokOp, Text: op}, nil
		}
	}
	switch c {
	case '.', '[', ']', ',', ':', '|', '=', '<', '>', '(', ')':
		s.pos++
		return exprToken{Kind: tokOp, Text: string(c)}, nil
	case '\'', '"':
		return s.scanString(c)
	}
	if isDigit(c) || (c == '-' && s.pos+1 < len(s.src) && isDigit(s.src[s.pos+1])) {
		return s.scanNumber()
	}
	if isIdentStart(c) {
		for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
			s.pos++
		}
		return exprToken{Kind: tokIdent, Text: s.src[start:s.pos]}, nil
	}
	return exprToken{}, errf(s.posAt(start), "unexpected character %q", string(c))
}

func (s *exprScanner) scanString(quote byte) (exprToken, error) {
	start := s.pos
	s.pos++ // opening quote
	var b strings.Builder
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == quote {
			s.pos++
			return exprToken{Kind: tokString, Text: b.String()}, nil
		}
		b.WriteByte(c)
		s.pos++
	}
	return exprToken{}, errf(s.posAt(start), "unterminated string literal")
}

func (s *exprScanner) scanNumber() (exprToken, error) {
	start := s.pos
	if s.src[s.pos] == '-' {
		s.pos++
	}
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	isFloat := false
	if s.pos < len(s.src) && s.src[s.pos] == '.' && s.pos+1 < len(s.src) && isDigit(s.src[s.pos+1]) {
		isFloat = true
		s.pos++
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
	}
	text := s.src[start:s.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return exprToken{}, errf(s.posAt(start), "invalid float literal %q", text)
		}
		return exprToken{Kind: tokFloat, Text: text, Flt: f}, nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return exprToken{}, errf(s.posAt(start), "invalid integer literal %q", text)
	}
	return exprToken{Kind: tokInt, Text: text, Num: i}, nil
}

// tokenize drains the scanner into a slice, ending with one tokEOF.
func tokenize(src string, base lexer.Position) ([]exprToken, error) {
	s := newExprScanner(src, base)
	var out []exprToken
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == tokEOF {
			return out, nil
		}
	}
}
