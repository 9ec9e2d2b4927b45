// Package lexer tokenizes Liquid template source into a flat stream
// of Text, Output, and Tag elements (spec 4.D), resolving trim-marker
// whitespace elision as it scans.
package lexer

import (
	"fmt"
	"strings"
)

// Kind discriminates the three raw element shapes.
type Kind int

const (
	Text Kind = iota
	Output
	Tag
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Output:
		return "output"
	case Tag:
		return "tag"
	default:
		return "unknown"
	}
}

// Position is a 1-based line/column plus a 0-based byte offset, used
// for parse-error reporting (spec 4.D, 6).
type Position struct {
	Line   int
	Col    int
	Offset int
}

// Element is one token of the flat pre-block-structure stream.
// Content is the literal text for Text elements and the trimmed
// interior (expression+filters, or tag name+args) for Output/Tag.
type Element struct {
	Kind    Kind
	Pos     Position
	Content string
}

// Error is a lexical error carrying source position, per spec 6.
type Error struct {
	Pos     Position
	Message string
	Excerpt string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message)
}

// Lex splits src into a flat element stream and resolves trim-marker
// whitespace elision. Unterminated `{{`/`{%` is the only lexical
// error; everything else is deferred to the block parser.
func Lex(src string) ([]Element, error) {
	l := &lexState{src: src}
	return l.run()
}

type lexState struct {
	src string
	pos int // byte offset
	out []Element
}

func (l *lexState) positionAt(offset int) Position {
	line, col := 1, 1
	for i := 0; i < offset && i < len(l.src); i++ {
		if l.src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Col: col, Offset: offset}
}

func (l *lexState) run() ([]Element, error) {
	pendingTrimLeft := false // next Text element should have leading ws stripped
	for l.pos < len(l.src) {
		rest := l.src[l.pos:]
		oIdx := strings.Index(rest, "{{")
		tIdx := strings.Index(rest, "{%")
		idx, open := pickEarliest(oIdx, tIdx)
		if idx < 0 {
			l.emitText(rest, pendingTrimLeft, false)
			pendingTrimLeft = false
			l.pos = len(l.src)
			break
		}
		if idx > 0 {
			textTrimRight := isTrimOpen(rest[idx:])
			l.emitText(rest[:idx], pendingTrimLeft, textTrimRight)
			pendingTrimLeft = false
		} else if isTrimOpen(rest) && len(l.out) > 0 && l.out[len(l.out)-1].Kind == Text {
			trimTrailing(&l.out[len(l.out)-1])
		}
		l.pos += idx
		closer := "}}"
		kind := Output
		if open == "{%" {
			closer = "%}"
			kind = Tag
		}
		trimLeft := isTrimOpen(l.src[l.pos:])
		bodyStart := l.pos + 2
		if trimLeft {
			bodyStart++
		}
		end, trimRight, err := findClose(l.src, bodyStart, closer)
		if err != nil {
			return nil, &Error{Pos: l.positionAt(l.pos), Message: err.Error(), Excerpt: excerpt(l.src, l.pos)}
		}
		bodyEnd := end
		if trimRight {
			bodyEnd--
		}
		content := strings.TrimSpace(l.src[bodyStart:bodyEnd])
		elPos := l.positionAt(l.pos)
		l.pos = end + len(closer)
		l.out = append(l.out, Element{Kind: kind, Pos: elPos, Content: content})
		pendingTrimLeft = trimRight
	}
	return l.out, nil
}

func pickEarliest(a, b int) (int, string) {
	switch {
	case a < 0 && b < 0:
		return -1, ""
	case a < 0:
		return b, "{%"
	case b < 0:
		return a, "{{"
	case a < b:
		return a, "{{"
	default:
		return b, "{%"
	}
}

func isTrimOpen(s string) bool {
	return len(s) >= 3 && s[2] == '-'
}

// findClose scans from bodyStart for closer, honoring quoted strings
// so a `}}`/`%}` inside a string literal argument isn't mistaken for
// the delimiter. It returns the offset of the closer and whether its
// immediately-preceding byte is the trim dash.
func findClose(src string, bodyStart int, closer string) (int, bool, error) {
	i := bodyStart
	var quote byte
	for i < len(src) {
		c := src[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			i++
			continue
		}
		if c == '\'' || c == '"' {
			quote = c
			i++
			continue
		}
		if c == '-' && i+1+len(closer) <= len(src) && src[i+1:i+1+len(closer)] == closer {
			return i + 1, true, nil
		}
		if i+len(closer) <= len(src) && src[i:i+len(closer)] == closer {
			return i, false, nil
		}
		i++
	}
	return 0, false, fmt.Errorf("unterminated tag, expected %q", closer)
}

func (l *lexState) emitText(s string, trimLeading, trimTrailingWs bool) {
	if trimLeading {
		s = strings.TrimLeft(s, " \t\r\n")
	}
	if trimTrailingWs {
		s = strings.TrimRight(s, " \t\r\n")
	}
	if s == "" && (trimLeading || trimTrailingWs) {
		return
	}
	if s == "" {
		return
	}
	pos := l.positionAt(l.pos)
	l.out = append(l.out, Element{Kind: Text, Pos: pos, Content: s})
}

func trimTrailing(el *Element) {
	el.Content = strings.TrimRight(el.Content, " \t\r\n")
}

func excerpt(src string, offset int) string {
	end := offset + 32
	if end > len(src) {
		end = len(src)
	}
	return src[offset:end]
}
