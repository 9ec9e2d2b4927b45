package parser

import (
	"fmt"

	"github.com/compozy/liquid/lexer"
)

// Error is a parse-time failure carrying source position, per spec 6:
// unknown tag/filter names, malformed expressions, and unbalanced
// blocks are all reported here rather than deferred to render.
type Error struct {
	Pos     lexer.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message)
}

func errf(pos lexer.Position, format string, args ...any) error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
