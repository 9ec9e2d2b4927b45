package render

import "github.com/compozy/liquid/value"

// Stack is the variable-binding stack of spec 4.G: an ordered list of
// lexical frames (innermost last) plus a global frame at index 0.
// Frames are owned by whoever pushed them; popping drops all bindings
// set in that frame.
type Stack struct {
	frames []map[string]value.Value
}

// NewStack returns a Stack with just the global frame.
func NewStack() *Stack {
	return &Stack{frames: []map[string]value.Value{{}}}
}

// Push opens a new lexical frame.
func (s *Stack) Push() {
	s.frames = append(s.frames, map[string]value.Value{})
}

// Pop closes the innermost lexical frame. The global frame is never
// popped.
func (s *Stack) Pop() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Set binds name in the current innermost frame.
func (s *Stack) Set(name string, v value.Value) {
	s.frames[len(s.frames)-1][name] = v
}

// SetGlobal binds name in the outermost (global) frame.
func (s *Stack) SetGlobal(name string, v value.Value) {
	s.frames[0][name] = v
}

// Resolve implements expr.Stack: innermost lexical frame first, then
// outward to globals.
func (s *Stack) Resolve(name string) (value.Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i][name]; ok {
			return v, true
		}
	}
	return value.Value{}, false
}

// Get is the host-facing convenience accessor of spec 4.G
// (`stack().get(path)`) for a bare root name.
func (s *Stack) Get(name string) (value.Value, bool) { return s.Resolve(name) }
