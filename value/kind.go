// Package value implements the polymorphic value model shared by the
// parser and the runtime: a small tagged union (nil, scalar, array,
// object, and host-supplied custom values) with a uniform read-only
// view over every variant.
package value

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNil Kind = iota
	KindScalar
	KindArray
	KindObject
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ScalarKind discriminates the Scalar variant's payload type.
type ScalarKind int

const (
	ScalarBool ScalarKind = iota
	ScalarInteger
	ScalarFloat
	ScalarString
	ScalarDate
	ScalarDateTime
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarBool:
		return "bool"
	case ScalarInteger:
		return "integer"
	case ScalarFloat:
		return "float"
	case ScalarString:
		return "string"
	case ScalarDate:
		return "date"
	case ScalarDateTime:
		return "date_time"
	default:
		return "unknown"
	}
}

// State is the set of boolean queries ValueView answers via QueryState.
type State int

const (
	// Truthy is false only for Nil and Bool(false).
	Truthy State = iota
	// DefaultValue is true additionally for empty strings/arrays/objects
	// and Bool(false); it governs the `default` filter.
	DefaultValue
	// Empty is true for zero-length strings/arrays/objects (not Nil).
	Empty
	// Blank is true for Nil, Bool(false), and whitespace-only or empty
	// strings; used by whitespace-elision (spec 4.F.3).
	Blank
)
