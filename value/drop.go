package value

// ValueView is the read-only capability set every value (and every
// host-supplied polymorphic wrapper) must satisfy.
//
// Value itself implements ValueView directly; a host value joins the
// universe by implementing ValueView and being wrapped with NewCustom.
type ValueView interface {
	Render() string
	Source() string
	TypeName() string
	ToKStr() string
	ToValue() Value
	QueryState(State) bool
	AsScalar() (Scalar, bool)
	AsArray() (ArrayView, bool)
	AsObject() (ObjectView, bool)
}

// Drop is the host-supplied polymorphic value referenced in the
// GLOSSARY: an object view with custom rendering/equality behavior.
// It is the single surviving shape of the two conflicting "drop"
// definitions noted as an Open Question in spec.md 4.9 (original
// source kept two; this design keeps one).
type Drop interface {
	ValueView
	// Get returns the value bound to key, or false if absent.
	Get(key string) (Value, bool)
	// Keys returns the drop's exposed key set, in any order; callers
	// that need sorted iteration order go through ObjectView instead.
	Keys() []string
}

// NullDrop is the placeholder Drop used when a host value arrives
// without a registered drop implementation to decode it into. Like
// Nil it renders as "", is not truthy, is blank, and converts to Nil
// via ToValue; unlike Nil its TypeName is "drop", its Source is
// "null", and it reports Empty and DefaultValue as true.
type NullDrop struct{}

func (NullDrop) Render() string                    { return "" }
func (NullDrop) Source() string                    { return "null" }
func (NullDrop) TypeName() string                  { return "drop" }
func (NullDrop) ToKStr() string                     { return "" }
func (NullDrop) ToValue() Value                    { return Nil() }
func (NullDrop) QueryState(s State) bool {
	switch s {
	case Truthy:
		return false
	case DefaultValue, Blank:
		return true
	case Empty:
		return true
	default:
		return false
	}
}
func (NullDrop) AsScalar() (Scalar, bool)   { return Scalar{}, false }
func (NullDrop) AsArray() (ArrayView, bool) { return nil, false }
func (NullDrop) AsObject() (ObjectView, bool) {
	return nil, false
}
func (NullDrop) Get(string) (Value, bool) { return Value{}, false }
func (NullDrop) Keys() []string           { return nil }

// NewCustom wraps a host-supplied Drop as a Value.
func NewCustom(d Drop) Value {
	if d == nil {
		d = NullDrop{}
	}
	return Value{kind: KindCustom, custom: d}
}
