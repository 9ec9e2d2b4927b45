package value

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Scalar is the payload of the Scalar variant. Exactly one of the
// fields is meaningful, selected by Kind.
type Scalar struct {
	Kind ScalarKind
	Bool bool
	Int  int64
	Flt  float64
	Str  string
	Time time.Time // UTC; Kind==ScalarDate truncates to midnight
}

func NewBool(b bool) Value {
	return Value{kind: KindScalar, scalar: Scalar{Kind: ScalarBool, Bool: b}}
}

func NewInteger(i int64) Value {
	return Value{kind: KindScalar, scalar: Scalar{Kind: ScalarInteger, Int: i}}
}

func NewFloat(f float64) Value {
	return Value{kind: KindScalar, scalar: Scalar{Kind: ScalarFloat, Flt: f}}
}

func NewString(s string) Value {
	return Value{kind: KindScalar, scalar: Scalar{Kind: ScalarString, Str: s}}
}

func NewDate(t time.Time) Value {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Value{kind: KindScalar, scalar: Scalar{Kind: ScalarDate, Time: t}}
}

func NewDateTime(t time.Time) Value {
	return Value{kind: KindScalar, scalar: Scalar{Kind: ScalarDateTime, Time: t.UTC()}}
}

func Nil() Value { return Value{kind: KindNil} }

// asDateTime normalizes a Date scalar to midnight UTC on that day so
// it compares as a DateTime (spec 4.3 "Date vs DateTime").
func (s Scalar) asDateTime() time.Time {
	if s.Kind == ScalarDate || s.Kind == ScalarDateTime {
		return s.Time
	}
	return time.Time{}
}

// ToKStr renders the scalar's string coercion, identical to Render
// for scalars (spec 4.B).
func (s Scalar) ToKStr() string {
	switch s.Kind {
	case ScalarBool:
		if s.Bool {
			return "true"
		}
		return "false"
	case ScalarInteger:
		return strconv.FormatInt(s.Int, 10)
	case ScalarFloat:
		return formatFloat(s.Flt)
	case ScalarString:
		return s.Str
	case ScalarDate:
		return s.Time.Format("2006-01-02")
	case ScalarDateTime:
		return formatDateTime(s.Time)
	default:
		return ""
	}
}

// formatFloat renders the shortest round-trip decimal, without a
// trailing ".0" when the value is mathematically integral.
func formatFloat(f float64) string {
	d := decimal.NewFromFloat(f)
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatDateTime(t time.Time) string {
	layout := "2006-01-02 15:04:05 -0700"
	if t.Nanosecond() != 0 {
		layout = "2006-01-02 15:04:05.000 -0700"
	}
	return t.Format(layout)
}

// ToNumber coerces the scalar to a decimal for filter arithmetic.
// Non-numeric scalars yield zero — this is the "numeric context"
// coercion of spec 4.B, distinct from comparison coercion.
func (s Scalar) ToNumber() decimal.Decimal {
	switch s.Kind {
	case ScalarInteger:
		return decimal.NewFromInt(s.Int)
	case ScalarFloat:
		return decimal.NewFromFloat(s.Flt)
	case ScalarString:
		trimmed := strings.TrimSpace(s.Str)
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Zero
		}
		return d
	case ScalarBool:
		if s.Bool {
			return decimal.New(1, 0)
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// TryNumber coerces to a decimal for comparison contexts, where a
// non-numeric scalar yields "absent" rather than zero.
func (s Scalar) TryNumber() (decimal.Decimal, bool) {
	switch s.Kind {
	case ScalarInteger:
		return decimal.NewFromInt(s.Int), true
	case ScalarFloat:
		return decimal.NewFromFloat(s.Flt), true
	case ScalarString:
		d, err := decimal.NewFromString(strings.TrimSpace(s.Str))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
