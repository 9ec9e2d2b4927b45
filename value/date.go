package value

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ambiguousNumericDateRe matches a bare numeric date with 1-2 digit
// first and second fields, e.g. "13/25/2020" or "13-25-2020": the
// classic M/D/Y-vs-D/M/Y ambiguous shape. A 4-digit first field (ISO
// Y-M-D) never matches, since years aren't ambiguous with months.
var ambiguousNumericDateRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-]\d{2,4}$`)

// hasAmbiguousMonthField reports whether s is a numeric M/D/Y-shaped
// date whose first field can't be a month (>12). dateparse resolves
// such inputs by silently swapping month and day; spec 4.9 rejects
// them instead, so this check runs against the raw source token
// before any library parsing, not against an already-normalized
// time.Time (whose Month() is always in 1-12 by construction and so
// can never observe the swap).
func hasAmbiguousMonthField(s string) bool {
	m := ambiguousNumericDateRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	month, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	return month > 12
}

// unixRangeMin/Max bound the Unix-seconds recognition window, 2000..2100
// (spec 4.B).
const (
	unixRangeMin int64 = 946702800
	unixRangeMax int64 = 4102462800
)

// ParseDateTime recognizes, in order: "now"/"today", Unix seconds in
// [2000, 2100), and otherwise free-form date-time strings. Parse
// failure returns ok=false. Unlike the original source this never
// swaps month and day when month>12; such inputs are rejected (spec
// 4.9 Open Question, resolved against the bug-compatible behavior).
func ParseDateTime(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	if lower == "now" || lower == "today" {
		return time.Now().UTC(), true
	}
	if secs, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		if secs >= unixRangeMin && secs < unixRangeMax {
			return time.Unix(secs, 0).UTC(), true
		}
	}
	if hasAmbiguousMonthField(trimmed) {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// ParseDateValue parses s and returns the resulting Value (Date if
// the source carried no time-of-day component, DateTime otherwise).
// Detection of a bare date is heuristic: inputs that round-trip
// through the canonical date-only layout are treated as Date.
func ParseDateValue(s string) (Value, bool) {
	t, ok := ParseDateTime(s)
	if !ok {
		return Value{}, false
	}
	trimmed := strings.TrimSpace(s)
	if _, err := time.Parse("2006-01-02", trimmed); err == nil {
		return NewDate(t), true
	}
	return NewDateTime(t), true
}
