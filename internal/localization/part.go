package localization

import "time"

type partKind int

const (
	partNone partKind = iota
	partMarker
	partDate
	partArray
)

// ECMAScript-compatible bounds on the year of a representable instant.
const (
	minYear = -271820
	maxYear = 275759
)

// PartLike is one endpoint of a range argument: an explicit instant, a boxed
// date, or a field array [year, month(0-based), day, hour, minute, second, millisecond].
type PartLike struct {
	kind    partKind
	instant time.Time
	fields  []int
}

// MarkerPart wraps the calendar's own marker instant.
func MarkerPart(t time.Time) PartLike {
	return PartLike{kind: partMarker, instant: t}
}

// DatePart wraps a plain date value.
func DatePart(t time.Time) PartLike {
	return PartLike{kind: partDate, instant: t}
}

// ArrayPart builds an endpoint from date fields. Missing fields default to
// month 0, day 1 and zero for the rest.
func ArrayPart(fields ...int) PartLike {
	return PartLike{kind: partArray, fields: append([]int(nil), fields...)}
}

func (p PartLike) field(i, def int) int {
	if i < len(p.fields) {
		return p.fields[i]
	}
	return def
}

// Resolve returns the instant the endpoint denotes. Array fields are
// interpreted in loc (time.Local when nil). The boolean is false for an empty
// endpoint, an empty array, or a year outside the representable range.
func (p PartLike) Resolve(loc *time.Location) (time.Time, bool) {
	switch p.kind {
	case partMarker, partDate:
		return p.instant, !p.instant.IsZero()
	case partArray:
		if len(p.fields) == 0 {
			return time.Time{}, false
		}
		if loc == nil {
			loc = time.Local
		}

		t := time.Date(
			p.fields[0],
			time.Month(p.field(1, 0)+1),
			p.field(2, 1),
			p.field(3, 0),
			p.field(4, 0),
			p.field(5, 0),
			p.field(6, 0)*int(time.Millisecond),
			loc,
		)
		if t.Year() < minYear || t.Year() > maxYear {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

// RangeArg is a formatting request for a single date or a start/end pair.
type RangeArg struct {
	Start PartLike
	End   *PartLike
	// DefaultSeparator joins distinct start and end strings. Empty selects
	// DefaultSeparator.
	DefaultSeparator string
}

// DefaultSeparator joins range endpoints when the caller supplies none.
const DefaultSeparator = " – "

func (a RangeArg) separator() string {
	if a.DefaultSeparator == "" {
		return DefaultSeparator
	}
	return a.DefaultSeparator
}
