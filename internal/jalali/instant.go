package jalali

import (
	"math"
	"strings"
	"time"
)

// maxUnixMilli bounds representable instants the same way ECMAScript dates are bounded.
const maxUnixMilli = 8.64e15

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Instant coerces v into a time.Time. It accepts time.Time, *time.Time,
// date strings (RFC 3339 or ISO date/date-time in the local zone) and Unix
// milliseconds as int, int64 or float64.
func Instant(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, !x.IsZero()
	case string:
		return parseInstant(x)
	case int:
		return fromUnixMilli(float64(x))
	case int64:
		return fromUnixMilli(float64(x))
	case float64:
		return fromUnixMilli(x)
	default:
		return time.Time{}, false
	}
}

func parseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fromUnixMilli(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxUnixMilli {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}
