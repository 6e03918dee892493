package localization

import (
	"time"

	"metargb/calendar-format/internal/jalali"
)

// strategy formats one instant for a recognized token. The boolean is false
// when the result is unavailable.
type strategy func(t time.Time) (string, bool)

// persianListSeparator joins list items in Persian.
const persianListSeparator = "، "

// jalaliTokens is the closed set of tokens the Jalali path can render.
// Any other token is unrecognized and goes to the Gregorian formatter.
var jalaliTokens = map[string]strategy{
	"LT":       single(jalali.FormatTime),
	"ll":       single(jalali.FormatDateShort),
	"l":        single(jalali.FormatDateNumeric),
	"L":        single(jalali.FormatDateNumeric),
	"LL":       single(jalali.FormatDate),
	"ddd":      single(weekday(jalali.WidthShort)),
	"dddd":     single(weekday(jalali.WidthLong)),
	"ddd l":    composite(" ", weekday(jalali.WidthShort), jalali.FormatDateNumeric),
	"LL, dddd": composite(persianListSeparator, jalali.FormatDate, weekday(jalali.WidthLong)),
}

func single(format func(time.Time) string) strategy {
	return func(t time.Time) (string, bool) {
		out := format(t)
		return out, out != ""
	}
}

func weekday(width jalali.Width) func(time.Time) string {
	return func(t time.Time) string {
		return jalali.FormatWeekday(t, width)
	}
}

// composite joins two sub-formats; both must produce output.
func composite(sep string, first, second func(time.Time) string) strategy {
	return func(t time.Time) (string, bool) {
		a, b := first(t), second(t)
		if a == "" || b == "" {
			return "", false
		}
		return a + sep + b, true
	}
}
