package jalali

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"metargb/calendar-format/internal/gregorian"
	"metargb/calendar-format/pkg/helpers"
)

// newProvider builds the provider used by the formatters. Tests replace it.
var newProvider ProviderFactory = NewProvider

// style pairs a ptime layout with the moment-style Gregorian format used when
// the Jalali provider cannot be built or fails.
type style struct {
	layout   string
	fallback string
}

var (
	styleDate          = style{layout: "d MMM yyyy", fallback: "D MMMM YYYY"}
	styleDateTime      = style{layout: "d MMM yyyy، ساعت HH:mm", fallback: "D MMMM YYYY[، ساعت] HH:mm"}
	styleMonthYear     = style{layout: "MMM yyyy", fallback: "MMMM YYYY"}
	styleYear          = style{layout: "yyyy", fallback: "YYYY"}
	styleDateNumeric   = style{layout: "yyyy/M/d", fallback: "YYYY/M/D"}
	styleDateShort     = style{layout: "d MMM yyyy", fallback: "D MMM YYYY"}
	styleTime          = style{layout: "HH:mm", fallback: "HH:mm"}
	styleWeekdayLong   = style{layout: "E", fallback: "dddd"}
	styleWeekdayNarrow = style{layout: "e", fallback: "ddd"}
)

// fallbackLocale renders Gregorian fallbacks with Persian names and digits.
const fallbackLocale = "fa"

var fallbackFormatter = gregorian.NewFormatter()

func render(t time.Time, s style) string {
	if t.IsZero() {
		return ""
	}

	if provider, err := newProvider(PersianDigits); err == nil {
		if out, err := provider.Format(t, s.layout); err == nil {
			return out
		}
	}

	return fallbackFormatter.Format(t, s.fallback, fallbackLocale)
}

// FormatDate renders t as a long Jalali date, e.g. "۲۵ دی ۱۴۰۲".
func FormatDate(t time.Time) string {
	return render(t, styleDate)
}

// FormatDateTime renders t as a long Jalali date followed by a 24-hour clock time.
func FormatDateTime(t time.Time) string {
	return render(t, styleDateTime)
}

// FormatMonthYear renders the Jalali month name and year.
func FormatMonthYear(t time.Time) string {
	return render(t, styleMonthYear)
}

// FormatYear renders the Jalali year.
func FormatYear(t time.Time) string {
	return render(t, styleYear)
}

// FormatDateNumeric renders year/month/day, e.g. "۱۴۰۲/۱۰/۲۵".
func FormatDateNumeric(t time.Time) string {
	return render(t, styleDateNumeric)
}

// FormatDateShort renders the abbreviated-month date. Persian has no shorter
// month names, so it matches FormatDate.
func FormatDateShort(t time.Time) string {
	return render(t, styleDateShort)
}

// FormatTime renders the 24-hour clock time, e.g. "۱۰:۳۰".
func FormatTime(t time.Time) string {
	return render(t, styleTime)
}

// Width is the rendering width of a weekday name.
type Width string

const (
	WidthLong   Width = "long"
	WidthShort  Width = "short"
	WidthNarrow Width = "narrow"
)

// FormatWeekday renders the weekday of t. Unknown widths are treated as long.
// Persian abbreviates weekdays to their full name, so short equals long.
func FormatWeekday(t time.Time, width Width) string {
	switch width {
	case WidthNarrow:
		return render(t, styleWeekdayNarrow)
	default:
		return render(t, styleWeekdayLong)
	}
}

// FormatNumber renders n with Persian digits and no grouping.
func FormatNumber(n int) (out string) {
	defer func() {
		if recover() != nil {
			out = strconv.Itoa(n)
		}
	}()

	p := message.NewPrinter(language.Persian)
	out = p.Sprint(number.Decimal(n, number.NoSeparator()))
	if out == "" {
		return strconv.Itoa(n)
	}
	return helpers.LocalizeDigits(out)
}
