package gregorian

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"

	"metargb/calendar-format/pkg/helpers"
)

// Formatter renders instants with moment-style format strings ("LT", "ll",
// "MMMM YYYY", "dddd [at] HH:mm") using locale-specific names.
type Formatter struct{}

// NewFormatter returns a Gregorian formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// macros are tried longest first so "LTS" wins over "LT" and "L".
var macros = []string{"LLLL", "llll", "LLL", "lll", "LTS", "LT", "LL", "ll", "L", "l"}

var tokens = []string{
	"YYYY", "YY",
	"MMMM", "MMM", "MM", "M",
	"Do", "DD", "D",
	"dddd", "ddd", "d",
	"HH", "H", "hh", "h",
	"mm", "m", "ss", "s", "SSS",
	"A", "a", "ZZ", "Z",
	"GGGG", "gggg", "WW", "W", "ww", "w",
}

// Format renders t in locale according to the moment-style format string.
// Text inside [brackets] is copied verbatim.
func (f *Formatter) Format(t time.Time, format, locale string) string {
	if t.IsZero() {
		return ""
	}

	spec := lookupLocale(locale)
	out := render(t, expand(format, spec.formats), spec)
	if spec.digits {
		out = helpers.LocalizeDigits(out)
	}
	return out
}

// expand replaces long-date macros outside of brackets with the locale's formats.
func expand(format string, formats longDateFormats) string {
	var b strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i:], ']')
			if end < 0 {
				b.WriteString(format[i:])
				break
			}
			b.WriteString(format[i : i+end+1])
			i += end + 1
			continue
		}

		matched := false
		for _, m := range macros {
			if strings.HasPrefix(format[i:], m) {
				expansion, _ := formats.macro(m)
				b.WriteString(expansion)
				i += len(m)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

func render(t time.Time, format string, spec localeSpec) string {
	var b strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i:], ']')
			if end < 0 {
				b.WriteString(format[i+1:])
				break
			}
			b.WriteString(format[i+1 : i+end])
			i += end + 1
			continue
		}

		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(format[i:], tok) {
				b.WriteString(renderToken(t, tok, spec))
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

func renderToken(t time.Time, tok string, spec localeSpec) string {
	switch tok {
	case "YYYY":
		return strconv.Itoa(t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		if spec.months != nil {
			return spec.months[t.Month()-1]
		}
		return monday.Format(t, "January", spec.monday)
	case "MMM":
		if spec.months != nil {
			return spec.months[t.Month()-1]
		}
		return monday.Format(t, "Jan", spec.monday)
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "Do":
		return ordinal(t.Day(), spec)
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		if spec.weekdays != nil {
			return spec.weekdays[t.Weekday()]
		}
		return monday.Format(t, "Monday", spec.monday)
	case "ddd":
		if spec.weekdays != nil {
			return spec.weekdays[t.Weekday()]
		}
		return monday.Format(t, "Mon", spec.monday)
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12(t))
	case "h":
		return strconv.Itoa(hour12(t))
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "SSS":
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	case "A":
		return meridiem(t, spec, true)
	case "a":
		return meridiem(t, spec, false)
	case "ZZ":
		return t.Format("-0700")
	case "Z":
		return t.Format("-07:00")
	case "GGGG":
		return strconv.Itoa(WeekYear(t))
	case "WW":
		return fmt.Sprintf("%02d", Week(t))
	case "W":
		return strconv.Itoa(Week(t))
	case "gggg":
		year, _ := spec.week.of(t)
		return strconv.Itoa(year)
	case "ww":
		_, week := spec.week.of(t)
		return fmt.Sprintf("%02d", week)
	case "w":
		_, week := spec.week.of(t)
		return strconv.Itoa(week)
	}
	return tok
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func meridiem(t time.Time, spec localeSpec, upper bool) string {
	if spec.am != "" {
		if t.Hour() < 12 {
			return spec.am
		}
		return spec.pm
	}

	m := "AM"
	if t.Hour() >= 12 {
		m = "PM"
	}
	if !upper {
		return strings.ToLower(m)
	}
	return m
}

func ordinal(day int, spec localeSpec) string {
	if spec.digits {
		return strconv.Itoa(day) + "م"
	}
	if spec.monday != monday.LocaleEnUS && spec.monday != monday.LocaleEnGB {
		return strconv.Itoa(day) + "."
	}

	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(day) + suffix
}
