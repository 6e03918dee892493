package filters

import (
	"strconv"
	"time"

	"metargb/calendar-format/internal/gregorian"
	"metargb/calendar-format/internal/jalali"
)

// View identifies a calendar view.
type View string

const (
	ViewDay       View = "timeGridDay"
	ViewWeek      View = "timeGridWeek"
	ViewYear      View = "multiMonthYear"
	ViewMonth     View = "dayGridMonth"
	ViewListMonth View = "listMonth"
)

const weekTitle = "Week {number} of {year}"

// FormatView renders the title of view for the date t. Day views show the
// long date, week views "Week n of y", year views the year, and month or
// unknown views the month and year.
func (f *Formatter) FormatView(t time.Time, view View, locale string) string {
	if jalali.IsPersianLocale(locale) {
		if out, ok := f.formatJalaliView(t, view, locale); ok {
			return out
		}
	}

	switch view {
	case ViewDay:
		return f.gregorian.Format(t, "ll", locale)
	case ViewWeek:
		year, week := gregorian.LocaleWeek(t, locale)
		return f.translator.Translate(locale, weekTitle, map[string]string{
			"number": strconv.Itoa(week),
			"year":   strconv.Itoa(year),
		})
	case ViewYear:
		return f.gregorian.Format(t, "YYYY", locale)
	default:
		return f.gregorian.Format(t, "MMMM YYYY", locale)
	}
}

func (f *Formatter) formatJalaliView(t time.Time, view View, locale string) (string, bool) {
	switch view {
	case ViewDay:
		return jalali.FormatDate(t), true
	case ViewWeek:
		info, ok := jalali.WeekOf(t)
		if !ok {
			return "", false
		}
		return f.translator.Translate(locale, weekTitle, map[string]string{
			"number": jalali.FormatNumber(info.Week),
			"year":   jalali.FormatNumber(info.Year),
		}), true
	case ViewYear:
		return jalali.FormatYear(t), true
	default:
		return jalali.FormatMonthYear(t), true
	}
}
