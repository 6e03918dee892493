package filters

import (
	"time"

	"metargb/calendar-format/internal/jalali"
)

// FormatDate renders t as a date, with the time of day unless isAllDay.
func (f *Formatter) FormatDate(t time.Time, isAllDay bool, locale string) string {
	if jalali.IsPersianLocale(locale) {
		if isAllDay {
			return jalali.FormatDate(t)
		}
		return jalali.FormatDateTime(t)
	}

	if isAllDay {
		return f.gregorian.Format(t, "ll", locale)
	}
	return f.gregorian.Format(t, "lll", locale)
}
