package gregorian

import "time"

// weekRule is a locale's week convention: dow is the first day of the week
// (0 = Sunday) and 7+dow-doy is the January day that always falls in week 1.
type weekRule struct {
	dow int
	doy int
}

var (
	weekSunday  = weekRule{dow: 0, doy: 6}
	weekISO     = weekRule{dow: 1, doy: 4}
	weekPersian = weekRule{dow: 6, doy: 12}
)

// firstWeekOffset is the day of year, minus one, on which week 1 of year
// starts. It is zero or negative when week 1 begins in the previous year.
func (r weekRule) firstWeekOffset(year int) int {
	fwd := 7 + r.dow - r.doy
	fwdlw := (7 + int(time.Date(year, time.January, fwd, 0, 0, 0, 0, time.UTC).Weekday()) - r.dow) % 7
	return fwd - fwdlw - 1
}

func (r weekRule) weeksInYear(year int) int {
	return (daysInYear(year) - r.firstWeekOffset(year) + r.firstWeekOffset(year+1)) / 7
}

// of returns the week-numbering year and week of t.
func (r weekRule) of(t time.Time) (year, week int) {
	year = t.Year()
	week = floorDiv(t.YearDay()-r.firstWeekOffset(year)-1, 7) + 1

	switch {
	case week < 1:
		year--
		week += r.weeksInYear(year)
	case week > r.weeksInYear(year):
		week -= r.weeksInYear(year)
		year++
	}
	return year, week
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// LocaleWeek returns the week-numbering year and week of t under the week
// convention of locale. English weeks start on Sunday and week 1 holds
// January 1st; most European locales follow ISO-8601.
func LocaleWeek(t time.Time, locale string) (year, week int) {
	return lookupLocale(locale).week.of(t)
}

// Week returns the ISO-8601 week number of t.
func Week(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// WeekYear returns the ISO-8601 week-numbering year of t.
func WeekYear(t time.Time) int {
	year, _ := t.ISOWeek()
	return year
}
