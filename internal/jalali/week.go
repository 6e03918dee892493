package jalali

import "time"

// monthOffsets holds the days preceding each Jalali month: six 31-day months
// followed by 30-day months. The last month of a leap year is not adjusted.
var monthOffsets = [12]int{0, 31, 62, 93, 124, 155, 186, 216, 246, 276, 306, 336}

// WeekInfo is a Jalali year paired with a 1-based week number.
type WeekInfo struct {
	Year int
	Week int
}

func dayOfYear(month, day int) (int, bool) {
	if month < 1 || month > 12 {
		return 0, false
	}
	return monthOffsets[month-1] + day, true
}

// WeekOf returns the Jalali year and week number of t. Weeks are counted as
// ceil(dayOfYear/7) with no week-start or year-boundary correction.
func WeekOf(t time.Time) (WeekInfo, bool) {
	return weekOf(defaultExtractor, t)
}

func weekOf(e *Extractor, t time.Time) (WeekInfo, bool) {
	parts, ok := e.Parts(t)
	if !ok {
		return WeekInfo{}, false
	}

	doy, ok := dayOfYear(parts.Month, parts.Day)
	if !ok {
		return WeekInfo{}, false
	}

	week := (doy + 6) / 7
	if week < 1 {
		week = 1
	}
	return WeekInfo{Year: parts.Year, Week: week}, true
}
