package filters

import (
	"math"
	"time"
)

// Humanize describes the magnitude of d in words ("15 minutes", "a day").
// Boundaries follow the usual relative-time thresholds: 45 seconds, 45
// minutes, 22 hours, 26 days and 11 months.
func (f *Formatter) Humanize(d time.Duration, locale string) string {
	if d < 0 {
		d = -d
	}

	seconds := math.Round(d.Seconds())
	minutes := math.Round(d.Minutes())
	hours := math.Round(d.Hours())
	days := math.Round(d.Hours() / 24)
	months := math.Round(d.Hours() / 24 * 4800 / 146097)
	years := math.Round(d.Hours() / 24 * 400 / 146097)

	switch {
	case seconds < 45:
		return f.translator.Translate(locale, "a few seconds", nil)
	case minutes <= 1:
		return f.translator.Translate(locale, "a minute", nil)
	case minutes < 45:
		return f.translator.TranslatePlural(locale, "%n minute", "%n minutes", int(minutes), nil)
	case hours <= 1:
		return f.translator.Translate(locale, "an hour", nil)
	case hours < 22:
		return f.translator.TranslatePlural(locale, "%n hour", "%n hours", int(hours), nil)
	case days <= 1:
		return f.translator.Translate(locale, "a day", nil)
	case days < 26:
		return f.translator.TranslatePlural(locale, "%n day", "%n days", int(days), nil)
	case months <= 1:
		return f.translator.Translate(locale, "a month", nil)
	case months < 11:
		return f.translator.TranslatePlural(locale, "%n month", "%n months", int(months), nil)
	case years <= 1:
		return f.translator.Translate(locale, "a year", nil)
	default:
		return f.translator.TranslatePlural(locale, "%n year", "%n years", int(years), nil)
	}
}
