package filters

import (
	"time"

	"metargb/calendar-format/internal/jalali"
)

// Alarm describes a reminder attached to an event. A nil RelativeTrigger
// selects the absolute variant.
type Alarm struct {
	RelativeTrigger          *int64    `json:"relative_trigger,omitempty"`
	RelativeIsRelatedToStart bool      `json:"relative_is_related_to_start"`
	RelativeAmountAllDay     int       `json:"relative_amount_all_day,omitempty"`
	RelativeUnitAllDay       string    `json:"relative_unit_all_day,omitempty"`
	RelativeHoursAllDay      int       `json:"relative_hours_all_day,omitempty"`
	RelativeMinutesAllDay    int       `json:"relative_minutes_all_day,omitempty"`
	AbsoluteDate             time.Time `json:"absolute_date,omitempty"`
	AbsoluteTimezoneID       string    `json:"absolute_timezone_id,omitempty"`
}

// Relative builds the trigger pointer for a relative alarm.
func Relative(seconds int64) *int64 {
	return &seconds
}

const (
	UnitDays  = "days"
	UnitWeeks = "weeks"
)

const secondsPerDay = 86400

// FormatAlarm describes alarm in words. It never fails: a date that cannot
// be rendered becomes an empty substring of the sentence.
func (f *Formatter) FormatAlarm(alarm Alarm, isAllDay bool, currentUserTimezone, locale string) string {
	if alarm.RelativeTrigger == nil {
		return f.formatAbsoluteAlarm(alarm, currentUserTimezone, locale)
	}

	trigger := *alarm.RelativeTrigger
	if isAllDay && alarm.RelativeIsRelatedToStart && trigger < secondsPerDay {
		return f.formatAllDayAlarm(alarm, trigger, locale)
	}

	if trigger == 0 {
		if alarm.RelativeIsRelatedToStart {
			return f.translator.Translate(locale, "at the event's start", nil)
		}
		return f.translator.Translate(locale, "at the event's end", nil)
	}

	magnitude := trigger
	if magnitude < 0 {
		magnitude = -magnitude
	}
	vars := map[string]string{
		"time": f.Humanize(time.Duration(magnitude)*time.Second, locale),
	}

	switch {
	case trigger < 0 && alarm.RelativeIsRelatedToStart:
		return f.translator.Translate(locale, "{time} before the event starts", vars)
	case trigger < 0:
		return f.translator.Translate(locale, "{time} before the event ends", vars)
	case alarm.RelativeIsRelatedToStart:
		return f.translator.Translate(locale, "{time} after the event starts", vars)
	default:
		return f.translator.Translate(locale, "{time} after the event ends", vars)
	}
}

func (f *Formatter) formatAllDayAlarm(alarm Alarm, trigger int64, locale string) string {
	if trigger == 0 {
		return f.translator.Translate(locale, "Midnight on the day the event starts", nil)
	}

	now := f.now()
	clock := time.Date(now.Year(), now.Month(), now.Day(),
		alarm.RelativeHoursAllDay, alarm.RelativeMinutesAllDay, 0, 0, now.Location())
	vars := map[string]string{
		"formattedHourMinute": f.formatLocalizedTime(clock, locale),
	}

	if trigger > 0 {
		return f.translator.Translate(locale, "on the day of the event at {formattedHourMinute}", vars)
	}

	if alarm.RelativeUnitAllDay == UnitDays {
		return f.translator.TranslatePlural(locale,
			"%n day before the event at {formattedHourMinute}",
			"%n days before the event at {formattedHourMinute}",
			alarm.RelativeAmountAllDay, vars)
	}
	return f.translator.TranslatePlural(locale,
		"%n week before the event at {formattedHourMinute}",
		"%n weeks before the event at {formattedHourMinute}",
		alarm.RelativeAmountAllDay, vars)
}

func (f *Formatter) formatAbsoluteAlarm(alarm Alarm, currentUserTimezone, locale string) string {
	when := f.formatLocalizedAbsolute(alarm.AbsoluteDate, locale)
	if currentUserTimezone == alarm.AbsoluteTimezoneID {
		return f.translator.Translate(locale, "on {time}", map[string]string{"time": when})
	}
	return f.translator.Translate(locale, "on {time} ({timezoneId})", map[string]string{
		"time":       when,
		"timezoneId": alarm.AbsoluteTimezoneID,
	})
}

func (f *Formatter) formatLocalizedTime(t time.Time, locale string) string {
	if jalali.IsPersianLocale(locale) {
		if out := jalali.FormatTime(t); out != "" {
			return out
		}
	}
	return f.gregorian.Format(t, "LT", locale)
}

func (f *Formatter) formatLocalizedAbsolute(t time.Time, locale string) string {
	if !jalali.IsPersianLocale(locale) {
		return f.gregorian.Format(t, "LLLL", locale)
	}

	longDate := jalali.FormatDateTime(t)
	weekday := jalali.FormatWeekday(t, jalali.WidthLong)
	switch {
	case longDate != "" && weekday != "":
		return weekday + "، " + longDate
	case longDate != "":
		return longDate
	case weekday != "":
		return weekday
	}
	return f.gregorian.Format(t, "LLLL", locale)
}
