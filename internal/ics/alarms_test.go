package ics

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metargb/calendar-format/internal/filters"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func calendar(lines ...string) []byte {
	body := []string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//test//EN"}
	body = append(body, lines...)
	body = append(body, "END:VCALENDAR")
	return []byte(strings.Join(body, "\r\n") + "\r\n")
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"-PT15M", -900},
		{"PT0S", 0},
		{"P1D", 86400},
		{"-P1D", -86400},
		{"-P2W", -14 * 86400},
		{"+PT1H30M", 5400},
		{"-P1DT15H", -(86400 + 15*3600)},
		{"-pt5m", -300},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, in := range []string{"", "P", "-15M", "PT", "P1H", "PT1D", "P1DT", "P1X", "PTM"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDuration(in)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestAllDayParts(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		amount  int
		unit    string
		hours   int
		minutes int
	}{
		{"day before at nine", -86400 + 9*3600, 1, filters.UnitDays, 9, 0},
		{"exactly a day before", -86400, 1, filters.UnitDays, 0, 0},
		{"two days before at half eight", -2*86400 + 8*3600 + 1800, 2, filters.UnitDays, 8, 30},
		{"one week before", -7*86400 + 10*3600, 1, filters.UnitWeeks, 10, 0},
		{"fifteen minutes before midnight", -900, 1, filters.UnitDays, 23, 45},
		{"same day", 9*3600 + 15*60, 0, filters.UnitDays, 9, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, unit, hours, minutes := AllDayParts(tt.seconds)
			assert.Equal(t, tt.amount, amount)
			assert.Equal(t, tt.unit, unit)
			assert.Equal(t, tt.hours, hours)
			assert.Equal(t, tt.minutes, minutes)
		})
	}
}

func TestParseAlarms(t *testing.T) {
	body := calendar(
		"BEGIN:VEVENT",
		"UID:timed-1",
		"SUMMARY:Standup",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240115T103000Z",
		"DTEND:20240115T110000Z",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"TRIGGER:-PT15M",
		"END:VALARM",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"TRIGGER;RELATED=END:PT0S",
		"END:VALARM",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"TRIGGER;VALUE=DATE-TIME:20240115T090000Z",
		"END:VALARM",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:allday-1",
		"SUMMARY:Nowruz",
		"DTSTAMP:20240101T000000Z",
		"DTSTART;VALUE=DATE:20240320",
		"DTEND;VALUE=DATE:20240321",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"TRIGGER:-PT15H",
		"END:VALARM",
		"END:VEVENT",
	)

	events, err := NewParser(quietLogger()).ParseAlarms(body)
	require.NoError(t, err)
	require.Len(t, events, 2)

	timed := events[0]
	assert.Equal(t, "timed-1", timed.UID)
	assert.Equal(t, "Standup", timed.Summary)
	assert.False(t, timed.AllDay)
	assert.True(t, timed.Start.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)))
	require.Len(t, timed.Alarms, 3)

	require.NotNil(t, timed.Alarms[0].RelativeTrigger)
	assert.Equal(t, int64(-900), *timed.Alarms[0].RelativeTrigger)
	assert.True(t, timed.Alarms[0].RelativeIsRelatedToStart)

	require.NotNil(t, timed.Alarms[1].RelativeTrigger)
	assert.Equal(t, int64(0), *timed.Alarms[1].RelativeTrigger)
	assert.False(t, timed.Alarms[1].RelativeIsRelatedToStart)

	assert.Nil(t, timed.Alarms[2].RelativeTrigger)
	assert.Equal(t, "UTC", timed.Alarms[2].AbsoluteTimezoneID)
	assert.True(t, timed.Alarms[2].AbsoluteDate.Equal(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)))

	allDay := events[1]
	assert.True(t, allDay.AllDay)
	require.Len(t, allDay.Alarms, 1)
	assert.Equal(t, 1, allDay.Alarms[0].RelativeAmountAllDay)
	assert.Equal(t, filters.UnitDays, allDay.Alarms[0].RelativeUnitAllDay)
	assert.Equal(t, 9, allDay.Alarms[0].RelativeHoursAllDay)
	assert.Equal(t, 0, allDay.Alarms[0].RelativeMinutesAllDay)
}

func TestParseAlarms_SkipsBadComponents(t *testing.T) {
	body := calendar(
		"BEGIN:VEVENT",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240115T103000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:ok",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240115T103000Z",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"TRIGGER:soon",
		"END:VALARM",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"TRIGGER:-PT5M",
		"END:VALARM",
		"END:VEVENT",
	)

	events, err := NewParser(quietLogger()).ParseAlarms(body)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ok", events[0].UID)
	require.Len(t, events[0].Alarms, 1)
	assert.Equal(t, int64(-300), *events[0].Alarms[0].RelativeTrigger)
}

func TestParseAlarms_LogsUnreadableStart(t *testing.T) {
	body := calendar(
		"BEGIN:VEVENT",
		"UID:broken-start",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240115T10",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"TRIGGER:-PT5M",
		"END:VALARM",
		"END:VEVENT",
	)

	log, hook := logtest.NewNullLogger()
	events, err := NewParser(log).ParseAlarms(body)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Start.IsZero())
	require.Len(t, events[0].Alarms, 1)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "unreadable dtstart", entry.Message)
	assert.Equal(t, "broken-start", entry.Data["uid"])
}

func TestParseAlarms_EmptyBody(t *testing.T) {
	_, err := NewParser(nil).ParseAlarms([]byte("  \n"))
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestParseAlarms_FeedsAlarmFormatter(t *testing.T) {
	body := calendar(
		"BEGIN:VEVENT",
		"UID:feed",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240115T103000Z",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"TRIGGER;RELATED=END:-PT1H",
		"END:VALARM",
		"END:VEVENT",
	)

	events, err := NewParser(quietLogger()).ParseAlarms(body)
	require.NoError(t, err)
	require.Len(t, events, 1)

	f := filters.New(passthroughTranslator{}, nil)
	assert.Equal(t, "an hour before the event ends", f.FormatAlarm(events[0].Alarms[0], false, "UTC", "en"))
}

type passthroughTranslator struct{}

func (passthroughTranslator) Translate(_, msgid string, vars map[string]string) string {
	for k, v := range vars {
		msgid = strings.ReplaceAll(msgid, "{"+k+"}", v)
	}
	return msgid
}

func (passthroughTranslator) TranslatePlural(_, singular, _ string, _ int, _ map[string]string) string {
	return singular
}
