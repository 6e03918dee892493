// Package ics imports VALARM reminders from iCalendar payloads.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/sirupsen/logrus"

	"metargb/calendar-format/internal/filters"
)

var (
	ErrEmptyBody       = errors.New("empty ICS body")
	ErrInvalidCalendar = errors.New("invalid iCalendar data")
)

const propertyTrigger = ical.ComponentProperty("TRIGGER")

// Event is a VEVENT reduced to what alarm descriptions need.
type Event struct {
	UID     string          `json:"uid"`
	Summary string          `json:"summary,omitempty"`
	AllDay  bool            `json:"all_day"`
	Start   time.Time       `json:"start"`
	Alarms  []filters.Alarm `json:"alarms"`
}

// Parser turns iCalendar bodies into events with their alarms.
type Parser struct {
	log logrus.FieldLogger
}

// NewParser returns a Parser that reports skipped components to log.
func NewParser(log logrus.FieldLogger) *Parser {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Parser{log: log}
}

// ParseAlarms parses body and returns every VEVENT with its VALARMs.
// Events without a UID and alarms with an unusable TRIGGER are skipped.
func (p *Parser) ParseAlarms(body []byte) ([]Event, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
	}

	events := make([]Event, 0)
	for _, ve := range cal.Events() {
		ev, err := p.parseEvent(ve)
		if err != nil {
			p.log.WithError(err).Warn("skipping vevent")
			continue
		}
		events = append(events, ev)
	}

	p.log.WithField("event_count", len(events)).Debug("ics alarms parsed")
	return events, nil
}

func (p *Parser) parseEvent(ve *ical.VEvent) (Event, error) {
	var ev Event

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return ev, errors.New("missing UID")
	}
	ev.UID = uid.Value

	if summary := ve.GetProperty(ical.ComponentPropertySummary); summary != nil {
		ev.Summary = summary.Value
	}

	if dtStart := ve.GetProperty(ical.ComponentPropertyDtStart); dtStart != nil {
		if v := param(dtStart, "VALUE"); strings.EqualFold(v, "DATE") || !strings.Contains(dtStart.Value, "T") {
			ev.AllDay = true
		}
	}
	var err error
	if ev.AllDay {
		ev.Start, err = ve.GetAllDayStartAt()
	} else {
		ev.Start, err = ve.GetStartAt()
	}
	if err != nil {
		p.log.WithError(err).WithField("uid", ev.UID).Warn("unreadable dtstart")
		ev.Start = time.Time{}
	}

	ev.Alarms = make([]filters.Alarm, 0)
	for _, comp := range ve.Components {
		valarm, ok := comp.(*ical.VAlarm)
		if !ok {
			continue
		}
		alarm, err := parseAlarm(valarm, ev.AllDay)
		if err != nil {
			p.log.WithError(err).WithField("uid", ev.UID).Warn("skipping valarm")
			continue
		}
		ev.Alarms = append(ev.Alarms, alarm)
	}

	return ev, nil
}

func parseAlarm(valarm *ical.VAlarm, allDay bool) (filters.Alarm, error) {
	trigger := valarm.GetProperty(propertyTrigger)
	if trigger == nil || strings.TrimSpace(trigger.Value) == "" {
		return filters.Alarm{}, errors.New("missing TRIGGER")
	}

	if strings.EqualFold(param(trigger, "VALUE"), "DATE-TIME") {
		return parseAbsolute(trigger)
	}

	seconds, err := ParseDuration(trigger.Value)
	if err != nil {
		return filters.Alarm{}, err
	}

	alarm := filters.Alarm{
		RelativeTrigger:          filters.Relative(seconds),
		RelativeIsRelatedToStart: !strings.EqualFold(param(trigger, "RELATED"), "END"),
	}
	if allDay {
		alarm.RelativeAmountAllDay, alarm.RelativeUnitAllDay,
			alarm.RelativeHoursAllDay, alarm.RelativeMinutesAllDay = AllDayParts(seconds)
	}
	return alarm, nil
}

func parseAbsolute(trigger *ical.IANAProperty) (filters.Alarm, error) {
	value := strings.TrimSpace(trigger.Value)

	if strings.HasSuffix(value, "Z") {
		at, err := time.ParseInLocation("20060102T150405Z", value, time.UTC)
		if err != nil {
			return filters.Alarm{}, fmt.Errorf("invalid absolute trigger %q: %w", value, err)
		}
		return filters.Alarm{AbsoluteDate: at, AbsoluteTimezoneID: "UTC"}, nil
	}

	tzid := param(trigger, "TZID")
	loc := time.Local
	if tzid != "" {
		l, err := time.LoadLocation(tzid)
		if err != nil {
			return filters.Alarm{}, fmt.Errorf("unknown TZID %q: %w", tzid, err)
		}
		loc = l
	} else {
		tzid = loc.String()
	}

	at, err := time.ParseInLocation("20060102T150405", value, loc)
	if err != nil {
		return filters.Alarm{}, fmt.Errorf("invalid absolute trigger %q: %w", value, err)
	}
	return filters.Alarm{AbsoluteDate: at, AbsoluteTimezoneID: tzid}, nil
}

// AllDayParts splits a start-related trigger of an all-day event into the
// amount, unit, hour and minute shown in reminder editors. Triggers before
// midnight count whole days back (or weeks when the day count divides by
// seven) and keep the time of day; later triggers fall on the event day.
func AllDayParts(seconds int64) (amount int, unit string, hours, minutes int) {
	if seconds >= 0 {
		return 0, filters.UnitDays, int(seconds / 3600), int(seconds % 3600 / 60)
	}

	before := -seconds
	days := (before + 86399) / 86400
	offset := days*86400 - before

	unit = filters.UnitDays
	amount = int(days)
	if days%7 == 0 {
		unit = filters.UnitWeeks
		amount = int(days / 7)
	}
	return amount, unit, int(offset / 3600), int(offset % 3600 / 60)
}

func param(prop *ical.IANAProperty, name string) string {
	if prop.ICalParameters == nil {
		return ""
	}
	if vs, ok := prop.ICalParameters[name]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}
