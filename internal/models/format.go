package models

import (
	"time"

	"metargb/calendar-format/internal/filters"
)

// DateInput is one range endpoint on the wire: either an instant or the
// field array [year, month(0-based), day, hour, minute, second, millisecond].
type DateInput struct {
	At     *time.Time `json:"at,omitempty"`
	Fields []int      `json:"fields,omitempty" validate:"omitempty,min=1,max=7"`
}

// FormatTokenRequest formats a date or range with a display token
type FormatTokenRequest struct {
	UserID           uint64     `json:"user_id"`
	Token            string     `json:"token" validate:"required"`
	Start            DateInput  `json:"start"`
	End              *DateInput `json:"end,omitempty"`
	DefaultSeparator string     `json:"default_separator,omitempty"`
	Locale           string     `json:"locale,omitempty" validate:"omitempty,locale"`
	Timezone         string     `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// FormatViewRequest renders the title of a calendar view
type FormatViewRequest struct {
	UserID   uint64    `json:"user_id"`
	Date     time.Time `json:"date" validate:"required"`
	View     string    `json:"view" validate:"required,view"`
	Locale   string    `json:"locale,omitempty" validate:"omitempty,locale"`
	Timezone string    `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// FormatDateRequest renders a single date
type FormatDateRequest struct {
	UserID   uint64    `json:"user_id"`
	Date     time.Time `json:"date" validate:"required"`
	AllDay   bool      `json:"all_day"`
	Locale   string    `json:"locale,omitempty" validate:"omitempty,locale"`
	Timezone string    `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// FormatAlarmRequest describes an alarm in words
type FormatAlarmRequest struct {
	UserID   uint64        `json:"user_id"`
	Alarm    filters.Alarm `json:"alarm"`
	AllDay   bool          `json:"all_day"`
	Locale   string        `json:"locale,omitempty" validate:"omitempty,locale"`
	Timezone string        `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// ImportAlarmsRequest describes every alarm of an iCalendar payload
type ImportAlarmsRequest struct {
	UserID   uint64 `json:"user_id"`
	Calendar string `json:"calendar" validate:"required"`
	Locale   string `json:"locale,omitempty" validate:"omitempty,locale"`
	Timezone string `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// UpdateSettingsRequest stores a user's locale and timezone
type UpdateSettingsRequest struct {
	UserID   uint64 `json:"user_id" validate:"required"`
	Locale   string `json:"locale" validate:"required,locale"`
	Timezone string `json:"timezone" validate:"required,timezone"`
}

// TextResponse carries one formatted string
type TextResponse struct {
	Text string `json:"text"`
}

// ImportedEvent is an event with its alarms already described
type ImportedEvent struct {
	UID     string   `json:"uid"`
	Summary string   `json:"summary,omitempty"`
	Start   string   `json:"start"`
	Alarms  []string `json:"alarms"`
}

// ImportAlarmsResponse lists the described events of a payload
type ImportAlarmsResponse struct {
	Events []ImportedEvent `json:"events"`
}

// SettingsResponse echoes stored settings
type SettingsResponse struct {
	Settings *UserSettings `json:"settings"`
}
