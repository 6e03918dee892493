package models

import "time"

// UserSettings holds the display preferences formatting runs with
type UserSettings struct {
	UserID    uint64    `db:"user_id" json:"user_id"`
	Locale    string    `db:"locale" json:"locale"`
	Timezone  string    `db:"timezone" json:"timezone"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Location resolves the settings timezone, falling back to UTC.
func (s *UserSettings) Location() *time.Location {
	if s == nil || s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
