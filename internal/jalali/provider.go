package jalali

import (
	"errors"
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	"metargb/calendar-format/pkg/helpers"
)

var (
	// ErrInvalidInstant is returned by providers for the zero time.
	ErrInvalidInstant = errors.New("jalali: invalid instant")
	// ErrOutOfRange is returned for instants the calendar library cannot convert.
	ErrOutOfRange = errors.New("jalali: instant out of range")
)

// Digits selects the numbering system of a provider's output.
type Digits int

const (
	// PersianDigits renders Eastern Arabic-Indic digits (۱۴۰۲).
	PersianDigits Digits = iota
	// LatinDigits renders ASCII digits (1402).
	LatinDigits
)

// Parts holds the Jalali year, month (1..12) and day (1..31) of an instant.
type Parts struct {
	Year  int
	Month int
	Day   int
}

func (p Parts) valid() bool {
	return p.Year != 0 && p.Month >= 1 && p.Month <= 12 && p.Day >= 1 && p.Day <= 31
}

// Provider is a calendar-aware formatting backend.
type Provider interface {
	// Format renders t with a ptime layout (yyyy, MMM, M, d, E, e, HH, mm, ...).
	Format(t time.Time, layout string) (string, error)
	// Parts returns the Jalali date fields of t.
	Parts(t time.Time) (Parts, error)
}

// ProviderFactory builds a Provider for a numbering system.
type ProviderFactory func(digits Digits) (Provider, error)

type ptimeProvider struct {
	digits Digits
}

// NewProvider returns a Provider backed by go-persian-calendar.
// Instants are converted in their own location.
func NewProvider(digits Digits) (Provider, error) {
	switch digits {
	case PersianDigits, LatinDigits:
		return &ptimeProvider{digits: digits}, nil
	default:
		return nil, fmt.Errorf("jalali: unknown numbering system %d", digits)
	}
}

func (p *ptimeProvider) Format(t time.Time, layout string) (out string, err error) {
	if t.IsZero() {
		return "", ErrInvalidInstant
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("jalali: format %q: %v", layout, r)
		}
	}()

	pt := ptime.New(t)
	if !converted(pt) {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, t.Format(time.DateOnly))
	}

	out = pt.Format(layout)
	if p.digits == PersianDigits {
		out = helpers.LocalizeDigits(out)
	}
	return out, nil
}

func (p *ptimeProvider) Parts(t time.Time) (parts Parts, err error) {
	if t.IsZero() {
		return Parts{}, ErrInvalidInstant
	}

	defer func() {
		if r := recover(); r != nil {
			parts, err = Parts{}, fmt.Errorf("jalali: parts: %v", r)
		}
	}()

	pt := ptime.New(t)
	if !converted(pt) {
		return Parts{}, fmt.Errorf("%w: %s", ErrOutOfRange, t.Format(time.DateOnly))
	}
	return Parts{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}, nil
}

// converted reports whether ptime produced a date. It returns a zero value
// for years before its supported range instead of an error.
func converted(pt ptime.Time) bool {
	return pt.Year() > 0 && pt.Month() != 0
}
