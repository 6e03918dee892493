package localization

import (
	"time"

	"metargb/calendar-format/internal/jalali"
)

// LocaleSource supplies the active locale of the current user.
type LocaleSource interface {
	Locale() string
}

// StaticLocale is a LocaleSource that always returns the same locale.
type StaticLocale string

func (s StaticLocale) Locale() string { return string(s) }

// GregorianFormatter renders an instant with a moment-style format string.
type GregorianFormatter interface {
	Format(t time.Time, format, locale string) string
}

// Path names the formatter that served a dispatch.
type Path string

const (
	PathJalali    Path = "jalali"
	PathGregorian Path = "gregorian"
)

// Dispatcher formats dates and date ranges for a token, choosing the Jalali
// calendar for Persian locales and the Gregorian formatter otherwise.
type Dispatcher struct {
	locales   LocaleSource
	gregorian GregorianFormatter
	location  *time.Location
	observe   func(Path)
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLocation sets the zone array endpoints are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(d *Dispatcher) {
		if loc != nil {
			d.location = loc
		}
	}
}

// WithObserver registers a callback invoked with the path of every dispatch.
func WithObserver(observe func(Path)) Option {
	return func(d *Dispatcher) {
		d.observe = observe
	}
}

// NewDispatcher returns a Dispatcher reading the locale from locales.
func NewDispatcher(locales LocaleSource, gregorian GregorianFormatter, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		locales:   locales,
		gregorian: gregorian,
		location:  time.Local,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Format renders arg with token. Identical start and end results collapse to
// one value; distinct results are joined with the range separator.
func (d *Dispatcher) Format(token string, arg RangeArg) string {
	locale := d.locales.Locale()

	if jalali.IsPersianLocale(locale) {
		if out, ok := d.formatJalaliRange(token, arg); ok {
			d.record(PathJalali)
			return out
		}
	}

	d.record(PathGregorian)
	return d.formatGregorianRange(token, arg, locale)
}

func (d *Dispatcher) record(path Path) {
	if d.observe != nil {
		d.observe(path)
	}
}

func (d *Dispatcher) formatJalaliRange(token string, arg RangeArg) (string, bool) {
	format, ok := jalaliTokens[token]
	if !ok {
		return "", false
	}

	start, ok := arg.Start.Resolve(d.location)
	if !ok {
		return "", false
	}

	formattedStart, ok := format(start)
	if !ok {
		return "", false
	}

	if arg.End == nil {
		return formattedStart, true
	}

	end, ok := arg.End.Resolve(d.location)
	if !ok {
		return formattedStart, true
	}

	formattedEnd, ok := format(end)
	if !ok {
		return "", false
	}

	if formattedStart == formattedEnd {
		return formattedStart, true
	}
	return formattedStart + arg.separator() + formattedEnd, true
}

func (d *Dispatcher) formatGregorianRange(token string, arg RangeArg, locale string) string {
	start := d.formatGregorian(token, arg.Start, locale)
	if arg.End == nil {
		return start
	}

	end, ok := arg.End.Resolve(d.location)
	if !ok {
		return start
	}

	formattedEnd := d.gregorian.Format(end, token, locale)
	if start == formattedEnd {
		return start
	}
	return start + arg.separator() + formattedEnd
}

func (d *Dispatcher) formatGregorian(token string, part PartLike, locale string) string {
	t, ok := part.Resolve(d.location)
	if !ok {
		return ""
	}
	return d.gregorian.Format(t, token, locale)
}
