// Package filters renders user-facing calendar strings: the header of a
// calendar view, single dates, and alarm descriptions.
package filters

import "time"

// Translator looks up message templates for a locale.
type Translator interface {
	Translate(locale, msgid string, vars map[string]string) string
	TranslatePlural(locale, singular, plural string, n int, vars map[string]string) string
}

// GregorianFormatter renders an instant with a moment-style format string.
type GregorianFormatter interface {
	Format(t time.Time, format, locale string) string
}

// Formatter bundles the collaborators every filter needs.
type Formatter struct {
	translator Translator
	gregorian  GregorianFormatter
	now        func() time.Time
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock overrides the clock used to build same-day alarm times.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// New returns a Formatter.
func New(translator Translator, gregorian GregorianFormatter, opts ...Option) *Formatter {
	f := &Formatter{
		translator: translator,
		gregorian:  gregorian,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
