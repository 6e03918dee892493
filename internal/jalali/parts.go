package jalali

import (
	"sync"
	"time"
)

// Extractor converts instants into Jalali date parts through a lazily built,
// Latin-digit provider. A failed construction is remembered and never retried.
type Extractor struct {
	factory ProviderFactory

	once     sync.Once
	provider Provider
}

// NewExtractor returns an Extractor that builds its provider with factory on first use.
func NewExtractor(factory ProviderFactory) *Extractor {
	return &Extractor{factory: factory}
}

func (e *Extractor) load() Provider {
	e.once.Do(func() {
		if e.factory == nil {
			return
		}
		provider, err := e.factory(LatinDigits)
		if err != nil {
			return
		}
		e.provider = provider
	})
	return e.provider
}

// Parts returns the Jalali year, month and day of t. The boolean is false when
// t is the zero time, the provider is unavailable, or any field is out of range.
func (e *Extractor) Parts(t time.Time) (Parts, bool) {
	provider := e.load()
	if provider == nil || t.IsZero() {
		return Parts{}, false
	}

	parts, err := provider.Parts(t)
	if err != nil || !parts.valid() {
		return Parts{}, false
	}
	return parts, true
}

var defaultExtractor = NewExtractor(NewProvider)

// PartsOf returns the Jalali date parts of t using the process-wide extractor.
func PartsOf(t time.Time) (Parts, bool) {
	return defaultExtractor.Parts(t)
}
