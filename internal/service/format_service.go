package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"metargb/calendar-format/internal/filters"
	"metargb/calendar-format/internal/gregorian"
	"metargb/calendar-format/internal/ics"
	"metargb/calendar-format/internal/localization"
	"metargb/calendar-format/internal/models"
	"metargb/calendar-format/internal/repository"
)

var ErrInvalidDateInput = errors.New("date input needs either an instant or fields")

// Defaults apply to users without stored settings.
type Defaults struct {
	Locale   string
	Timezone string
}

// FormatService formats dates, views and alarms with each user's locale
// and timezone.
type FormatService struct {
	repo       repository.SettingsRepository
	cache      repository.SettingsCache
	defaults   Defaults
	translator filters.Translator
	gregorian  *gregorian.Formatter
	parser     *ics.Parser
	log        logrus.FieldLogger
	observe    func(localization.Path)
	now        func() time.Time
}

// Option configures a FormatService.
type Option func(*FormatService)

// WithCache enables the Redis read-through cache.
func WithCache(cache repository.SettingsCache) Option {
	return func(s *FormatService) { s.cache = cache }
}

// WithPathObserver reports which calendar served each token dispatch.
func WithPathObserver(observe func(localization.Path)) Option {
	return func(s *FormatService) { s.observe = observe }
}

// WithLogger sets the logger for cache and import warnings.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *FormatService) {
		if log != nil {
			s.log = log
		}
	}
}

// WithNow overrides the clock.
func WithNow(now func() time.Time) Option {
	return func(s *FormatService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewFormatService(repo repository.SettingsRepository, translator filters.Translator, defaults Defaults, opts ...Option) *FormatService {
	s := &FormatService{
		repo:       repo,
		defaults:   defaults,
		translator: translator,
		gregorian:  gregorian.NewFormatter(),
		log:        logrus.StandardLogger(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.parser = ics.NewParser(s.log)
	return s
}

// Settings returns the stored settings of userID, reading the cache first.
// Users without a row, and user 0, get the defaults.
func (s *FormatService) Settings(ctx context.Context, userID uint64) (*models.UserSettings, error) {
	fallback := &models.UserSettings{UserID: userID, Locale: s.defaults.Locale, Timezone: s.defaults.Timezone}
	if userID == 0 {
		return fallback, nil
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.WithError(err).WithField("user_id", userID).Warn("settings cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	settings, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		return fallback, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, settings); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Warn("settings cache write failed")
		}
	}
	return settings, nil
}

// UpdateSettings stores the locale and timezone of a user.
func (s *FormatService) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.UserSettings, error) {
	settings := &models.UserSettings{
		UserID:    req.UserID,
		Locale:    req.Locale,
		Timezone:  req.Timezone,
		UpdatedAt: s.now(),
	}
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, req.UserID); err != nil {
			s.log.WithError(err).WithField("user_id", req.UserID).Warn("settings cache invalidation failed")
		}
	}
	return settings, nil
}

// resolve merges per-request overrides into the stored settings.
func (s *FormatService) resolve(ctx context.Context, userID uint64, locale, timezone string) (*models.UserSettings, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}
	merged := *settings
	if locale != "" {
		merged.Locale = locale
	}
	if timezone != "" {
		merged.Timezone = timezone
	}
	return &merged, nil
}

func (s *FormatService) filtersFor(loc *time.Location) *filters.Formatter {
	return filters.New(s.translator, s.gregorian, filters.WithClock(func() time.Time {
		return s.now().In(loc)
	}))
}

// FormatToken formats a date or a range with a display token.
func (s *FormatService) FormatToken(ctx context.Context, req *models.FormatTokenRequest) (string, error) {
	settings, err := s.resolve(ctx, req.UserID, req.Locale, req.Timezone)
	if err != nil {
		return "", err
	}
	loc := settings.Location()

	start, err := toPart(req.Start, loc)
	if err != nil {
		return "", err
	}
	arg := localization.RangeArg{Start: start, DefaultSeparator: req.DefaultSeparator}
	if req.End != nil {
		end, err := toPart(*req.End, loc)
		if err != nil {
			return "", err
		}
		arg.End = &end
	}

	opts := []localization.Option{localization.WithLocation(loc)}
	if s.observe != nil {
		opts = append(opts, localization.WithObserver(s.observe))
	}
	dispatcher := localization.NewDispatcher(localization.StaticLocale(settings.Locale), s.gregorian, opts...)
	return dispatcher.Format(req.Token, arg), nil
}

func toPart(in models.DateInput, loc *time.Location) (localization.PartLike, error) {
	switch {
	case in.At != nil:
		return localization.MarkerPart(in.At.In(loc)), nil
	case len(in.Fields) > 0:
		return localization.ArrayPart(in.Fields...), nil
	}
	return localization.PartLike{}, ErrInvalidDateInput
}

// FormatView renders the title of a calendar view.
func (s *FormatService) FormatView(ctx context.Context, req *models.FormatViewRequest) (string, error) {
	settings, err := s.resolve(ctx, req.UserID, req.Locale, req.Timezone)
	if err != nil {
		return "", err
	}
	loc := settings.Location()
	return s.filtersFor(loc).FormatView(req.Date.In(loc), filters.View(req.View), settings.Locale), nil
}

// FormatDate renders a single date.
func (s *FormatService) FormatDate(ctx context.Context, req *models.FormatDateRequest) (string, error) {
	settings, err := s.resolve(ctx, req.UserID, req.Locale, req.Timezone)
	if err != nil {
		return "", err
	}
	loc := settings.Location()
	return s.filtersFor(loc).FormatDate(req.Date.In(loc), req.AllDay, settings.Locale), nil
}

// FormatAlarm describes an alarm in words.
func (s *FormatService) FormatAlarm(ctx context.Context, req *models.FormatAlarmRequest) (string, error) {
	settings, err := s.resolve(ctx, req.UserID, req.Locale, req.Timezone)
	if err != nil {
		return "", err
	}
	return s.describeAlarm(req.Alarm, req.AllDay, settings), nil
}

func (s *FormatService) describeAlarm(alarm filters.Alarm, allDay bool, settings *models.UserSettings) string {
	loc := settings.Location()
	if !alarm.AbsoluteDate.IsZero() && alarm.AbsoluteTimezoneID == "" {
		alarm.AbsoluteTimezoneID = alarm.AbsoluteDate.Location().String()
	}
	return s.filtersFor(loc).FormatAlarm(alarm, allDay, settings.Timezone, settings.Locale)
}

// ImportAlarms parses an iCalendar payload and describes every alarm in it.
func (s *FormatService) ImportAlarms(ctx context.Context, req *models.ImportAlarmsRequest) (*models.ImportAlarmsResponse, error) {
	settings, err := s.resolve(ctx, req.UserID, req.Locale, req.Timezone)
	if err != nil {
		return nil, err
	}

	events, err := s.parser.ParseAlarms([]byte(req.Calendar))
	if err != nil {
		return nil, fmt.Errorf("failed to import alarms: %w", err)
	}

	loc := settings.Location()
	f := s.filtersFor(loc)
	resp := &models.ImportAlarmsResponse{Events: make([]models.ImportedEvent, 0, len(events))}
	for _, ev := range events {
		start := ev.Start
		if !ev.AllDay {
			start = start.In(loc)
		}
		imported := models.ImportedEvent{
			UID:     ev.UID,
			Summary: ev.Summary,
			Start:   f.FormatDate(start, ev.AllDay, settings.Locale),
			Alarms:  make([]string, 0, len(ev.Alarms)),
		}
		for _, alarm := range ev.Alarms {
			imported.Alarms = append(imported.Alarms, s.describeAlarm(alarm, ev.AllDay, settings))
		}
		resp.Events = append(resp.Events, imported)
	}
	return resp, nil
}
