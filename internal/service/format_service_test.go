package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metargb/calendar-format/internal/filters"
	"metargb/calendar-format/internal/l10n"
	"metargb/calendar-format/internal/localization"
	"metargb/calendar-format/internal/models"
)

// Mock SettingsRepository
type mockSettingsRepository struct {
	getByUserIDFunc func(ctx context.Context, userID uint64) (*models.UserSettings, error)
	upsertFunc      func(ctx context.Context, settings *models.UserSettings) error
}

func (m *mockSettingsRepository) GetByUserID(ctx context.Context, userID uint64) (*models.UserSettings, error) {
	if m.getByUserIDFunc != nil {
		return m.getByUserIDFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSettingsRepository) Upsert(ctx context.Context, settings *models.UserSettings) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, settings)
	}
	return errors.New("not implemented")
}

// Mock SettingsCache
type mockSettingsCache struct {
	getFunc    func(ctx context.Context, userID uint64) (*models.UserSettings, error)
	setFunc    func(ctx context.Context, settings *models.UserSettings) error
	deleteFunc func(ctx context.Context, userID uint64) error
}

func (m *mockSettingsCache) Get(ctx context.Context, userID uint64) (*models.UserSettings, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSettingsCache) Set(ctx context.Context, settings *models.UserSettings) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, settings)
	}
	return nil
}

func (m *mockSettingsCache) Delete(ctx context.Context, userID uint64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID)
	}
	return nil
}

var testDefaults = Defaults{Locale: "en", Timezone: "UTC"}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func persianUser(ctx context.Context, userID uint64) (*models.UserSettings, error) {
	return &models.UserSettings{UserID: userID, Locale: "fa-IR", Timezone: "Asia/Tehran"}, nil
}

func newService(repo *mockSettingsRepository, opts ...Option) *FormatService {
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return NewFormatService(repo, l10n.NewCatalog(), testDefaults, opts...)
}

func TestFormatService_Settings(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous user gets defaults", func(t *testing.T) {
		svc := newService(&mockSettingsRepository{})
		settings, err := svc.Settings(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "en", settings.Locale)
		assert.Equal(t, "UTC", settings.Timezone)
	})

	t.Run("cache hit skips database", func(t *testing.T) {
		repo := &mockSettingsRepository{
			getByUserIDFunc: func(ctx context.Context, userID uint64) (*models.UserSettings, error) {
				t.Fatal("repository must not be called on a cache hit")
				return nil, nil
			},
		}
		cache := &mockSettingsCache{getFunc: persianUser}

		settings, err := newService(repo, WithCache(cache)).Settings(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "fa-IR", settings.Locale)
	})

	t.Run("cache miss reads database and fills cache", func(t *testing.T) {
		var cached *models.UserSettings
		repo := &mockSettingsRepository{getByUserIDFunc: persianUser}
		cache := &mockSettingsCache{
			setFunc: func(ctx context.Context, settings *models.UserSettings) error {
				cached = settings
				return nil
			},
		}

		settings, err := newService(repo, WithCache(cache)).Settings(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "Asia/Tehran", settings.Timezone)
		require.NotNil(t, cached)
		assert.Equal(t, uint64(3), cached.UserID)
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		repo := &mockSettingsRepository{getByUserIDFunc: persianUser}
		cache := &mockSettingsCache{
			getFunc: func(ctx context.Context, userID uint64) (*models.UserSettings, error) {
				return nil, errors.New("connection refused")
			},
		}

		settings, err := newService(repo, WithCache(cache)).Settings(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "fa-IR", settings.Locale)
	})

	t.Run("no stored row gets defaults", func(t *testing.T) {
		repo := &mockSettingsRepository{
			getByUserIDFunc: func(ctx context.Context, userID uint64) (*models.UserSettings, error) {
				return nil, nil
			},
		}

		settings, err := newService(repo).Settings(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), settings.UserID)
		assert.Equal(t, "en", settings.Locale)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockSettingsRepository{
			getByUserIDFunc: func(ctx context.Context, userID uint64) (*models.UserSettings, error) {
				return nil, errors.New("database error")
			},
		}

		_, err := newService(repo).Settings(ctx, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get settings")
	})
}

func TestFormatService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)

	var stored *models.UserSettings
	var invalidated uint64
	repo := &mockSettingsRepository{
		upsertFunc: func(ctx context.Context, settings *models.UserSettings) error {
			stored = settings
			return nil
		},
	}
	cache := &mockSettingsCache{
		deleteFunc: func(ctx context.Context, userID uint64) error {
			invalidated = userID
			return nil
		},
	}

	svc := newService(repo, WithCache(cache), WithNow(func() time.Time { return now }))
	settings, err := svc.UpdateSettings(ctx, &models.UpdateSettingsRequest{UserID: 9, Locale: "fa-IR", Timezone: "Asia/Tehran"})
	require.NoError(t, err)
	assert.Equal(t, stored, settings)
	assert.Equal(t, now, settings.UpdatedAt)
	assert.Equal(t, uint64(9), invalidated)

	repo.upsertFunc = func(ctx context.Context, settings *models.UserSettings) error {
		return errors.New("database error")
	}
	_, err = svc.UpdateSettings(ctx, &models.UpdateSettingsRequest{UserID: 9, Locale: "en", Timezone: "UTC"})
	require.Error(t, err)
}

func TestFormatService_FormatToken(t *testing.T) {
	ctx := context.Background()
	repo := &mockSettingsRepository{getByUserIDFunc: persianUser}

	var paths []localization.Path
	svc := newService(repo, WithPathObserver(func(p localization.Path) { paths = append(paths, p) }))

	t.Run("persian range from field arrays", func(t *testing.T) {
		got, err := svc.FormatToken(ctx, &models.FormatTokenRequest{
			UserID: 1,
			Token:  "LL",
			Start:  models.DateInput{Fields: []int{2024, 0, 15}},
			End:    &models.DateInput{Fields: []int{2024, 0, 16}},
		})
		require.NoError(t, err)
		assert.Equal(t, "۲۵ دی ۱۴۰۲ – ۲۶ دی ۱۴۰۲", got)
	})

	t.Run("instant is shown in the user timezone", func(t *testing.T) {
		at := time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC)
		got, err := svc.FormatToken(ctx, &models.FormatTokenRequest{UserID: 1, Token: "LT", Start: models.DateInput{At: &at}})
		require.NoError(t, err)
		assert.Equal(t, "۱۰:۳۰", got)
	})

	t.Run("locale override", func(t *testing.T) {
		got, err := svc.FormatToken(ctx, &models.FormatTokenRequest{
			UserID: 1,
			Token:  "LL",
			Locale: "en",
			Start:  models.DateInput{Fields: []int{2024, 0, 15}},
		})
		require.NoError(t, err)
		assert.Equal(t, "January 15, 2024", got)
	})

	t.Run("empty start", func(t *testing.T) {
		_, err := svc.FormatToken(ctx, &models.FormatTokenRequest{UserID: 1, Token: "LL"})
		assert.ErrorIs(t, err, ErrInvalidDateInput)
	})

	assert.Equal(t, []localization.Path{localization.PathJalali, localization.PathJalali, localization.PathGregorian}, paths)
}

func TestFormatService_FormatViewAndDate(t *testing.T) {
	ctx := context.Background()
	svc := newService(&mockSettingsRepository{getByUserIDFunc: persianUser})
	date := time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC)

	view, err := svc.FormatView(ctx, &models.FormatViewRequest{UserID: 1, Date: date, View: "dayGridMonth"})
	require.NoError(t, err)
	assert.Equal(t, "دی ۱۴۰۲", view)

	text, err := svc.FormatDate(ctx, &models.FormatDateRequest{UserID: 1, Date: date})
	require.NoError(t, err)
	assert.Equal(t, "۲۵ دی ۱۴۰۲، ساعت ۱۰:۳۰", text)

	_, err = newService(&mockSettingsRepository{}).FormatView(ctx, &models.FormatViewRequest{UserID: 1, Date: date, View: "dayGridMonth"})
	require.Error(t, err)
}

func TestFormatService_FormatAlarm(t *testing.T) {
	ctx := context.Background()
	svc := newService(&mockSettingsRepository{getByUserIDFunc: persianUser})

	text, err := svc.FormatAlarm(ctx, &models.FormatAlarmRequest{
		UserID: 1,
		Alarm:  filters.Alarm{RelativeTrigger: filters.Relative(0)},
	})
	require.NoError(t, err)
	assert.Equal(t, "در زمان پایان رویداد", text)

	tehran, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)
	text, err = svc.FormatAlarm(ctx, &models.FormatAlarmRequest{
		UserID: 1,
		Locale: "en",
		Alarm:  filters.Alarm{AbsoluteDate: time.Date(2024, 1, 15, 10, 30, 0, 0, tehran)},
	})
	require.NoError(t, err)
	assert.Equal(t, "on Monday, January 15, 2024 10:30 AM", text)

	text, err = svc.FormatAlarm(ctx, &models.FormatAlarmRequest{
		UserID: 1,
		Locale: "en",
		Alarm:  filters.Alarm{AbsoluteDate: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	assert.Equal(t, "on Monday, January 15, 2024 10:30 AM (UTC)", text)
}

func TestFormatService_ImportAlarms(t *testing.T) {
	ctx := context.Background()
	svc := newService(&mockSettingsRepository{})

	body := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:standup",
		"SUMMARY:Standup",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240115T103000Z",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"TRIGGER:-PT15M",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n") + "\r\n"

	resp, err := svc.ImportAlarms(ctx, &models.ImportAlarmsRequest{Calendar: body})
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "standup", resp.Events[0].UID)
	assert.Equal(t, "Jan 15, 2024 10:30 AM", resp.Events[0].Start)
	assert.Equal(t, []string{"15 minutes before the event starts"}, resp.Events[0].Alarms)

	_, err = svc.ImportAlarms(ctx, &models.ImportAlarmsRequest{Calendar: "not a calendar"})
	require.Error(t, err)
}
