package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"metargb/calendar-format/internal/models"
)

type SettingsRepository interface {
	// GetByUserID returns nil, nil when the user has no stored settings
	GetByUserID(ctx context.Context, userID uint64) (*models.UserSettings, error)
	Upsert(ctx context.Context, settings *models.UserSettings) error
}

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByUserID(ctx context.Context, userID uint64) (*models.UserSettings, error) {
	query := `
		SELECT user_id, locale, timezone, updated_at
		FROM calendar_user_settings
		WHERE user_id = ?
		LIMIT 1
	`

	settings := &models.UserSettings{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.Locale,
		&settings.Timezone,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}

	return settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *models.UserSettings) error {
	if settings.UpdatedAt.IsZero() {
		settings.UpdatedAt = time.Now()
	}

	query := `
		INSERT INTO calendar_user_settings (user_id, locale, timezone, updated_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE locale = VALUES(locale), timezone = VALUES(timezone), updated_at = VALUES(updated_at)
	`

	_, err := r.db.ExecContext(ctx, query, settings.UserID, settings.Locale, settings.Timezone, settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}
