package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"metargb/calendar-format/internal/models"
)

// SettingsCache keeps recently read user settings in Redis
type SettingsCache interface {
	// Get returns nil, nil on a cache miss
	Get(ctx context.Context, userID uint64) (*models.UserSettings, error)
	Set(ctx context.Context, settings *models.UserSettings) error
	Delete(ctx context.Context, userID uint64) error
}

type settingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSettingsCache creates a settings cache whose entries expire after ttl
func NewSettingsCache(client *redis.Client, ttl time.Duration) SettingsCache {
	return &settingsCache{
		client: client,
		ttl:    ttl,
	}
}

func settingsKey(userID uint64) string {
	return fmt.Sprintf("calendar:settings:%d", userID)
}

func (c *settingsCache) Get(ctx context.Context, userID uint64) (*models.UserSettings, error) {
	val, err := c.client.Get(ctx, settingsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached settings: %w", err)
	}

	var settings models.UserSettings
	if err := json.Unmarshal(val, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode cached settings: %w", err)
	}
	return &settings, nil
}

func (c *settingsCache) Set(ctx context.Context, settings *models.UserSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return c.client.Set(ctx, settingsKey(settings.UserID), payload, c.ttl).Err()
}

func (c *settingsCache) Delete(ctx context.Context, userID uint64) error {
	return c.client.Del(ctx, settingsKey(userID)).Err()
}
