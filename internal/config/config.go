package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"metargb/calendar-format/pkg/db"
)

// Config is the process configuration read from the environment
type Config struct {
	ServiceName      string
	GRPCPort         string
	MetricsPort      string
	LogLevel         string
	DB               db.Config
	SkipSchemaCheck  bool
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	SettingsCacheTTL time.Duration
	DefaultLocale    string
	DefaultTimezone  string
}

// Load reads an optional .env file and then the environment.
// Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables with defaults
func FromEnv() (*Config, error) {
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "3306"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	ttl, err := time.ParseDuration(getEnv("SETTINGS_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SETTINGS_CACHE_TTL: %w", err)
	}
	skipSchema, err := strconv.ParseBool(getEnv("DB_SKIP_SCHEMA_CHECK", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_SKIP_SCHEMA_CHECK: %w", err)
	}

	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", "calendar_format"),
		GRPCPort:    getEnv("GRPC_PORT", "50070"),
		MetricsPort: getEnv("METRICS_PORT", "9170"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DB: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_DATABASE", "metargb_db"),
		},
		SkipSchemaCheck:  skipSchema,
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          redisDB,
		SettingsCacheTTL: ttl,
		DefaultLocale:    getEnv("DEFAULT_LOCALE", "fa-IR"),
		DefaultTimezone:  getEnv("DEFAULT_TIMEZONE", "Asia/Tehran"),
	}

	if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TIMEZONE %q: %w", cfg.DefaultTimezone, err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
