package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve in minimal containers

	"orderdesk/internal/adapters/out/rabbitmq"
	"orderdesk/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	Timezone             string
	LogLevel             string
	RedisAddr            string
	RabbitMQURL          string
	OrderEventsExchange  string
	ExtractorURL         string
	ExtractorAPIKey      string
	CacheRefreshSchedule string
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv merges a .env file into the process environment when one exists. Variables
// already set win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads every key through lookup, applies defaults and validates the result.
func LoadConfig(lookup LookupFunc) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	config := Config{
		HTTPPort:             get("HTTP_PORT", "8080"),
		DBHost:               get("DB_HOST", ""),
		DBPort:               get("DB_PORT", "5432"),
		DBUser:               get("DB_USER", ""),
		DBPassword:           get("DB_PASSWORD", ""),
		DBName:               get("DB_NAME", ""),
		DBSslMode:            get("DB_SSLMODE", "disable"),
		Timezone:             get("TIMEZONE", "UTC"),
		LogLevel:             get("LOG_LEVEL", "info"),
		RedisAddr:            get("REDIS_ADDR", ""),
		RabbitMQURL:          get("RABBITMQ_URL", ""),
		OrderEventsExchange:  get("ORDER_EVENTS_EXCHANGE", rabbitmq.DefaultOrdersExchange),
		ExtractorURL:         get("EXTRACTOR_URL", ""),
		ExtractorAPIKey:      get("EXTRACTOR_API_KEY", ""),
		CacheRefreshSchedule: get("CACHE_REFRESH_SCHEDULE", jobs.DefaultRefreshSchedule),
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	var problems []error
	for _, required := range []struct{ key, value string }{
		{"DB_HOST", c.DBHost},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
	} {
		if required.value == "" {
			problems = append(problems, fmt.Errorf("%s is required", required.key))
		}
	}

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port <= 0 || port > 65535 {
		problems = append(problems, fmt.Errorf("HTTP_PORT %q is not a valid port", c.HTTPPort))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Errorf("TIMEZONE: %w", err))
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return errors.Join(problems...)
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Location falls back to UTC for a zone that fails to load; Validate reports that case.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
