package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN          string
	Environment    string
	MigrationsPath string

	TelegramToken   string
	RecruiterChatID int64

	MeetingLink     string
	MeetingPasscode string

	MaxScanDays        int
	MaxConflictRetries int

	MetricsAddr    string
	AgendaInterval time.Duration
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv(os.Getenv)
}

// FromEnv собирает конфиг из getenv; отдельно от Load, чтобы не трогать окружение в тестах
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBDSN:           getenv("DB_DSN"),
		Environment:     getenv("ENV"),
		MigrationsPath:  getenv("MIGRATIONS_PATH"),
		TelegramToken:   getenv("TELEGRAM_TOKEN"),
		MeetingLink:     getenv("MEETING_LINK"),
		MeetingPasscode: getenv("MEETING_PASSCODE"),
		MetricsAddr:     ":9090",
		AgendaInterval:  24 * time.Hour,
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}
	// METRICS_ADDR=off выключает эндпоинт метрик
	if addr := strings.TrimSpace(getenv("METRICS_ADDR")); addr != "" {
		cfg.MetricsAddr = addr
	}
	if cfg.MetricsAddr == "off" {
		cfg.MetricsAddr = ""
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	var err error

	if cfg.RecruiterChatID, err = parseInt64(getenv, "RECRUITER_CHAT_ID", 0); err != nil {
		return nil, err
	}
	if cfg.MaxScanDays, err = parseInt(getenv, "SCHEDULER_MAX_SCAN_DAYS", 365); err != nil {
		return nil, err
	}
	if cfg.MaxConflictRetries, err = parseInt(getenv, "SCHEDULER_MAX_CONFLICT_RETRIES", 3); err != nil {
		return nil, err
	}

	if raw := strings.TrimSpace(getenv("AGENDA_INTERVAL")); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil || interval <= 0 {
			return nil, fmt.Errorf("AGENDA_INTERVAL must be a positive duration, got %q", raw)
		}
		cfg.AgendaInterval = interval
	}

	if cfg.TelegramToken != "" && cfg.RecruiterChatID == 0 {
		return nil, fmt.Errorf("RECRUITER_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}

// MissingNotifierSettings необязательные настройки, без которых подтверждение будет неполным
func (c *Config) MissingNotifierSettings() []string {
	var missing []string
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.MeetingLink == "" {
		missing = append(missing, "MEETING_LINK")
	}
	if c.MeetingPasscode == "" {
		missing = append(missing, "MEETING_PASSCODE")
	}
	return missing
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseInt(getenv func(string) string, key string, def int) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

func parseInt64(getenv func(string) string, key string, def int64) (int64, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}
