package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
// Создаётся один раз в main и передаётся компонентам явно.
type Config struct {
	DatabaseURL string
	ServerPort  int
	LogLevel    slog.Level

	DefaultWinPoints int
	SupportedGames   []string

	Storage StorageConfig
	Summary SummaryConfig

	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitRequests  int
	RateLimitWindow    time.Duration
}

type StorageConfig struct {
	UseS3             bool
	S3BucketName      string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	LocalImageDir     string
}

type SummaryConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Enabled reports whether match notes should be sent for summarization.
func (c SummaryConfig) Enabled() bool {
	return c.APIKey != ""
}

var defaultSupportedGames = []string{
	"Badminton", "Table Tennis", "Pool", "Carom",
	"Pickle ball", "Chess", "Box Cricket", "Foosball",
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	port, err := intFromEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	winPoints, err := intFromEnv("DEFAULT_WIN_POINTS", 10)
	if err != nil {
		return nil, err
	}
	if winPoints < 0 {
		return nil, fmt.Errorf("DEFAULT_WIN_POINTS must not be negative, got %d", winPoints)
	}

	useS3, err := boolFromEnv("USE_S3", false)
	if err != nil {
		return nil, err
	}
	storageCfg := StorageConfig{
		UseS3:             useS3,
		S3BucketName:      envOr("S3_BUCKET_NAME", "amc-champion-league"),
		S3Region:          envOr("S3_REGION", "us-east-1"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		LocalImageDir:     envOr("LOCAL_IMAGE_DIR", "./images"),
	}
	if storageCfg.UseS3 && storageCfg.S3BucketName == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME must be set when USE_S3 is enabled")
	}

	summaryTimeout, err := durationFromEnv("SUMMARY_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	if summaryTimeout <= 0 {
		return nil, fmt.Errorf("SUMMARY_TIMEOUT must be positive, got %s", summaryTimeout)
	}

	rateLimitEnabled, err := boolFromEnv("RATE_LIMIT_ENABLED", false)
	if err != nil {
		return nil, err
	}
	rateLimitRequests, err := intFromEnv("RATE_LIMIT_REQUESTS", 100)
	if err != nil {
		return nil, err
	}
	rateLimitWindow, err := durationFromEnv("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	if rateLimitEnabled && (rateLimitRequests <= 0 || rateLimitWindow <= 0) {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}

	cfg := &Config{
		DatabaseURL:      dbURL,
		ServerPort:       port,
		LogLevel:         level,
		DefaultWinPoints: winPoints,
		SupportedGames:   splitList(os.Getenv("SUPPORTED_GAMES"), defaultSupportedGames),
		Storage:          storageCfg,
		Summary: SummaryConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   envOr("OPENAI_MODEL", "gpt-3.5-turbo"),
			Timeout: summaryTimeout,
		},
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
		RateLimitEnabled:   rateLimitEnabled,
		RateLimitRequests:  rateLimitRequests,
		RateLimitWindow:    rateLimitWindow,
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func boolFromEnv(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func splitList(raw string, fallback []string) []string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
