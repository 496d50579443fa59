package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// LogConfig controls the global logger output.
type LogConfig struct {
	Level  string
	Format string
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL    string
	Port           string
	PhoneRegion    string
	PoolMinConns   int32
	PoolMaxConns   int32
	RateLimitBatch RateLimitConfig
	Log            LogConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Port:         getEnv("PORT", "8080"),
		PhoneRegion:  getEnv("PHONE_DEFAULT_REGION", "US"),
		PoolMinConns: parseInt32(getEnv("DB_POOL_MIN_CONNS", "10"), 10),
		PoolMaxConns: parseInt32(getEnv("DB_POOL_MAX_CONNS", "50"), 50),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_BATCH", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BATCH value: %w", err)
	}
	cfg.RateLimitBatch = rl

	if cfg.PoolMinConns > cfg.PoolMaxConns {
		cfg.PoolMinConns = cfg.PoolMaxConns
	}

	return cfg, nil
}

// InitLogger builds the global zap logger from cfg and installs it.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if strings.EqualFold(cfg.Format, "console") {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseInt32(input string, fallback int32) int32 {
	v, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	if err != nil || v <= 0 {
		return fallback
	}
	return int32(v)
}
