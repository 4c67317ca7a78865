package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

type AppConfig struct {
	AppEnv   string
	LogLevel slog.Level
	Port     string

	// HTTPTimeout applies to outbound importer calls.
	HTTPTimeout time.Duration

	// ReportInterval controls how often the report scheduler runs.
	ReportInterval time.Duration

	// ExtremeThreshold is the cutoff used by the report job and as the
	// default for the extremes endpoint.
	ExtremeThreshold float64

	// SpikeThreshold is the default adjacent-reading difference that counts
	// as a spike.
	SpikeThreshold float64

	// Importer settings. When ImportEnabled is false the importer and its
	// endpoint are not wired.
	ImportEnabled    bool
	ImportLat        float64
	ImportLon        float64
	ImportDateFormat string

	// SeedSample loads the demo records into the store at startup.
	SeedSample bool
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment")
	}
	cfg := &AppConfig{}

	cfg.AppEnv = getenvDefault("APP_ENV", "dev")
	switch cfg.AppEnv {
	case "dev", "prod":
	default:
		return nil, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", cfg.AppEnv)
	}

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	cfg.Port = getenvDefault("PORT", "8080")

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	interval, err := time.ParseDuration(getenvDefault("REPORT_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_INTERVAL: %w", err)
	}
	cfg.ReportInterval = interval

	cfg.ExtremeThreshold, err = getenvFloat("EXTREME_THRESHOLD", 30)
	if err != nil {
		return nil, err
	}
	cfg.SpikeThreshold, err = getenvFloat("SPIKE_THRESHOLD", temperature.DefaultSpikeThreshold)
	if err != nil {
		return nil, err
	}

	cfg.ImportEnabled, err = getenvBool("IMPORT_ENABLED", false)
	if err != nil {
		return nil, err
	}
	cfg.ImportLat, err = getenvFloat("IMPORT_LAT", 52.52)
	if err != nil {
		return nil, err
	}
	cfg.ImportLon, err = getenvFloat("IMPORT_LON", 13.41)
	if err != nil {
		return nil, err
	}
	cfg.ImportDateFormat = getenvDefault("IMPORT_DATE_FORMAT", "2006-01-02")

	cfg.SeedSample, err = getenvBool("SEED_SAMPLE", false)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
