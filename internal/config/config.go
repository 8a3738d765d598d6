package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Mode selects how the process runs.
const (
	ModeBatch = "batch"
	ModeServe = "serve"
)

type Config struct {
	Mode string

	// Batch processing
	InputDir    string
	OutputDir   string
	Workers     int
	SamplePages int

	// HTTP server
	Port   string
	APIKey string

	// Upload limits
	MaxUploadBytes int64
	MaxQueueSize   int

	// Job state
	JobTTL time.Duration
}

// Load resolves all configuration from the environment, once, at startup.
func Load() Config {
	cfg := Config{
		Mode: envOr("OUTLINER_MODE", ModeBatch),

		InputDir:    envOr("OUTLINER_INPUT_DIR", "input"),
		OutputDir:   envOr("OUTLINER_OUTPUT_DIR", "output"),
		Workers:     envInt("OUTLINER_WORKERS", 1),
		SamplePages: envInt("OUTLINER_SAMPLE_PAGES", 20),

		Port:   envOr("PORT", "8090"),
		APIKey: os.Getenv("OUTLINER_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		MaxQueueSize:   envInt("MAX_QUEUE_SIZE", 100),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.SamplePages <= 0 {
		cfg.SamplePages = 20
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeBatch:
		if c.InputDir == "" {
			return fmt.Errorf("OUTLINER_INPUT_DIR is required in batch mode")
		}
		if c.OutputDir == "" {
			return fmt.Errorf("OUTLINER_OUTPUT_DIR is required in batch mode")
		}
	case ModeServe:
		if c.APIKey == "" {
			return fmt.Errorf("OUTLINER_API_KEY is required in serve mode")
		}
	default:
		return fmt.Errorf("OUTLINER_MODE must be %q or %q, got %q", ModeBatch, ModeServe, c.Mode)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
