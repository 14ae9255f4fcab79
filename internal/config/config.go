package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth for the HTTP surface; empty disables auth.
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Per-document extraction bound
	DocumentTimeout time.Duration

	// Upload limits
	MaxUploadBytes int64

	// Analysis knobs
	TopSections    int // ranked sections reported
	TopSubsections int // refined subsections reported
	RefineTopN     int // ranked sections the refiner considers

	// Optional YAML taxonomy overlay; empty means built-ins only.
	TaxonomyFile string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("DOCSIFT_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		DocumentTimeout: envDuration("DOCUMENT_TIMEOUT", 30*time.Second),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		TopSections:    envInt("TOP_SECTIONS", 10),
		TopSubsections: envInt("TOP_SUBSECTIONS", 8),
		RefineTopN:     envInt("REFINE_TOP_N", 15),

		TaxonomyFile: os.Getenv("TAXONOMY_FILE"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.DocumentTimeout <= 0 {
		cfg.DocumentTimeout = 30 * time.Second
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.TopSections <= 0 {
		cfg.TopSections = 10
	}
	if cfg.TopSubsections <= 0 {
		cfg.TopSubsections = 8
	}
	if cfg.RefineTopN <= 0 {
		cfg.RefineTopN = 15
	}

	return cfg
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
