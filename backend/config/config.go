// ABOUTME: Configuration loader for the placement evaluation service
// ABOUTME: Loads settings from an optional .env file and environment variables with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds, evaluation result cache (default 300)
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)
	MetricsEnabled     bool     // expose /metrics (default: true)

	// Logging
	LogLevel  string
	LogFormat string

	// Capacity model
	NumNodes    int // must match the reference scenario (10)
	NumVNFTypes int // must match the reference scenario (8)

	// Sampling
	MaxSampleRuns   int // upper bound for /api/v1/sample runs (default 10000)
	MaxSampleLength int // upper bound for /api/v1/sample service_length (default 100)

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitSample  int  // Requests per minute per client for /api/v1/sample (default: 30)
}

// Load reads configuration. Variables already present in the environment take
// precedence over the .env file, which is optional (ENV_FILE overrides its path).
func Load() (*Config, error) {
	if err := loadEnvFile(getEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		NumNodes:    getEnvInt("NUM_NODES", 10),
		NumVNFTypes: getEnvInt("NUM_VNF_TYPES", 8),

		MaxSampleRuns:   getEnvInt("MAX_SAMPLE_RUNS", 10000),
		MaxSampleLength: getEnvInt("MAX_SAMPLE_LENGTH", 100),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitSample:  getEnvInt("RATE_LIMIT_SAMPLE", 30),
	}

	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must not be negative, got %d", cfg.CacheTTL)
	}
	if cfg.NumNodes < 1 {
		return nil, fmt.Errorf("NUM_NODES must be positive, got %d", cfg.NumNodes)
	}
	if cfg.NumVNFTypes < 1 {
		return nil, fmt.Errorf("NUM_VNF_TYPES must be positive, got %d", cfg.NumVNFTypes)
	}
	if cfg.MaxSampleRuns < 1 || cfg.MaxSampleRuns > 1000000 {
		return nil, fmt.Errorf("MAX_SAMPLE_RUNS must be between 1 and 1000000, got %d", cfg.MaxSampleRuns)
	}
	if cfg.MaxSampleLength < 1 || cfg.MaxSampleLength > models.MaxSampleLength {
		return nil, fmt.Errorf("MAX_SAMPLE_LENGTH must be between 1 and %d, got %d", models.MaxSampleLength, cfg.MaxSampleLength)
	}
	if cfg.RateLimitSample < 1 || cfg.RateLimitSample > 10000 {
		return nil, fmt.Errorf("RATE_LIMIT_SAMPLE must be between 1 and 10000, got %d", cfg.RateLimitSample)
	}

	return cfg, nil
}

// loadEnvFile loads key/value pairs from path without overriding the environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	slog.Debug("Loaded environment file", "path", path)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
