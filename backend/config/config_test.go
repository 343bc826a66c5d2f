package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Cleanup(withCleanEnv(t, nil))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.CacheTTL != 300 {
		t.Errorf("Expected default cache TTL 300, got %d", cfg.CacheTTL)
	}
	if cfg.NumNodes != 10 || cfg.NumVNFTypes != 8 {
		t.Errorf("Expected 10 nodes and 8 VNF types, got %d and %d", cfg.NumNodes, cfg.NumVNFTypes)
	}
	if !cfg.MetricsEnabled {
		t.Error("Expected metrics enabled by default")
	}
	if cfg.MaxSampleLength != 100 {
		t.Errorf("Expected default max sample length 100, got %d", cfg.MaxSampleLength)
	}
	if cfg.MaxSampleRuns != 10000 {
		t.Errorf("Expected default max sample runs 10000, got %d", cfg.MaxSampleRuns)
	}
	if !cfg.RateLimitEnabled || cfg.RateLimitSample != 30 {
		t.Errorf("Expected rate limiting at 30/min, got enabled=%v limit=%d", cfg.RateLimitEnabled, cfg.RateLimitSample)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("Expected info/text logging, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Errorf("Expected no CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Cleanup(withCleanEnv(t, map[string]string{
		"PORT":                 "9090",
		"CACHE_TTL":            "0",
		"METRICS_ENABLED":      "false",
		"MAX_SAMPLE_RUNS":      "50",
		"CORS_ALLOWED_ORIGINS": " http://a.test , ,http://b.test",
	}))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.CacheTTL != 0 {
		t.Errorf("Expected cache TTL 0, got %d", cfg.CacheTTL)
	}
	if cfg.MetricsEnabled {
		t.Error("Expected metrics disabled")
	}
	if cfg.MaxSampleRuns != 50 {
		t.Errorf("Expected max sample runs 50, got %d", cfg.MaxSampleRuns)
	}
	if diff := cmp.Diff([]string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins); diff != "" {
		t.Errorf("CORS origins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"negative cache ttl", map[string]string{"CACHE_TTL": "-1"}},
		{"zero nodes", map[string]string{"NUM_NODES": "0"}},
		{"zero vnf types", map[string]string{"NUM_VNF_TYPES": "0"}},
		{"sample runs too high", map[string]string{"MAX_SAMPLE_RUNS": "2000000"}},
		{"sample runs zero", map[string]string{"MAX_SAMPLE_RUNS": "0"}},
		{"sample length too high", map[string]string{"MAX_SAMPLE_LENGTH": "1001"}},
		{"sample length zero", map[string]string{"MAX_SAMPLE_LENGTH": "0"}},
		{"sample rate limit zero", map[string]string{"RATE_LIMIT_SAMPLE": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(withCleanEnv(t, tt.env))

			if _, err := Load(); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	t.Cleanup(withCleanEnv(t, nil))
	os.Setenv("ENV_FILE", writeEnvFile(t, "PORT=7070\nLOG_FORMAT=json\n"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "7070" {
		t.Errorf("Expected port 7070 from env file, got %s", cfg.Port)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("Expected json log format from env file, got %s", cfg.LogFormat)
	}
}

func TestLoadConfig_EnvironmentOverridesEnvFile(t *testing.T) {
	t.Cleanup(withCleanEnv(t, map[string]string{"PORT": "6060"}))
	os.Setenv("ENV_FILE", writeEnvFile(t, "PORT=7070\n"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "6060" {
		t.Errorf("Expected environment port 6060, got %s", cfg.Port)
	}
}

func TestGetEnvInt_IgnoresGarbage(t *testing.T) {
	t.Cleanup(withCleanEnv(t, map[string]string{"CACHE_TTL": "soon"}))

	if got := getEnvInt("CACHE_TTL", 42); got != 42 {
		t.Errorf("Expected fallback 42, got %d", got)
	}
}
