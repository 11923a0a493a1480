package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/CodeJamboree/action-builder/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Catalog.Source != config.SourceFile {
		t.Errorf("Catalog.Source = %q, want %q", cfg.Catalog.Source, config.SourceFile)
	}
	if cfg.Catalog.Path != "configs/catalog.yaml" {
		t.Errorf("Catalog.Path = %q, want \"configs/catalog.yaml\"", cfg.Catalog.Path)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Catalog.Source != config.SourceRemote {
		t.Errorf("Catalog.Source = %q, want %q", cfg.Catalog.Source, config.SourceRemote)
	}
	if cfg.Catalog.FanoutWorkers != 16 {
		t.Errorf("Catalog.FanoutWorkers = %d, want 16", cfg.Catalog.FanoutWorkers)
	}
	if cfg.Client.RateLimit.RequestsPerSecond != 10 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want 10", cfg.Client.RateLimit.RequestsPerSecond)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry = %+v, want enabled otlp", cfg.Telemetry)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Catalog.MaxBatch != 100 {
		t.Errorf("Catalog.MaxBatch = %d, want 100 (from base)", cfg.Catalog.MaxBatch)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "server:\n  port: 9999\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (profile)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (base)", cfg.Log.Level)
	}
	if cfg.Catalog.FanoutWorkers != 8 {
		t.Errorf("Catalog.FanoutWorkers = %d, want 8 (default)", cfg.Catalog.FanoutWorkers)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 30s (default)", cfg.Server.RequestTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_CATALOG_FANOUT_WORKERS", "3")
	t.Setenv("APP_CLIENT_RATE_LIMIT_BURST", "9")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Catalog.FanoutWorkers != 3 {
		t.Errorf("Catalog.FanoutWorkers = %d, want 3", cfg.Catalog.FanoutWorkers)
	}
	if cfg.Client.RateLimit.Burst != 9 {
		t.Errorf("Client.RateLimit.Burst = %d, want 9", cfg.Client.RateLimit.Burst)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	if _, err := config.Load("nonexistent"); err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestProfile(t *testing.T) {
	t.Setenv("APP_PROFILE", "")
	if got := config.Profile(); got != "local" {
		t.Errorf("Profile() = %q, want \"local\"", got)
	}

	t.Setenv("APP_PROFILE", "prod")
	if got := config.Profile(); got != "prod" {
		t.Errorf("Profile() = %q, want \"prod\"", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(*config.Config) {}},
		{name: "invalid port", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "invalid log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "unknown catalog source", mutate: func(c *config.Config) { c.Catalog.Source = "s3" }, wantErr: true},
		{name: "file source without path", mutate: func(c *config.Config) { c.Catalog.Path = "" }, wantErr: true},
		{name: "zero fanout workers", mutate: func(c *config.Config) { c.Catalog.FanoutWorkers = 0 }, wantErr: true},
		{
			name:   "file source ignores broken client",
			mutate: func(c *config.Config) { c.Client.BaseURL = "" },
		},
		{
			name: "remote source requires client base url",
			mutate: func(c *config.Config) {
				c.Catalog.Source = config.SourceRemote
				c.Client.BaseURL = ""
			},
			wantErr: true,
		},
		{
			name: "rate limit without burst",
			mutate: func(c *config.Config) {
				c.Catalog.Source = config.SourceRemote
				c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5}
			},
			wantErr: true,
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: config.CatalogConfig{
			Source:        config.SourceFile,
			Path:          "configs/catalog.yaml",
			FanoutWorkers: 8,
			MaxBatch:      100,
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Path:    "/catalog",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
