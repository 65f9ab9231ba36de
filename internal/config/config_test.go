package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DatabaseDriver != "sqlite" {
		t.Errorf("DatabaseDriver = %q, want %q", cfg.DatabaseDriver, "sqlite")
	}
	if cfg.DatabaseDSN != "data/todoism.db" {
		t.Errorf("DatabaseDSN = %q, want %q", cfg.DatabaseDSN, "data/todoism.db")
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want %v", cfg.TokenTTL, time.Hour)
	}
	if cfg.ItemsPerPage != 20 {
		t.Errorf("ItemsPerPage = %d, want 20", cfg.ItemsPerPage)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.TrustProxyHeaders {
		t.Error("TrustProxyHeaders should default to false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_DRIVER", "MySQL")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("ITEMS_PER_PAGE", "2")
	t.Setenv("BASE_URL", "https://todo.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.DatabaseDriver != "mysql" {
		t.Errorf("DatabaseDriver = %q, want %q", cfg.DatabaseDriver, "mysql")
	}
	if cfg.DatabaseDSN != "root:password@tcp(127.0.0.1:3306)/todoism" {
		t.Errorf("DatabaseDSN = %q", cfg.DatabaseDSN)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("TokenTTL = %v, want 30m", cfg.TokenTTL)
	}
	if cfg.ItemsPerPage != 2 {
		t.Errorf("ItemsPerPage = %d, want 2", cfg.ItemsPerPage)
	}
	if cfg.BaseURL != "https://todo.example.com" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.BaseURL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if !cfg.TrustProxyHeaders {
		t.Error("TrustProxyHeaders = false, want true")
	}
}

func TestLoadRejectsUnitlessTTL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TOKEN_TTL", "3600")

	if _, err := Load(); !errors.Is(err, ErrInvalidTokenTTL) {
		t.Errorf("Load() error = %v, want %v", err, ErrInvalidTokenTTL)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Env:            "production",
		DatabaseDriver: "mysql",
		JWTSecret:      "real-secret",
		TokenTTL:       time.Hour,
		ItemsPerPage:   20,
		RateLimitRPS:   5,
		RateLimitBurst: 10,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: nil},
		{name: "dev secret in production", mutate: func(c *Config) { c.JWTSecret = devSecret }, wantErr: ErrProductionSecret},
		{name: "dev secret in development", mutate: func(c *Config) { c.Env = "development"; c.JWTSecret = devSecret }, wantErr: nil},
		{name: "zero page size", mutate: func(c *Config) { c.ItemsPerPage = 0 }, wantErr: ErrInvalidPageSize},
		{name: "negative ttl", mutate: func(c *Config) { c.TokenTTL = -time.Second }, wantErr: ErrInvalidTokenTTL},
		{name: "unitless ttl", mutate: func(c *Config) { c.TokenTTL = 3600 }, wantErr: ErrInvalidTokenTTL},
		{name: "one second ttl", mutate: func(c *Config) { c.TokenTTL = time.Second }, wantErr: nil},
		{name: "zero rate", mutate: func(c *Config) { c.RateLimitRPS = 0 }, wantErr: ErrInvalidRateLimit},
		{name: "negative burst", mutate: func(c *Config) { c.RateLimitBurst = -1 }, wantErr: ErrInvalidRateLimit},
		{name: "unknown driver", mutate: func(c *Config) { c.DatabaseDriver = "postgres" }, wantErr: ErrUnsupportedDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
