package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GENERATOR_CACHE_BACKEND", "")
	t.Setenv("STARMAP_ORIGIN_X", "")

	cfg := Load()

	if cfg.Generator.CacheBackend != CacheBackendMemory {
		t.Errorf("cache backend = %q, want %q", cfg.Generator.CacheBackend, CacheBackendMemory)
	}
	if cfg.Generator.CacheTTL != time.Hour {
		t.Errorf("cache ttl = %v, want 1h", cfg.Generator.CacheTTL)
	}
	if cfg.Generator.MaxRegionArea != 128*128 {
		t.Errorf("max region area = %d", cfg.Generator.MaxRegionArea)
	}
	if cfg.Viewer.OriginX != 0 || cfg.Viewer.ScrollStep != 1 {
		t.Errorf("viewer = %+v", cfg.Viewer)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GENERATOR_CACHE_TTL", "90s")
	t.Setenv("GENERATOR_CACHE_SIZE", "12")
	t.Setenv("STARMAP_ORIGIN_X", "-50")
	t.Setenv("STARMAP_ORIGIN_Y", "4294967295")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_SECOND", "2.5")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()

	if cfg.Generator.CacheTTL != 90*time.Second {
		t.Errorf("cache ttl = %v", cfg.Generator.CacheTTL)
	}
	if cfg.Generator.CacheSize != 12 {
		t.Errorf("cache size = %d", cfg.Generator.CacheSize)
	}
	if cfg.Viewer.OriginX != -50 || cfg.Viewer.OriginY != 4294967295 {
		t.Errorf("viewer origin = %d,%d", cfg.Viewer.OriginX, cfg.Viewer.OriginY)
	}
	if cfg.RateLimit.RequestsPerSecond != 2.5 {
		t.Errorf("requests per second = %v", cfg.RateLimit.RequestsPerSecond)
	}
	if !cfg.Logging.JSONFormat || !cfg.Auth.CookieSecure {
		t.Error("production should enable JSON logs and secure cookies")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "" }, "JWT_SECRET is required"},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, "at least 32"},
		{"unknown cache", func(c *Config) { c.Generator.CacheBackend = "disk" }, "unknown GENERATOR_CACHE_BACKEND"},
		{"redis cache without redis", func(c *Config) {
			c.Generator.CacheBackend = CacheBackendRedis
			c.Redis.Enabled = false
		}, "requires REDIS_ENABLED"},
		{"redis cache with redis", func(c *Config) {
			c.Generator.CacheBackend = CacheBackendRedis
			c.Redis.Enabled = true
		}, ""},
		{"zero region", func(c *Config) { c.Generator.MaxRegionArea = 0 }, "GENERATOR_MAX_REGION_AREA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			cfg.Auth.JWTSecret = testSecret
			cfg.Generator.CacheBackend = CacheBackendMemory
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
