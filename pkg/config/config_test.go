package config

import (
	"os"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	os.Setenv("APP_ENV", "test")
	os.Setenv("HTTP_ADDR", "127.0.0.1:8080")
	os.Setenv("SHUTDOWN_TIMEOUT", "1s")
	os.Setenv("LOG_LEVEL", "info")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("DATABASE_DSN", "user:pass@tcp(localhost:3306)/investrack_test?parseTime=True")
}

func TestLoadFromEnv(t *testing.T) {
	setRequiredEnv(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if c.HTTPAddr != "127.0.0.1:8080" {
		t.Fatalf("expected HTTP_ADDR binding, got %s", c.HTTPAddr)
	}
	if c.ShutdownTimeout != time.Second {
		t.Fatalf("expected 1s shutdown timeout, got %s", c.ShutdownTimeout)
	}
}

func TestRateLimitDefaults(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("RATE_LIMIT_ENABLED")
	os.Unsetenv("RATE_LIMIT_WINDOW")
	os.Unsetenv("RATE_LIMIT_MAX")

	c, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if c.RateLimitEnabled {
		t.Fatal("rate limiting should be disabled by default")
	}
	if c.RateLimitWindow != 15*time.Minute {
		t.Fatalf("expected 15m default window, got %s", c.RateLimitWindow)
	}
	if c.RateLimitMax != 100 {
		t.Fatalf("expected default max 100, got %d", c.RateLimitMax)
	}
}

func TestRateLimitOverride(t *testing.T) {
	setRequiredEnv(t)
	os.Setenv("RATE_LIMIT_ENABLED", "true")
	os.Setenv("RATE_LIMIT_WINDOW", "30s")
	os.Setenv("RATE_LIMIT_MAX", "5")
	defer func() {
		os.Unsetenv("RATE_LIMIT_ENABLED")
		os.Unsetenv("RATE_LIMIT_WINDOW")
		os.Unsetenv("RATE_LIMIT_MAX")
	}()

	c, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if !c.RateLimitEnabled || c.RateLimitWindow != 30*time.Second || c.RateLimitMax != 5 {
		t.Fatalf("rate limit env override not applied: %+v", c)
	}
}
