package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParseGame_Defaults(t *testing.T) {
	unsetEnv(t, "APP_PORT", "VALIDATION_URL", "VALIDATION_TIMEOUT", "WORKER_POOL_SIZE")

	cfg, err := ParseGame()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.AppPort != "50051" || cfg.ValidationURL != "http://localhost:50052" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.ValidationTimeout != 5*time.Second || cfg.WorkerPoolSize != 10 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestParseGame_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "6000")
	t.Setenv("VALIDATION_URL", "http://validation:6001")
	t.Setenv("VALIDATION_TIMEOUT", "750ms")
	t.Setenv("WORKER_POOL_SIZE", "0")
	t.Setenv("REDIS_DB", "3")

	cfg, err := ParseGame()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.AppPort != "6000" || cfg.ValidationURL != "http://validation:6001" || cfg.RedisDB != 3 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ValidationTimeout != 750*time.Millisecond {
		t.Fatalf("expected 750ms, got %s", cfg.ValidationTimeout)
	}
	if cfg.WorkerPoolSize != 10 {
		t.Fatalf("non-positive pool size must fall back to 10, got %d", cfg.WorkerPoolSize)
	}
}

func TestParseGame_Invalid(t *testing.T) {
	t.Setenv("VALIDATION_TIMEOUT", "soon")
	if _, err := ParseGame(); err == nil || !strings.HasPrefix(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}

	t.Setenv("VALIDATION_TIMEOUT", "-1s")
	if _, err := ParseGame(); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
}

func TestParseValidation_Defaults(t *testing.T) {
	unsetEnv(t, "APP_PORT")
	cfg, err := ParseValidation()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.AppPort != "50052" {
		t.Fatalf("expected port 50052, got %s", cfg.AppPort)
	}
}
