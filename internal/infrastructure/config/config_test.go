package config_test

import (
	"testing"
	"time"

	"github.com/iho/finbooks/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.StatementCacheTTL != 5*time.Minute {
		t.Fatalf("expected default statement cache TTL 5m, got %s", cfg.StatementCacheTTL)
	}

	if cfg.DriftTolerance != "100" {
		t.Fatalf("expected default drift tolerance 100, got %s", cfg.DriftTolerance)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("STATEMENT_CACHE_TTL", "30s")
	t.Setenv("DRIFT_TOLERANCE", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected database URL override, got %s", cfg.DatabaseURL)
	}
	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected redis URL override, got %s", cfg.RedisURL)
	}
	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}
	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}
	if cfg.StatementCacheTTL != 30*time.Second {
		t.Fatalf("expected statement cache TTL override, got %s", cfg.StatementCacheTTL)
	}
	if cfg.DriftTolerance != "0.5" {
		t.Fatalf("expected drift tolerance override, got %s", cfg.DriftTolerance)
	}
	if cfg.RateLimitBurst != 10 {
		t.Fatalf("expected rate limit burst override, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for malformed duration")
	}
}
