package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Load()
	if cfg.HTTPAddr != ":4000" {
		t.Errorf("HTTPAddr default: %s", cfg.HTTPAddr)
	}
	if cfg.TokenTTL != 7*24*time.Hour {
		t.Errorf("TokenTTL default: %v", cfg.TokenTTL)
	}
	if cfg.Env != "development" {
		t.Errorf("Env default: %s", cfg.Env)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("CORS_ORIGINS", "https://clinic.example")

	cfg := Load()
	if cfg.HTTPAddr != ":9000" {
		t.Errorf("HTTPAddr: %s", cfg.HTTPAddr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL: %v", cfg.TokenTTL)
	}
	if cfg.CORSOrigins != "https://clinic.example" {
		t.Errorf("CORSOrigins: %s", cfg.CORSOrigins)
	}
}

func TestBadDurationFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	if cfg := Load(); cfg.TokenTTL != 7*24*time.Hour {
		t.Errorf("expected fallback TTL, got %v", cfg.TokenTTL)
	}
}
