package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want \":8080\"", cfg.ListenPort)
	}
	if cfg.ReloadInterval != time.Hour {
		t.Errorf("ReloadInterval = %v, want 1h", cfg.ReloadInterval)
	}
	if cfg.ArchiveRetention != 180*24*time.Hour {
		t.Errorf("ArchiveRetention = %v, want 180 days", cfg.ArchiveRetention)
	}
	if cfg.ArchiveEnabled() {
		t.Error("ArchiveEnabled() = true with no HUB_REDIS_ADDR set")
	}
	if cfg.SuggestBurst != 5 {
		t.Errorf("SuggestBurst = %d, want 5", cfg.SuggestBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HUB_LISTEN_PORT", ":9090")
	t.Setenv("HUB_RELOAD_SOURCE_INTERVAL", "15m")
	t.Setenv("HUB_REDIS_ADDR", "localhost:6379")
	t.Setenv("HUB_ALLOWED_CIDRS", "10.0.0.0/8, '192.168.1.1'")
	t.Setenv("HUB_TRUST_PROXY", "false")

	cfg := Load()

	if cfg.ListenPort != ":9090" {
		t.Errorf("ListenPort = %q, want \":9090\"", cfg.ListenPort)
	}
	if cfg.ReloadInterval != 15*time.Minute {
		t.Errorf("ReloadInterval = %v, want 15m", cfg.ReloadInterval)
	}
	if !cfg.ArchiveEnabled() {
		t.Error("ArchiveEnabled() = false with HUB_REDIS_ADDR set")
	}
	if len(cfg.AllowedCIDRS) != 2 || cfg.AllowedCIDRS[1] != "192.168.1.1" {
		t.Errorf("AllowedCIDRS = %v, want the quoted entry trimmed", cfg.AllowedCIDRS)
	}
	if cfg.TrustProxy {
		t.Error("TrustProxy = true, want override to false")
	}
}

func TestLoadPanicsWhenRequiredPasswordMissing(t *testing.T) {
	t.Setenv("HUB_REDIS_PASSWORD_REQUIRED", "true")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should have panicked on missing required password")
		}
	}()
	Load()
}

func TestMustDurationFallsBackOnGarbage(t *testing.T) {
	t.Setenv("TEST_HUB_DURATION", "not-a-duration")

	if got := mustDuration("TEST_HUB_DURATION", 42*time.Second); got != 42*time.Second {
		t.Errorf("mustDuration() = %v, want the default on unparseable input", got)
	}
}
