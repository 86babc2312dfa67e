package config

import (
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Particles: 50, FPS: 60, SpringFrequency: 40, SpringDamping: 1}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LUMEN_PARTICLES", "120")
	t.Setenv("LUMEN_FPS", "30")
	t.Setenv("LUMEN_SEED", "99")
	t.Setenv("LUMEN_SPRING_DAMPING", "0.8")
	t.Setenv("LUMEN_DEBUG_LOG", "/tmp/lumen.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Particles != 120 || cfg.FPS != 30 || cfg.Seed != 99 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.SpringDamping != 0.8 || cfg.DebugLog != "/tmp/lumen.log" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	t.Setenv("LUMEN_FPS", "0")
	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	t.Setenv("LUMEN_PARTICLES", "many")
	_, err := Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalid) {
		t.Fatalf("expected a parse error, got validation error %v", err)
	}
}
