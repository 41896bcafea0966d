package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.WindowWidth != 0 || cfg.WindowHeight != 0 {
		t.Errorf("expected unset window size, got %fx%f", cfg.WindowWidth, cfg.WindowHeight)
	}
}

func TestNormalizeResetsInvalidValues(t *testing.T) {
	cfg := AppConfig{Theme: "neon", WindowWidth: -1, WindowHeight: 300}.Normalize()

	if cfg.Theme != "system" {
		t.Errorf("expected unknown theme to reset to system, got %s", cfg.Theme)
	}
	if cfg.WindowWidth != 0 || cfg.WindowHeight != 0 {
		t.Errorf("expected negative size to reset, got %fx%f", cfg.WindowWidth, cfg.WindowHeight)
	}
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	cfg := AppConfig{Theme: "dark", WindowWidth: 800, WindowHeight: 480}.Normalize()

	if cfg.Theme != "dark" {
		t.Errorf("expected theme=dark, got %s", cfg.Theme)
	}
	if cfg.WindowWidth != 800 || cfg.WindowHeight != 480 {
		t.Errorf("expected 800x480, got %fx%f", cfg.WindowWidth, cfg.WindowHeight)
	}
}
