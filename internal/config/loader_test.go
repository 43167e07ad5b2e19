package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // Ignore any real user config

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Timing.FrameMs != 100 || cfg.Timing.ProjectileMs != 20 {
		t.Errorf("Default timing = %+v, expected 100/20", cfg.Timing)
	}
	if cfg.Timing.FrameTicks() != 5 {
		t.Errorf("FrameTicks() = %d, expected 5", cfg.Timing.FrameTicks())
	}
	if cfg.Timing.TickRate() != 50 {
		t.Errorf("TickRate() = %d, expected 50", cfg.Timing.TickRate())
	}
}

func TestLoadCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")

	content := `
scene:
  design: "my.design"
timing:
  frame_ms: 200
  projectile_ms: 50
theme:
  land: "#"
  river: "~"
  enemy: "V"
  player: "^"
  projectile: "!"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}

	if cfg.Scene.Design != "my.design" {
		t.Errorf("Scene.Design = %q, expected my.design", cfg.Scene.Design)
	}
	if cfg.Timing.FrameTicks() != 4 {
		t.Errorf("FrameTicks() = %d, expected 4", cfg.Timing.FrameTicks())
	}
	if Rune(cfg.Theme.Enemy) != 'V' {
		t.Errorf("enemy glyph = %q, expected V", cfg.Theme.Enemy)
	}
}

func TestLoadMissingCustomFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with missing custom path should fail")
	}
}

func TestTimingZeroValueFallsBack(t *testing.T) {
	var timing TimingConfig

	if got := timing.TickRate(); got != 50 {
		t.Errorf("zero-value TickRate() = %d, expected default 50", got)
	}
	if got := timing.FrameTicks(); got != 5 {
		t.Errorf("zero-value FrameTicks() = %d, expected default 5", got)
	}

	timing.ProjectileMs = -10
	if got := timing.TickRate(); got != 50 {
		t.Errorf("negative TickRate() = %d, expected default 50", got)
	}
}

func TestValidateRejectsBadTiming(t *testing.T) {
	cfg := Default()
	cfg.Timing.ProjectileMs = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject zero projectile_ms")
	}

	cfg = Default()
	cfg.Timing.FrameMs = 10 // below projectile_ms
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject frame_ms < projectile_ms")
	}
}

func TestValidateRejectsBadGlyph(t *testing.T) {
	cfg := Default()
	cfg.Theme.Player = "AB"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject multi-rune glyphs")
	}

	cfg.Theme.Player = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject empty glyphs")
	}
}
