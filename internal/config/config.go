// Package config provides YAML-based runtime configuration for riverrun:
// scene design location, simulation timing, and the glyph theme.
package config

import "fmt"

// Config is the full riverrun configuration.
type Config struct {
	Scene  SceneConfig  `yaml:"scene"`
	Timing TimingConfig `yaml:"timing"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// SceneConfig points at the terrain design source.
type SceneConfig struct {
	// Design is the path to a scene design file. Empty means: use
	// ./scene.design if present, otherwise the embedded default design.
	Design string `yaml:"design"`
}

// TimingConfig holds the simulation cadences in milliseconds.
// One tick is one projectile motion step; the scroll frame advances every
// FrameMs/ProjectileMs ticks.
type TimingConfig struct {
	FrameMs      int `yaml:"frame_ms"`      // scroll cadence (default 100)
	ProjectileMs int `yaml:"projectile_ms"` // projectile step cadence (default 20)
}

// ThemeConfig holds the glyphs drawn for each game element.
// Each value must be exactly one rune.
type ThemeConfig struct {
	Land       string `yaml:"land"`
	River      string `yaml:"river"`
	Enemy      string `yaml:"enemy"`
	Player     string `yaml:"player"`
	Projectile string `yaml:"projectile"`
}

// TickRate returns the simulation tick rate in ticks per second.
// A zero or negative ProjectileMs falls back to the default cadence.
func (t TimingConfig) TickRate() int {
	if t.ProjectileMs <= 0 {
		return 1000 / Default().Timing.ProjectileMs
	}
	return 1000 / t.ProjectileMs
}

// FrameTicks returns how many ticks make up one scroll frame.
// A zero or negative ProjectileMs falls back to the default cadence.
func (t TimingConfig) FrameTicks() int {
	if t.ProjectileMs <= 0 {
		d := Default().Timing
		return d.FrameMs / d.ProjectileMs
	}
	return t.FrameMs / t.ProjectileMs
}

// Validate checks the theme for glyphs the renderer cannot draw.
func (t ThemeConfig) Validate() error {
	for name, glyph := range map[string]string{
		"land":       t.Land,
		"river":      t.River,
		"enemy":      t.Enemy,
		"player":     t.Player,
		"projectile": t.Projectile,
	} {
		if n := len([]rune(glyph)); n != 1 {
			return fmt.Errorf("config: theme.%s must be exactly one rune, got %q", name, glyph)
		}
	}
	return nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Timing.ProjectileMs <= 0 {
		return fmt.Errorf("config: timing.projectile_ms must be positive, got %d", c.Timing.ProjectileMs)
	}
	if c.Timing.FrameMs < c.Timing.ProjectileMs {
		return fmt.Errorf("config: timing.frame_ms (%d) must be >= timing.projectile_ms (%d)",
			c.Timing.FrameMs, c.Timing.ProjectileMs)
	}
	return c.Theme.Validate()
}

// Rune returns the single rune of a theme glyph string.
// Call only on a validated config.
func Rune(glyph string) rune {
	return []rune(glyph)[0]
}
