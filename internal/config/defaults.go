package config

import (
	_ "embed"
)

//go:embed defaults/riverrun.yaml
var defaultYAML []byte

// Default returns the built-in riverrun configuration.
func Default() Config {
	return Config{
		Scene: SceneConfig{
			Design: "",
		},
		Timing: TimingConfig{
			FrameMs:      100,
			ProjectileMs: 20,
		},
		Theme: ThemeConfig{
			Land:       "█",
			River:      "█",
			Enemy:      "✈",
			Player:     "▲",
			Projectile: "|",
		},
	}
}
