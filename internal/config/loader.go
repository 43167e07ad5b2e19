package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the riverrun configuration.
// Search order: customPath -> ~/.riverrun/config.yaml -> ./riverrun.yaml ->
// embedded default. A customPath that cannot be read or parsed is an error;
// the fallback locations are skipped silently when unusable.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, err
		}
		return cfg, cfg.Validate()
	}

	if userPath := userConfigPath(); userPath != "" {
		if cfg, err := loadFile(userPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile("riverrun.yaml"); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// loadFile reads and parses one YAML config file.
func loadFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".riverrun", "config.yaml")
}
