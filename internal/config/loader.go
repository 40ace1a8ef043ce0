package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppDirName is the per-user data directory under $HOME.
const AppDirName = ".beelazy"

// LoadBee loads the bee game configuration.
// Search order: customPath -> ~/.beelazy/configs/bee.yaml -> ./configs/bee.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. Errors are returned only for an explicit customPath; broken files
// on the search path are skipped.
func LoadBee(customPath string) (BeeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BeeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBee(data)
		if err != nil {
			return BeeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bee.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBee(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "bee.yaml")); err == nil {
		if cfg, err := parseBee(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBee(defaultBeeYAML)
	if err != nil {
		return DefaultBeeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBee decodes data over the defaults and validates the result.
func parseBee(data []byte) (BeeConfig, error) {
	cfg := DefaultBeeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BeeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BeeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDirName, "configs", filename)
}

// ApplyBeePreset modifies the config based on a difficulty preset.
func ApplyBeePreset(cfg *BeeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.ReinforcementStep = 150
		cfg.Difficulty.ObstacleStep = 45
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.ReinforcementStep = 100
		cfg.Difficulty.ObstacleStep = 30
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.ReinforcementStep = 60
		cfg.Difficulty.ObstacleStep = 20
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}
