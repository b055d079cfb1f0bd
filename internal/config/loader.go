package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const invadersFile = "invaders.yaml"

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseInvaders(data)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return InvadersConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(invadersFile); userCfgPath != "" {
		if cfg, ok := tryInvaders(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryInvaders(filepath.Join("configs", invadersFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseInvaders(defaultInvadersYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryInvaders reads an optional config file. Unreadable or invalid files are skipped.
func tryInvaders(path string) (InvadersConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvadersConfig{}, false
	}
	cfg, err := parseInvaders(data)
	if err != nil || cfg.Validate() != nil {
		return InvadersConfig{}, false
	}
	return cfg, true
}

func parseInvaders(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Cadence.MoveBase += 10
		cfg.Cadence.ShootBase += 20
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Cadence.MoveBase -= 10
		cfg.Cadence.ShootBase -= 20
	case DifficultyFixed:
		cfg.Cadence.MoveStep = 0
		cfg.Cadence.ShootStep = 0
	}
}
