package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChomp loads Chomp configuration.
// Search order: customPath -> ~/.chomp/configs/chomp.yaml -> ./configs/chomp.yaml -> embedded default
func LoadChomp(customPath string) (ChompConfig, error) {
	var cfg ChompConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("chomp.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/chomp.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultChompYAML, &cfg); err != nil {
		return DefaultChompConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chomp", "configs", filename)
}

// ApplyChompPreset modifies the config based on a difficulty preset.
func ApplyChompPreset(cfg *ChompConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		cfg.Rules.PowerDurationSecs = 8.0
		cfg.Speeds.Pursuer = 5.0
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Rules.PowerDurationSecs = 4.0
		cfg.Speeds.Pursuer = 6.0
	}
}
