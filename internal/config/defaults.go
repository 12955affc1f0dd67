package config

import (
	_ "embed"
)

//go:embed defaults/chomp.yaml
var defaultChompYAML []byte

// DefaultChompConfig returns the default Chomp configuration.
func DefaultChompConfig() ChompConfig {
	return ChompConfig{
		Speeds: ChompSpeeds{
			Player:               6.0,
			Pursuer:              5.5,
			FrightenedMultiplier: 0.7,
		},
		Rules: ChompRules{
			Lives:             3,
			PowerDurationSecs: 6.0,
		},
		Scoring: ChompScoring{
			Pellet:      10,
			PowerPellet: 50,
			Capture:     200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.3,
				PowerReduction:  3.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chomp", "chomp_endless":
		return defaultChompYAML
	default:
		return nil
	}
}
