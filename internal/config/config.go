// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// ChompConfig contains all configuration for the Chomp maze game.
type ChompConfig struct {
	Speeds     ChompSpeeds      `yaml:"speeds"`
	Rules      ChompRules       `yaml:"rules"`
	Scoring    ChompScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ChompSpeeds defines movement speeds in tiles per second.
type ChompSpeeds struct {
	Player               float64 `yaml:"player"`
	Pursuer              float64 `yaml:"pursuer"`
	FrightenedMultiplier float64 `yaml:"frightened_multiplier"`
}

// ChompRules defines gameplay rules for Chomp.
type ChompRules struct {
	Lives             int     `yaml:"lives"`
	PowerDurationSecs float64 `yaml:"power_duration_secs"`
}

// ChompScoring defines point values for Chomp.
type ChompScoring struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Capture     int `yaml:"capture"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "level", or "none"
	MaxAt int    `yaml:"max_at"` // Score/level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to pursuer speed at max difficulty
	PowerReduction  float64 `yaml:"power_reduction"`  // Seconds removed from power duration at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
