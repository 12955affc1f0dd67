package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score
// or the campaign level the player has reached.
func (d *DifficultyManager) Level(score int, mazeLevel int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "level":
		progress = float64(mazeLevel-1) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// PursuerSpeed returns the pursuer speed for the current difficulty level.
func (d *DifficultyManager) PursuerSpeed(baseSpeed float64, score int, mazeLevel int) float64 {
	level := d.Level(score, mazeLevel)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// PowerDuration returns the power pellet duration for the current difficulty level.
func (d *DifficultyManager) PowerDuration(baseSecs float64, score int, mazeLevel int) float64 {
	level := d.Level(score, mazeLevel)
	result := baseSecs - level*d.cfg.Scaling.PowerReduction
	if result < 1.0 { // Minimum useful power window
		result = 1.0
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
