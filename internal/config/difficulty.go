package config

import "math"

// DifficultyManager calculates per-level game parameters. Difficulty only
// changes between levels; within a level the ball speed is fixed.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
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
	return d.cfg.Enabled && d.cfg.Progression.Type == ProgressionLevel
}

// Level returns the difficulty (0.0 to 1.0) for the campaign level at index.
func (d *DifficultyManager) Level(levelIndex int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(levelIndex)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// BallSpeed returns the ball speed for the level at index.
func (d *DifficultyManager) BallSpeed(base, levelIndex int) int {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(levelIndex)
	// Speed increases from base to base * (1 + speedMultiplier)
	return int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
}

// PaddleWidth returns the paddle width for the level at index.
func (d *DifficultyManager) PaddleWidth(base, levelIndex int) int {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(levelIndex)
	result := base - int(level*float64(d.cfg.Scaling.PaddleReduction))
	if minimum := base / 2; result < minimum { // Keep the paddle playable
		result = minimum
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
