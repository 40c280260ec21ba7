// Package config provides YAML-based game configuration loading and
// difficulty management for the brick game.
package config

// BricksConfig contains all configuration for the brick game. Sizes and
// speeds are in level pixels.
type BricksConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WindowConfig defines the size of the playing field.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and speed.
type PaddleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`  // pixels per tick while a direction is held
	Bottom int `yaml:"bottom"` // gap between paddle and window bottom
}

// BallConfig defines the ball size and speed. A zero velocity launches the
// ball up and to the right at Speed.
type BallConfig struct {
	Size      int `yaml:"size"`
	Speed     int `yaml:"speed"`
	VelocityX int `yaml:"velocity_x"`
	VelocityY int `yaml:"velocity_y"`
}

// GameplayConfig defines campaign rules and pacing.
type GameplayConfig struct {
	Lives      int    `yaml:"lives"`
	TickRate   int    `yaml:"tick_rate"`   // simulation ticks per second
	ReadyTicks int    `yaml:"ready_ticks"` // countdown before the ball launches
	KeyHoldMs  int    `yaml:"key_hold_ms"` // how long a key press counts as held
	LevelsDir  string `yaml:"levels_dir"`  // empty uses the built-in levels
	Resources  string `yaml:"resources"`   // root for texture and sound paths
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases through the campaign.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to ball speed at max difficulty
	PaddleReduction int     `yaml:"paddle_reduction"` // pixels removed from the paddle at max difficulty
}

// Progression types.
const (
	ProgressionLevel = "level"
	ProgressionNone  = "none"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, bool) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

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
