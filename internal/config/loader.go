package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bricks/internal/engine"
)

// Config file name and the sources Load reports.
const (
	FileName       = "bricks.yaml"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.bricks/configs/bricks.yaml -> ./configs/bricks.yaml -> embedded default.
// Files are applied on top of the defaults, so they may set only some keys.
// The second result names the source that was used.
func Load(customPath string) (BricksConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BricksConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BricksConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBricksYAML)
	if err != nil {
		return DefaultBricksConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func parse(data []byte) (BricksConfig, error) {
	cfg := DefaultBricksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BricksConfig{}, err
	}
	return cfg, nil
}

// HomeDir returns ~/.bricks, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricks")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BricksConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 130
		cfg.Ball.Speed = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 8
	}
}

// Validate reports every setting that would make the game unplayable.
func (c BricksConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Paddle.Width > 0 && c.Paddle.Width <= c.Window.Width, "paddle.width %d must be in (0, %d]", c.Paddle.Width, c.Window.Width)
	check(c.Paddle.Height > 0, "paddle.height must be positive, got %d", c.Paddle.Height)
	check(c.Paddle.Speed > 0, "paddle.speed must be positive, got %d", c.Paddle.Speed)
	check(c.Paddle.Bottom >= 0, "paddle.bottom must not be negative, got %d", c.Paddle.Bottom)
	check(c.Paddle.Bottom+c.Paddle.Height+2*c.Ball.Size < c.Window.Height-engine.TopMargin,
		"paddle and ball do not fit a %dpx high window", c.Window.Height)
	check(c.Ball.Size > 0 && c.Ball.Size < c.Window.Width, "ball.size %d must be in (0, %d)", c.Ball.Size, c.Window.Width)
	check(c.Ball.Speed > 0, "ball.speed must be positive, got %d", c.Ball.Speed)
	check(c.Gameplay.Lives > 0, "gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Gameplay.TickRate >= 1 && c.Gameplay.TickRate <= 240, "gameplay.tick_rate %d must be in [1, 240]", c.Gameplay.TickRate)
	check(c.Gameplay.ReadyTicks >= 0, "gameplay.ready_ticks must not be negative, got %d", c.Gameplay.ReadyTicks)
	check(c.Gameplay.KeyHoldMs >= 0, "gameplay.key_hold_ms must not be negative, got %d", c.Gameplay.KeyHoldMs)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %.2f must be in [0, 1]", c.Audio.Volume)
	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1, "difficulty.initial_level %.2f must be in [0, 1]", c.Difficulty.InitialLevel)

	switch c.Difficulty.Progression.Type {
	case ProgressionLevel, ProgressionNone, "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q must be %q or %q",
			c.Difficulty.Progression.Type, ProgressionLevel, ProgressionNone))
	}

	return errors.Join(errs...)
}

// Settings returns the engine settings for the level at index, with the
// difficulty progression applied.
func (c BricksConfig) Settings(levelIndex int) engine.Settings {
	dm := NewDifficultyManager(c.Difficulty)

	speed := dm.BallSpeed(c.Ball.Speed, levelIndex)
	velocity := engine.Velocity{X: c.Ball.VelocityX, Y: c.Ball.VelocityY}
	if c.Ball.Speed > 0 && speed != c.Ball.Speed {
		ratio := float64(speed) / float64(c.Ball.Speed)
		velocity.X = int(math.Round(float64(velocity.X) * ratio))
		velocity.Y = int(math.Round(float64(velocity.Y) * ratio))
	}

	return engine.Settings{
		WindowW:      c.Window.Width,
		WindowH:      c.Window.Height,
		PaddleW:      dm.PaddleWidth(c.Paddle.Width, levelIndex),
		PaddleH:      c.Paddle.Height,
		PaddleSpeed:  c.Paddle.Speed,
		PaddleBottom: c.Paddle.Bottom,
		BallSize:     c.Ball.Size,
		BallSpeed:    speed,
		BallVelocity: velocity,
	}
}
