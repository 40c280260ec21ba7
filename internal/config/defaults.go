package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricksConfig returns the default configuration. It matches the
// embedded defaults/bricks.yaml.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Window: WindowConfig{
			Width:  600,
			Height: 500,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 15,
			Speed:  8,
			Bottom: 20,
		},
		Ball: BallConfig{
			Size:  10,
			Speed: 6,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			TickRate:   60,
			ReadyTicks: 60,
			KeyHoldMs:  150,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionLevel,
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PaddleReduction: 30,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBricksYAML
}
