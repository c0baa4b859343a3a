package config

import (
	_ "embed"
)

//go:embed defaults/bird.yaml
var defaultBirdYAML []byte

// DefaultBirdConfig returns the built-in configuration.
func DefaultBirdConfig() BirdConfig {
	return BirdConfig{
		Screen: ScreenConfig{
			Width:  80,
			Height: 50,
		},
		Physics: PhysicsConfig{
			Gravity:     0.2,
			MaxVelocity: 2.0,
			FlapImpulse: 2.0,
			StepMs:      30,
			Advance:     1,
		},
		Player: PlayerConfig{
			StartX: 5,
			StartY: 25,
		},
		Walls: WallsConfig{
			GapCenterMin: 10,
			GapCenterMax: 40,
			BaseGap:      20,
			MinGap:       4,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
		},
	}
}
