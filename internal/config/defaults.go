package config

import (
	_ "embed"
)

//go:embed defaults/bee.yaml
var defaultBeeYAML []byte

// DefaultBeeConfig returns the default bee game configuration.
// Kept in sync with defaults/bee.yaml.
func DefaultBeeConfig() BeeConfig {
	return BeeConfig{
		World: BeeWorld{
			Width:  1280,
			Height: 720,
		},
		Physics: BeePhysics{
			Gravity: 0.5,
			Lift:    10,
		},
		Player: BeePlayer{
			StartX:       200,
			Width:        260,
			Height:       260,
			HitboxShrink: 100,
			HistorySize:  5,
			RestEpsilon:  5,
		},
		Obstacles: BeeObstacles{
			Sizes:       [][2]float64{{50, 50}, {50, 100}, {50, 150}},
			MinSpeed:    10,
			MaxSpeed:    20,
			SpawnMargin: 50,
			MaxCount:    5,
		},
		PowerUps: BeePowerUps{
			Width:             50,
			Height:            50,
			Speed:             7,
			SpawnOdds:         1400,
			MaxActive:         1,
			InvincibleSeconds: 4,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			ReinforcementStep: 100,
			ObstacleStep:      30,
		},
		Scores: BeeScores{
			Keep:    1000,
			Display: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBeeYAML
}
