// Package config provides YAML-based game configuration loading and
// difficulty management for the bee game.
package config

import (
	"errors"
	"fmt"
)

// BeeConfig contains all configuration for the bee game.
// Distances are world units (y-up, origin at the bottom-left corner) and
// speeds are world units per tick.
type BeeConfig struct {
	World      BeeWorld         `yaml:"world"`
	Physics    BeePhysics       `yaml:"physics"`
	Player     BeePlayer        `yaml:"player"`
	Obstacles  BeeObstacles     `yaml:"obstacles"`
	PowerUps   BeePowerUps      `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scores     BeeScores        `yaml:"scores"`
}

// BeeWorld defines the size of the simulated window.
type BeeWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BeePhysics defines the vertical motion constants.
type BeePhysics struct {
	Gravity float64 `yaml:"gravity"` // Subtracted from vy each free-fall tick
	Lift    float64 `yaml:"lift"`    // vy while flying
}

// BeePlayer defines the bee itself.
type BeePlayer struct {
	StartX       float64 `yaml:"start_x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HitboxShrink float64 `yaml:"hitbox_shrink"` // Pulled in from the right, bottom and top edges
	HistorySize  int     `yaml:"history_size"`  // Samples in the resting detector
	RestEpsilon  float64 `yaml:"rest_epsilon"`  // Max y drift still counted as resting
}

// BeeObstacles defines obstacle spawning parameters.
type BeeObstacles struct {
	Sizes       [][2]float64 `yaml:"sizes"`        // [width, height] presets
	MinSpeed    int          `yaml:"min_speed"`    // Inclusive bounds of the random base speed
	MaxSpeed    int          `yaml:"max_speed"`    //
	SpawnMargin float64      `yaml:"spawn_margin"` // Distance kept from the top and bottom when spawning
	MaxCount    int          `yaml:"max_count"`    // Upper bound on live obstacles
}

// BeePowerUps defines power-up spawning and the invincibility effect.
type BeePowerUps struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Speed             float64 `yaml:"speed"`
	SpawnOdds         int     `yaml:"spawn_odds"` // One spawn in SpawnOdds+1 ticks on average
	MaxActive         int     `yaml:"max_active"`
	InvincibleSeconds float64 `yaml:"invincible_seconds"`
}

// BeeScores defines the high-score list.
type BeeScores struct {
	Keep    int `yaml:"keep"`    // Entries persisted
	Display int `yaml:"display"` // Entries shown on the game over screen
}

// DifficultyConfig defines how the game hardens as the score grows.
type DifficultyConfig struct {
	Enabled           bool `yaml:"enabled"`
	ReinforcementStep int  `yaml:"reinforcement_step"` // Score per +1.0 speed multiplier
	ObstacleStep      int  `yaml:"obstacle_step"`      // Score per extra live obstacle
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty or unknown values
// return "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the config can drive a simulation.
func (c BeeConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.HistorySize < 1:
		return fmt.Errorf("%w: player.history_size must be at least 1", ErrInvalid)
	case len(c.Obstacles.Sizes) == 0:
		return fmt.Errorf("%w: obstacles.sizes must not be empty", ErrInvalid)
	case c.Obstacles.MinSpeed < 0 || c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed:
		return fmt.Errorf("%w: obstacle speed range [%d, %d]", ErrInvalid, c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed)
	case c.Obstacles.MaxCount < 1:
		return fmt.Errorf("%w: obstacles.max_count must be at least 1", ErrInvalid)
	case c.PowerUps.SpawnOdds < 0:
		return fmt.Errorf("%w: powerups.spawn_odds must not be negative", ErrInvalid)
	case c.Scores.Keep < 1:
		return fmt.Errorf("%w: scores.keep must be at least 1", ErrInvalid)
	}
	for i, s := range c.Obstacles.Sizes {
		if s[0] <= 0 || s[1] <= 0 {
			return fmt.Errorf("%w: obstacles.sizes[%d] must be positive", ErrInvalid, i)
		}
	}
	return nil
}
