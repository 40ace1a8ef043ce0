package config

// DifficultyManager calculates dynamic game parameters based on score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Reinforcement returns the obstacle speed multiplier for the given score:
// 1 + score/step, or 1 when progression is disabled.
func (d *DifficultyManager) Reinforcement(score int) float64 {
	if !d.cfg.Enabled || d.cfg.ReinforcementStep <= 0 || score <= 0 {
		return 1.0
	}
	return 1.0 + float64(score)/float64(d.cfg.ReinforcementStep)
}

// DesiredObstacles returns how many obstacles should be alive at once:
// min(maxCount, max(1, score/step)). Never decreases as score grows.
func (d *DifficultyManager) DesiredObstacles(score, maxCount int) int {
	if maxCount < 1 {
		maxCount = 1
	}
	if !d.cfg.Enabled || d.cfg.ObstacleStep <= 0 || score <= 0 {
		return 1
	}
	n := score / d.cfg.ObstacleStep
	if n < 1 {
		n = 1
	}
	if n > maxCount {
		n = maxCount
	}
	return n
}
