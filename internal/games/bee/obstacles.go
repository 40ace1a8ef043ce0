package bee

import (
	"math/rand"

	"github.com/vovakirdan/beelazy/internal/config"
	"github.com/vovakirdan/beelazy/internal/core"
)

// Obstacle flies from the right edge to the left at a speed fixed at spawn.
type Obstacle struct {
	X, Y     float64
	W, H     float64
	Velocity float64
	Credited bool // Whether the bee has already scored for passing it
}

// Box returns the collision box of the obstacle.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// ObstacleManager handles spawning, movement, scoring and removal of obstacles.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	cfg        config.BeeObstacles
	world      config.BeeWorld
	difficulty *config.DifficultyManager
}

// NewObstacleManager creates an empty manager drawing from rng.
func NewObstacleManager(rng *rand.Rand, cfg config.BeeConfig, diff *config.DifficultyManager) *ObstacleManager {
	return &ObstacleManager{
		obstacles:  make([]Obstacle, 0, cfg.Obstacles.MaxCount+1),
		rng:        rng,
		cfg:        cfg.Obstacles,
		world:      cfg.World,
		difficulty: diff,
	}
}

// Reset removes all obstacles and switches to a new RNG.
func (m *ObstacleManager) Reset(rng *rand.Rand) {
	m.obstacles = m.obstacles[:0]
	m.rng = rng
}

// Obstacles returns the live obstacles. The slice is owned by the manager.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// Len returns the number of live obstacles.
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}

// Spawn adds an obstacle at a random height.
func (m *ObstacleManager) Spawn(score int) {
	size := m.pickSize()
	m.add(size, m.randomY(), score)
}

// SpawnAt adds an obstacle at height y.
func (m *ObstacleManager) SpawnAt(score int, y float64) {
	size := m.pickSize()
	m.add(size, y, score)
}

func (m *ObstacleManager) pickSize() [2]float64 {
	return m.cfg.Sizes[m.rng.Intn(len(m.cfg.Sizes))]
}

// randomY returns an integer height in [margin, H - margin].
func (m *ObstacleManager) randomY() float64 {
	return randomHeight(m.rng, m.world.Height, m.cfg.SpawnMargin)
}

func (m *ObstacleManager) add(size [2]float64, y float64, score int) {
	base := m.cfg.MinSpeed + m.rng.Intn(m.cfg.MaxSpeed-m.cfg.MinSpeed+1)
	m.obstacles = append(m.obstacles, Obstacle{
		X:        m.world.Width,
		Y:        y,
		W:        size[0],
		H:        size[1],
		Velocity: m.difficulty.Reinforcement(score) * float64(base),
	})
}

// Update moves every obstacle left, credits the ones the bee has passed and
// drops the ones that left the screen.
// Returns how many obstacles were credited this tick and whether any live
// obstacle overlaps hitbox.
func (m *ObstacleManager) Update(beeX float64, hitbox core.Box) (credited int, hit bool) {
	for i := range m.obstacles {
		o := &m.obstacles[i]
		o.X -= o.Velocity

		if !o.Credited && beeX > o.X+o.W {
			o.Credited = true
			credited++
		}
		if hitbox.Overlaps(o.Box()) {
			hit = true
		}
	}

	// Remove obstacles that have moved off the left side
	live := m.obstacles[:0]
	for _, o := range m.obstacles {
		if o.X >= -o.W {
			live = append(live, o)
		}
	}
	m.obstacles = live

	return credited, hit
}

// randomHeight draws an integer height in [margin, h - margin], collapsing to
// margin on windows too small for the range.
func randomHeight(rng *rand.Rand, h, margin float64) float64 {
	span := int(h - 2*margin)
	if span < 0 {
		span = 0
	}
	return margin + float64(rng.Intn(span+1))
}
