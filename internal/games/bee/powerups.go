package bee

import (
	"math/rand"

	"github.com/vovakirdan/beelazy/internal/config"
	"github.com/vovakirdan/beelazy/internal/core"
)

// PowerUp grants temporary invincibility when the bee touches it.
type PowerUp struct {
	X, Y     float64
	W, H     float64
	Velocity float64
}

// Box returns the collision box of the power-up.
func (p PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// PowerUpManager handles rare spawning and collection of power-ups.
type PowerUpManager struct {
	powerUps []PowerUp
	rng      *rand.Rand
	cfg      config.BeePowerUps
	world    config.BeeWorld
	margin   float64
}

// NewPowerUpManager creates an empty manager drawing from rng.
func NewPowerUpManager(rng *rand.Rand, cfg config.BeeConfig) *PowerUpManager {
	return &PowerUpManager{
		rng:    rng,
		cfg:    cfg.PowerUps,
		world:  cfg.World,
		margin: cfg.Obstacles.SpawnMargin,
	}
}

// Reset removes all power-ups and switches to a new RNG.
func (m *PowerUpManager) Reset(rng *rand.Rand) {
	m.powerUps = m.powerUps[:0]
	m.rng = rng
}

// PowerUps returns the live power-ups. The slice is owned by the manager.
func (m *PowerUpManager) PowerUps() []PowerUp {
	return m.powerUps
}

// MaybeSpawn rolls the spawn chance and adds a power-up at the right edge on
// success. The roll happens every tick, even when the cap is reached, so the
// random stream does not depend on how many power-ups are alive.
func (m *PowerUpManager) MaybeSpawn() bool {
	roll := m.rng.Intn(m.cfg.SpawnOdds + 1)
	if roll != 0 || len(m.powerUps) >= m.cfg.MaxActive {
		return false
	}
	m.powerUps = append(m.powerUps, PowerUp{
		X:        m.world.Width,
		Y:        randomHeight(m.rng, m.world.Height, m.margin),
		W:        m.cfg.Width,
		H:        m.cfg.Height,
		Velocity: m.cfg.Speed,
	})
	return true
}

// Update moves power-ups left, removes the ones touching hitbox and the ones
// that left the screen. Returns how many were collected.
func (m *PowerUpManager) Update(hitbox core.Box) int {
	collected := 0
	live := m.powerUps[:0]
	for _, p := range m.powerUps {
		p.X -= p.Velocity
		switch {
		case hitbox.Overlaps(p.Box()):
			collected++
		case p.X < -p.W:
		default:
			live = append(live, p)
		}
	}
	m.powerUps = live
	return collected
}
