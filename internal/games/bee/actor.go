package bee

import (
	"github.com/vovakirdan/beelazy/internal/config"
	"github.com/vovakirdan/beelazy/internal/core"
)

// Bee is the player-controlled actor.
// Position is the bottom-left corner of its box in world units.
type Bee struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	Flying bool
	Moving bool

	touchX     float64 // Last drag sample
	touchValid bool    // Whether touchX holds a sample for this drag

	history *core.Ring[float64] // Recent y positions for the resting detector

	player  config.BeePlayer
	physics config.BeePhysics
	world   config.BeeWorld
}

// NewBee creates a bee at its start position.
func NewBee(cfg config.BeeConfig) *Bee {
	b := &Bee{
		player:  cfg.Player,
		physics: cfg.Physics,
		world:   cfg.World,
		history: core.NewRing[float64](cfg.Player.HistorySize),
	}
	b.Reset()
	return b
}

// Reset puts the bee back at its start position, at rest.
func (b *Bee) Reset() {
	b.X = b.player.StartX
	b.Y = b.world.Height / 2
	b.VX, b.VY = 0, 0
	b.W, b.H = b.player.Width, b.player.Height
	b.Flying = false
	b.Moving = false
	b.touchX = 0
	b.touchValid = false
	b.history.Reset()
}

// Fly makes the bee climb until Fall is called.
func (b *Bee) Fly() {
	b.Flying = true
}

// Fall releases all input: the bee drops under gravity.
func (b *Bee) Fall() {
	b.Flying = false
	b.Moving = false
	b.touchValid = false
}

// Move handles a drag sample at world x. The first sample of a drag only
// anchors it; later samples shift the bee by the distance dragged since the
// previous one, applied on the next Update.
func (b *Bee) Move(touchX float64) {
	b.Moving = true
	if !b.touchValid {
		b.touchX = touchX
		b.touchValid = true
		return
	}
	b.VX += touchX - b.touchX
	b.touchX = touchX
}

// Nudge shifts the bee horizontally by dx on the next Update, as if dragged.
func (b *Bee) Nudge(dx float64) {
	b.Moving = true
	b.VX += dx
}

// Update advances the bee by one tick.
func (b *Bee) Update() {
	switch {
	case b.Flying:
		b.VY = b.physics.Lift
	case b.Moving:
		b.VY = 0
	default:
		b.VY -= b.physics.Gravity
	}

	b.X += b.VX
	b.VX = 0
	b.Y += b.VY

	b.X = core.ClampF(b.X, b.MinX(), b.MaxX())
	b.Y = core.ClampF(b.Y, b.MinY(), b.MaxY())

	b.history.Push(b.Y)
	if b.Resting() {
		b.Fall()
	}
}

// Resting reports whether the last HistorySize positions all lie within
// RestEpsilon of the oldest one.
func (b *Bee) Resting() bool {
	if !b.history.Full() {
		return false
	}
	oldest := b.history.At(0)
	for i := 1; i < b.history.Len(); i++ {
		if core.AbsF(b.history.At(i)-oldest) > b.player.RestEpsilon {
			return false
		}
	}
	return true
}

// MinY is the floor: the bee is fully below the window.
func (b *Bee) MinY() float64 { return -b.H }

// MaxY keeps at least half the bee inside the top of the window.
func (b *Bee) MaxY() float64 { return b.world.Height - b.H/2 }

// MinX keeps at least half the bee inside the left edge.
func (b *Bee) MinX() float64 { return -b.W / 2 }

// MaxX keeps at least half the bee inside the right edge.
func (b *Bee) MaxX() float64 { return b.world.Width - b.W/2 }

// Box returns the full sprite box.
func (b *Bee) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Hitbox returns the visible part of the sprite used for collisions: the
// sprite box pulled in by HitboxShrink on the right, bottom and top edges.
func (b *Bee) Hitbox() core.Box {
	s := b.player.HitboxShrink
	return b.Box().Inset(0, s, s, s)
}

// CheckCollision reports whether other overlaps the bee's hitbox.
func (b *Bee) CheckCollision(other core.Box) bool {
	return b.Hitbox().Overlaps(other)
}
