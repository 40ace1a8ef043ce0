package bee

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/beelazy/internal/config"
	"github.com/vovakirdan/beelazy/internal/core"
)

// farAway is a hitbox that never touches anything on screen.
var farAway = core.NewBox(0, 5000, 1, 1)

func newTestObstacles(seed int64) *ObstacleManager {
	cfg := config.DefaultBeeConfig()
	return NewObstacleManager(rand.New(rand.NewSource(seed)), cfg, config.NewDifficultyManager(cfg.Difficulty))
}

func TestObstacleSpawn(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		m := newTestObstacles(seed)
		m.Spawn(0)

		o := m.Obstacles()[0]
		if o.X != 1280 {
			t.Fatalf("seed %d: spawn X = %f, expected 1280", seed, o.X)
		}
		if o.Y < 50 || o.Y > 670 || o.Y != math.Trunc(o.Y) {
			t.Fatalf("seed %d: spawn Y = %f, expected integer in [50, 670]", seed, o.Y)
		}
		if o.W != 50 || (o.H != 50 && o.H != 100 && o.H != 150) {
			t.Fatalf("seed %d: size %fx%f not a preset", seed, o.W, o.H)
		}
		if o.Velocity < 10 || o.Velocity > 20 || o.Velocity != math.Trunc(o.Velocity) {
			t.Fatalf("seed %d: velocity %f, expected integer in [10, 20]", seed, o.Velocity)
		}
	}
}

func TestObstacleSpeedReinforcement(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		m := newTestObstacles(seed)
		m.Spawn(100)
		v := m.Obstacles()[0].Velocity
		if v < 20 || v > 40 || math.Mod(v, 2) != 0 {
			t.Fatalf("seed %d: velocity at score 100 = %f, expected 2*[10, 20]", seed, v)
		}
	}
}

func TestObstacleSpawnAt(t *testing.T) {
	m := newTestObstacles(1)
	m.SpawnAt(0, 123)
	if y := m.Obstacles()[0].Y; y != 123 {
		t.Errorf("SpawnAt Y = %f, expected 123", y)
	}
}

func TestObstacleCreditedOnce(t *testing.T) {
	m := newTestObstacles(1)
	m.obstacles = append(m.obstacles, Obstacle{X: 100, Y: 0, W: 50, H: 50, Velocity: 10})

	credited, hit := m.Update(200, farAway)
	if credited != 1 || hit {
		t.Fatalf("first pass: credited=%d hit=%v, expected 1 false", credited, hit)
	}
	for i := 0; i < 5; i++ {
		if credited, _ := m.Update(200, farAway); credited != 0 {
			t.Fatalf("obstacle credited again on tick %d", i+2)
		}
	}
}

func TestObstacleNotCreditedAtEdge(t *testing.T) {
	m := newTestObstacles(1)
	// After moving, right edge is exactly at the bee's x
	m.obstacles = append(m.obstacles, Obstacle{X: 160, Y: 0, W: 50, H: 50, Velocity: 10})
	if credited, _ := m.Update(200, farAway); credited != 0 {
		t.Error("obstacle whose right edge equals bee x must not be credited")
	}
}

func TestObstacleRemovedExactlyOnce(t *testing.T) {
	m := newTestObstacles(3)
	m.Spawn(0)
	o := m.Obstacles()[0]

	ticks := 0
	for m.Len() > 0 {
		m.Update(-1000, farAway)
		ticks++
		if m.Len() == 1 && m.Obstacles()[0].X < -o.W {
			t.Fatalf("obstacle still alive at X = %f", m.Obstacles()[0].X)
		}
		if ticks > 1000 {
			t.Fatal("obstacle never removed")
		}
	}

	// Leftmost surviving position is >= -W, so removal happens on the first
	// tick where 1280 - n*v < -W.
	want := int(math.Floor((1280+o.W)/o.Velocity)) + 1
	if ticks != want {
		t.Errorf("removed after %d ticks, expected %d (v=%f)", ticks, want, o.Velocity)
	}

	for i := 0; i < 10; i++ {
		m.Update(-1000, farAway)
	}
	if m.Len() != 0 {
		t.Error("no obstacle should reappear without a spawn")
	}
}

func TestObstacleCollision(t *testing.T) {
	m := newTestObstacles(1)
	m.obstacles = append(m.obstacles, Obstacle{X: 310, Y: 400, W: 50, H: 50, Velocity: 10})

	hitbox := core.NewBox(200, 360, 160, 160)
	if _, hit := m.Update(200, hitbox); !hit {
		t.Error("expected collision with obstacle inside the hitbox")
	}
}

func TestPowerUpSpawnCap(t *testing.T) {
	cfg := config.DefaultBeeConfig()
	cfg.PowerUps.SpawnOdds = 0
	m := NewPowerUpManager(rand.New(rand.NewSource(1)), cfg)

	if !m.MaybeSpawn() {
		t.Fatal("odds 0 should always spawn")
	}
	if m.MaybeSpawn() {
		t.Error("spawn must respect max_active")
	}
	p := m.PowerUps()[0]
	if p.X != 1280 || p.W != 50 || p.H != 50 || p.Velocity != 7 {
		t.Errorf("unexpected power-up %+v", p)
	}
}

func TestPowerUpCollectAndPrune(t *testing.T) {
	cfg := config.DefaultBeeConfig()
	m := NewPowerUpManager(rand.New(rand.NewSource(1)), cfg)

	hitbox := core.NewBox(200, 360, 160, 160)
	m.powerUps = []PowerUp{
		{X: 250, Y: 400, W: 50, H: 50, Velocity: 7},
		{X: -45, Y: 100, W: 50, H: 50, Velocity: 7},
		{X: 900, Y: 100, W: 50, H: 50, Velocity: 7},
	}

	if n := m.Update(hitbox); n != 1 {
		t.Errorf("collected %d, expected 1", n)
	}
	if len(m.PowerUps()) != 1 || m.PowerUps()[0].X != 893 {
		t.Errorf("expected only the far power-up to survive, got %+v", m.PowerUps())
	}
}
