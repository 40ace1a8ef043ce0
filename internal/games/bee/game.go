// Package bee implements Bee Lazy, a side-scrolling arcade game.
// The player keeps a bee airborne and dodges obstacles flying in from the
// right. Each obstacle the bee passes is worth one point.
package bee

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beelazy/internal/config"
	"github.com/vovakirdan/beelazy/internal/core"
	"github.com/vovakirdan/beelazy/internal/highscore"
)

// NudgeStep is how far a single left/right key press moves the bee, in
// world units.
const NudgeStep = 40

// Game is the bee game controller. It owns the actor, obstacles, power-ups
// and the score, and is driven one tick at a time through Step.
// A Game is not safe for concurrent use.
type Game struct {
	cfg        config.BeeConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	board      *highscore.Board
	logger     *log.Logger

	rng       *rand.Rand
	bee       *Bee
	obstacles *ObstacleManager
	powerUps  *PowerUpManager
	timers    Scheduler

	phase           core.Phase
	score           int
	paused          bool
	invincible      bool
	invincibleTimer int
	ticks           int
	runs            int
	finalScores     []int // Board as recorded by this run's game over
	events          []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the game configuration. The default is
// config.DefaultBeeConfig().
func WithConfig(cfg config.BeeConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithBoard sets the high-score board that finished runs are recorded on.
// Without a board scores are not persisted.
func WithBoard(b *highscore.Board) Option {
	return func(g *Game) { g.board = b }
}

// WithLogger sets the logger for run lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a new bee game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.DefaultBeeConfig()}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bee"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bee Lazy"
}

// Reset reseeds the game and returns it to the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	if g.bee == nil {
		g.bee = NewBee(g.cfg)
		g.obstacles = NewObstacleManager(g.rng, g.cfg, g.difficulty)
		g.powerUps = NewPowerUpManager(g.rng, g.cfg)
	}
	g.clearRun()
	g.phase = core.PhaseNotStarted
	g.runs = 0
}

// clearRun resets everything a run accumulates. The RNG stream continues so
// consecutive runs differ.
func (g *Game) clearRun() {
	g.bee.Reset()
	g.obstacles.Reset(g.rng)
	g.powerUps.Reset(g.rng)
	g.timers.Reset()
	g.score = 0
	g.paused = false
	g.invincible = false
	g.invincibleTimer = 0
	g.ticks = 0
	g.finalScores = nil
}

// Start begins a run from the start screen. It is a no-op while a run is in
// progress.
func (g *Game) Start() {
	if g.phase == core.PhaseRunning {
		return
	}
	g.clearRun()
	g.phase = core.PhaseRunning
	g.runs++
	g.logger.Debug("run started", "run", g.runs, "seed", g.runtime.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.phase {
	case core.PhaseNotStarted:
		if in.Has(core.ActionFly) || in.Has(core.ActionConfirm) {
			g.Start()
		}
		return g.result()
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.Start()
			g.emit(core.EventRestartRequested)
		}
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.ticks++
	g.applyInput(in)
	g.timers.Advance()

	g.bee.Update()

	// A press and release in the same frame is a tap: one tick of lift.
	if in.Has(core.ActionFly) && in.Has(core.ActionFall) {
		g.bee.Fall()
	}

	hitbox := g.bee.Hitbox()

	g.powerUps.MaybeSpawn()
	if n := g.powerUps.Update(hitbox); n > 0 {
		g.grantInvincibility()
	}

	desired := g.difficulty.DesiredObstacles(g.score, g.cfg.Obstacles.MaxCount)
	if g.obstacles.Len() < desired {
		if g.bee.Resting() {
			g.obstacles.SpawnAt(g.score, g.bee.Y)
		} else {
			g.obstacles.Spawn(g.score)
		}
	}

	credited, hit := g.obstacles.Update(g.bee.X, hitbox)
	if credited > 0 {
		g.score += credited
		g.emitScore(core.EventScoreChanged)
	}

	if (hit && !g.invincible) || g.bee.Y <= g.bee.MinY() {
		g.gameOver(hit)
	}

	return g.result()
}

func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionFall) && !in.Has(core.ActionFly) {
		g.bee.Fall()
	}
	if in.Has(core.ActionFly) {
		g.bee.Fly()
	}
	if in.Has(core.ActionMove) {
		g.bee.Move(in.MoveX)
	}
	if in.Has(core.ActionLeft) {
		g.bee.Nudge(-NudgeStep)
	}
	if in.Has(core.ActionRight) {
		g.bee.Nudge(NudgeStep)
	}
}

// grantInvincibility starts or extends invincibility.
func (g *Game) grantInvincibility() {
	if g.invincible {
		g.timers.Cancel(g.invincibleTimer)
	}
	g.invincible = true
	g.invincibleTimer = g.timers.After(g.invincibleTicks(), func() {
		g.invincible = false
		g.invincibleTimer = 0
		g.emit(core.EventInvincibilityEnded)
	})
	g.emit(core.EventPowerUpCollected)
}

func (g *Game) invincibleTicks() int {
	return int(math.Round(g.cfg.PowerUps.InvincibleSeconds * float64(g.runtime.TickRate)))
}

// gameOver ends the run and records the score once.
func (g *Game) gameOver(hit bool) {
	g.phase = core.PhaseGameOver
	g.timers.Reset()
	g.invincible = false

	cause := "floor"
	if hit {
		cause = "obstacle"
	}
	g.logger.Debug("run ended", "run", g.runs, "score", g.score, "ticks", g.ticks, "cause", cause)

	if g.board != nil {
		// Errors are logged by the board; the run ends regardless. The
		// returned list is kept so later records by other sessions do not
		// change this game over screen.
		g.finalScores, _ = g.board.Record(g.score)
	}
	g.emitScore(core.EventGameOver)
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{Kind: kind})
}

func (g *Game) emitScore(kind core.EventKind) {
	g.events = append(g.events, core.Event{Kind: kind, Score: g.score})
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = make([]core.Event, len(g.events))
		copy(events, g.events)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:      g.phase,
		Score:      g.score,
		GameOver:   g.phase == core.PhaseGameOver,
		Paused:     g.paused,
		Invincible: g.invincible,
	}
}

// Config returns the game configuration.
func (g *Game) Config() config.BeeConfig {
	return g.cfg
}

// Ticks returns the number of simulated ticks in the current run.
func (g *Game) Ticks() int {
	return g.ticks
}

// InvincibleTicks returns the ticks of invincibility left, or 0.
func (g *Game) InvincibleTicks() int {
	if !g.invincible {
		return 0
	}
	return g.timers.Remaining(g.invincibleTimer)
}

// CellToWorldX converts a terminal column to a world x position at the
// centre of that column.
func (g *Game) CellToWorldX(col, cols int) float64 {
	if cols <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * g.cfg.World.Width / float64(cols)
}
