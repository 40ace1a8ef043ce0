package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beelazy/internal/config"
	"github.com/vovakirdan/beelazy/internal/core"
	"github.com/vovakirdan/beelazy/internal/games/bee"
	"github.com/vovakirdan/beelazy/internal/highscore"
	"github.com/vovakirdan/beelazy/internal/storage"
)

// Deps bundles the long-lived services shared by every game a process runs.
// Any field may be nil; persistence is then skipped.
type Deps struct {
	Config config.BeeConfig
	Board  *highscore.Board
	Store  *storage.Store
	Logger *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// GameModel runs one bee game inside Bubble Tea.
// The simulation clock is a chain of tick commands: every handled tick
// schedules the next one, game over breaks the chain and a restart starts a
// new one, so exactly one tick is ever in flight.
type GameModel struct {
	game       *bee.Game
	deps       Deps
	screen     *core.Screen
	config     core.RuntimeConfig
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	ticking    bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. A zero seed is replaced with a
// time-based one.
func NewGameModel(deps Deps, cfg core.RuntimeConfig, player string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == "" {
		player = "local"
	}

	game := bee.New(
		bee.WithConfig(deps.Config),
		bee.WithBoard(deps.Board),
		bee.WithLogger(deps.logger().With("player", player)),
	)
	game.Reset(cfg)

	return GameModel{
		game:       game,
		deps:       deps,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
		ticking:    true,
	}
}

// Init starts the simulation clock.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame, func(col int) float64 {
			return m.game.CellToWorldX(col, m.screen.Width())
		})
		return m, nil

	case tea.WindowSizeMsg:
		// The world has a fixed size, only the projection changes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	var frame core.InputFrame
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to the start menu from anywhere but an active run
	if frame.Has(core.ActionBack) && (m.gameState.Phase != core.PhaseRunning || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	// The clock is stopped at game over: restart steps immediately and
	// re-arms it.
	if frame.Has(core.ActionRestart) && m.gameState.GameOver && !m.ticking {
		m.inputFrame.Clear()
		m.apply(m.game.Step(frame))
		m.ticking = true
		return m, tickCmd(m.config.TickRate)
	}

	for a := range frame.Actions {
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.apply(result)

	if result.Has(core.EventGameOver) {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// apply records the outcome of a step.
func (m *GameModel) apply(result core.StepResult) {
	m.gameState = result.State

	for _, e := range result.Events {
		if e.Kind == core.EventGameOver {
			m.saveRun(e.Score)
		}
	}
}

// saveRun adds the finished run to the history. Best effort: failures are
// logged and play continues.
func (m *GameModel) saveRun(score int) {
	if m.deps.Store == nil || score <= 0 {
		return
	}
	_, err := m.deps.Store.SaveRun(storage.Run{
		Score:  score,
		Ticks:  m.game.Ticks(),
		Seed:   m.config.Seed,
		Player: m.player,
	})
	if err != nil {
		m.deps.logger().Error("failed to save run", "player", m.player, "score", score, "err", err)
	}
}

// saveScreenshot saves the current screen to ~/.beelazy/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, config.AppDirName, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.logger().Warn("cannot create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.logger().Warn("cannot save screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Ticking reports whether the simulation clock is running.
func (m GameModel) Ticking() bool {
	return m.ticking
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the start menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a full local session: start menu, game and scoreboard.
func Run(deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg, "local"),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
