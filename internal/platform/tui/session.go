package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beelazy/internal/config"
	"github.com/vovakirdan/beelazy/internal/core"
	"github.com/vovakirdan/beelazy/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewScores
	viewGame
)

// SessionModel manages the full flow: start menu -> game or scoreboard ->
// start menu. It is the top-level model for local play and SSH sessions.
type SessionModel struct {
	deps       Deps
	config     core.RuntimeConfig
	player     string
	preset     config.DifficultyPreset
	loaded     config.DifficultyPreset // Preset matching deps.Config as given
	view       sessionView
	menu       MenuModel
	scoreboard ScoreboardModel
	game       GameModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig, player string) SessionModel {
	m := SessionModel{
		deps:   deps,
		config: cfg,
		player: player,
		preset: config.DifficultyNormal,
	}
	if !deps.Config.Difficulty.Enabled {
		m.preset = config.DifficultyFixed
	}
	m.loaded = m.preset
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.deps.Board != nil {
		if top := m.deps.Board.Top(1); len(top) > 0 {
			best = top[0]
		}
	} else if m.deps.Store != nil {
		best, _ = m.deps.Store.HighScore(storage.GameID)
	}
	return NewMenuModel(m.config.ScreenW, m.config.ScreenH, m.preset, best)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when on the start menu.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	m.preset = m.menu.Preset()

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.scoreboard = NewScoreboardModel(m.deps.Board, m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scoreboard.Init()

	case ChoiceStart:
		// Only an explicit change overrides custom difficulty steps
		deps := m.deps
		if m.preset != m.loaded {
			config.ApplyBeePreset(&deps.Config, m.preset)
		}

		// A zero seed gives every game a fresh time-based one
		m.game = NewGameModel(deps, m.config, m.player)
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.menu = m.newMenu()
		m.view = viewMenu
		return m, m.menu.Init()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.menu = m.newMenu()
		m.view = viewMenu
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
