package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/beelazy/internal/config"
)

// MenuChoice is what the player picked on the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceScores
	ChoiceQuit
)

type menuItem struct {
	title  string
	choice MenuChoice
}

var menuItems = []menuItem{
	{"Start Game", ChoiceStart},
	{"Show Highscore", ChoiceScores},
	{"Difficulty", ChoiceNone},
	{"Quit", ChoiceQuit},
}

// difficultyItem is the index of the preset selector in menuItems.
const difficultyItem = 2

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the start screen.
type MenuModel struct {
	cursor    int
	preset    int // Index into presets
	width     int
	height    int
	best      int
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a start menu. preset selects the initial difficulty;
// best is shown as the score to beat.
func NewMenuModel(width, height int, preset config.DifficultyPreset, best int) MenuModel {
	m := MenuModel{
		width:     width,
		height:    height,
		best:      best,
		preset:    1,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range presets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == difficultyItem {
			m.preset = (m.preset + len(presets) - 1) % len(presets)
		}

	case MenuActionRight:
		if m.cursor == difficultyItem {
			m.preset = (m.preset + 1) % len(presets)
		}

	case MenuActionSelect:
		if m.cursor == difficultyItem {
			m.preset = (m.preset + 1) % len(presets)
			return m, nil
		}
		m.choice = menuItems[m.cursor].choice
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	top := (m.height - len(menuItems) - 8) / 2
	if top > 0 {
		b.WriteString(strings.Repeat("\n", top))
	}

	b.WriteString(centerText(menuTitleStyle.Render("B E E   L A Z Y"), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
	}
	b.WriteString("\n\n")

	for i, item := range menuItems {
		label := item.title
		if i == difficultyItem {
			label = fmt.Sprintf("Difficulty: < %s >", presets[m.preset])
		}
		if i == m.cursor {
			label = menuCursorStyle.Render("> " + label + " <")
		} else {
			label = "  " + label + "  "
		}
		b.WriteString(centerText(label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Left/Right: Difficulty  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the player's pick, or ChoiceNone while still choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return presets[m.preset]
}
