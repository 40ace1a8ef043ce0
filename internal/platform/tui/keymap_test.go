package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beelazy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"space taps", tea.KeyMsg{Type: tea.KeySpace}, []core.Action{core.ActionFly, core.ActionFall}},
		{"up flies", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionFly}},
		{"w flies", runeKey('w'), []core.Action{core.ActionFly}},
		{"down falls", tea.KeyMsg{Type: tea.KeyDown}, []core.Action{core.ActionFall}},
		{"left nudges", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}},
		{"l nudges right", runeKey('l'), []core.Action{core.ActionRight}},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionBack}},
		{"p pauses", runeKey('p'), []core.Action{core.ActionPause}},
		{"r restarts", runeKey('r'), []core.Action{core.ActionRestart}},
		{"unbound key", runeKey('x'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if km.MapKeyToFrame(tt.msg, &frame) {
				t.Fatal("unexpected quit")
			}
			if len(frame.Actions) != len(tt.want) {
				t.Errorf("got %d actions, expected %d", len(frame.Actions), len(tt.want))
			}
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("expected %v to be set", a)
				}
			}
		})
	}
}

func TestMapKeyToFrameQuit(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		frame := core.NewInputFrame()
		if !km.MapKeyToFrame(msg, &frame) {
			t.Errorf("%q should quit", msg.String())
		}
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	toWorld := func(col int) float64 { return float64(col) * 16 }

	frame := core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame, toWorld)
	if !frame.Has(core.ActionFly) {
		t.Error("left press should fly")
	}

	frame = core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame, toWorld)
	if frame.Has(core.ActionFly) {
		t.Error("right press should be ignored")
	}

	frame = core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 3, Action: tea.MouseActionRelease}, &frame, toWorld)
	if !frame.Has(core.ActionFall) {
		t.Error("release should fall")
	}

	frame = core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, &frame, toWorld)
	if !frame.Has(core.ActionMove) || frame.MoveX != 80 {
		t.Errorf("drag should move to 80, got move=%v x=%v", frame.Has(core.ActionMove), frame.MoveX)
	}

	frame = core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, &frame, toWorld)
	if frame.Has(core.ActionMove) {
		t.Error("motion without a button is not a drag")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('d'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
