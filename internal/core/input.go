package core

// Action represents a semantic game action, abstracted from physical input.
// This allows the game to work with high-level intents rather than raw keys
// or mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - move up in menus
	ActionDown           // Down arrow, j - move down in menus
	ActionFly            // Press: space, up, left mouse button down
	ActionFall           // Release: down, left mouse button up
	ActionMove           // Drag: mouse motion with button held
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to start screen
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionLeft           // Left arrow - nudge the actor left
	ActionRight          // Right arrow - nudge the actor right
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFly:
		return "Fly"
	case ActionFall:
		return "Fall"
	case ActionMove:
		return "Move"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// MoveX is the latest drag position in world units. Only meaningful when
	// ActionMove is set.
	MoveX float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetMove records a drag sample at world position x.
// Later samples in the same frame replace earlier ones.
func (f *InputFrame) SetMove(x float64) {
	f.Set(ActionMove)
	f.MoveX = x
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.MoveX = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.MoveX = f.MoveX
	return clone
}
