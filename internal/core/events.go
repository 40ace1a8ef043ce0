package core

// EventKind names a one-way notification from the simulation to the
// presentation layer.
type EventKind int

const (
	EventScoreChanged       EventKind = iota // Score increased; Event.Score holds the new value
	EventGameOver                            // Run ended; Event.Score holds the final score
	EventRestartRequested                    // A new run was started from game over
	EventPowerUpCollected                    // Actor picked up a power-up and became invincible
	EventInvincibilityEnded                  // Invincibility timer expired
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "ScoreChanged"
	case EventGameOver:
		return "GameOver"
	case EventRestartRequested:
		return "RestartRequested"
	case EventPowerUpCollected:
		return "PowerUpCollected"
	case EventInvincibilityEnded:
		return "InvincibilityEnded"
	default:
		return "Unknown"
	}
}

// Event is a single notification emitted during a tick.
type Event struct {
	Kind  EventKind
	Score int
}
