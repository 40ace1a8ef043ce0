package highscore

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Board is the in-memory high-score list backed by a Store.
// It is safe for concurrent use; SSH sessions share one Board.
// Saves are serialized and each writes the list as of its own update, so
// the last save always carries every recorded score.
type Board struct {
	saveMu sync.Mutex // Held across update and save; taken before mu
	mu     sync.Mutex
	store  Store
	keep   int
	scores []int
	logger *log.Logger
}

// NewBoard creates a board keeping at most keep entries. A nil logger
// discards log output.
func NewBoard(store Store, keep int, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{store: store, keep: keep, logger: logger}
}

// Load reads the list from the store, replacing anything in memory.
// Failures leave the board empty (or with the usable entries) and are
// returned for the caller to report; they never prevent play.
func (b *Board) Load() error {
	scores, err := b.store.Load()

	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case err == nil:
		b.scores = Normalize(scores, b.keep)
	case errors.Is(err, ErrMalformedEntries):
		b.logger.Warn("dropped malformed high scores", "err", err)
		b.scores = Normalize(scores, b.keep)
	default:
		b.logger.Warn("high scores unavailable, starting empty", "err", err)
		b.scores = nil
	}
	return err
}

// Record inserts score, persists the list and returns a copy of it.
// The in-memory list is updated even when saving fails.
func (b *Board) Record(score int) ([]int, error) {
	b.saveMu.Lock()
	defer b.saveMu.Unlock()

	b.mu.Lock()
	b.scores = Insert(b.scores, score, b.keep)
	snapshot := b.copyLocked()
	b.mu.Unlock()

	if err := b.store.Save(snapshot); err != nil {
		b.logger.Error("failed to save high scores", "score", score, "err", err)
		return snapshot, err
	}
	b.logger.Debug("high score recorded", "score", score, "entries", len(snapshot))
	return snapshot, nil
}

// Scores returns a copy of the full list, best first.
func (b *Board) Scores() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.copyLocked()
}

// Top returns at most n entries, best first.
func (b *Board) Top(n int) []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.copyLocked()
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Clear empties the board and the store.
func (b *Board) Clear() error {
	b.saveMu.Lock()
	defer b.saveMu.Unlock()

	b.mu.Lock()
	b.scores = nil
	b.mu.Unlock()
	return b.store.Save(nil)
}

func (b *Board) copyLocked() []int {
	out := make([]int, len(b.scores))
	copy(out, b.scores)
	return out
}
