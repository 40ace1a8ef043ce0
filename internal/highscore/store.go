// Package highscore persists the ordered top-N score list.
//
// The list lives in a small JSON document with a single "scores" key:
//
//	{"scores": [30, 20, 10]}
//
// A missing or unreadable document is treated as an empty list.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Key is the document key holding the score list.
const Key = "scores"

var (
	// ErrCorrupt is returned when the document cannot be decoded at all.
	ErrCorrupt = errors.New("highscore: corrupt document")

	// ErrMalformedEntries is returned alongside the usable scores when some
	// list entries were not integers and had to be dropped.
	ErrMalformedEntries = errors.New("highscore: malformed entries dropped")
)

// Store loads and saves the whole score list.
type Store interface {
	Load() ([]int, error)
	Save(scores []int) error
}

// JSONStore keeps the list in a JSON document at a fixed path.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store for the document at path. The file is not
// touched until Load or Save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the document location.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the list. A missing file or missing key yields an empty list
// and no error.
func (s *JSONStore) Load() ([]int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}
	return decodeDocument(data)
}

// Save replaces the document with the given list.
// The write goes through a temp file and rename so a crash never leaves a
// half-written document behind.
func (s *JSONStore) Save(scores []int) error {
	if scores == nil {
		scores = []int{}
	}
	data, err := json.Marshal(map[string][]int{Key: scores})
	if err != nil {
		return fmt.Errorf("highscore: cannot encode scores: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*.json")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("highscore: cannot write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("highscore: cannot close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// decodeDocument accepts {"scores": [..]} and the older nested form
// {"scores": {"scores": [..]}}.
func decodeDocument(data []byte) ([]int, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	raw, ok := doc[Key]
	if !ok {
		return nil, nil
	}

	var nested map[string]json.RawMessage
	if err := json.Unmarshal(raw, &nested); err == nil {
		inner, ok := nested[Key]
		if !ok {
			return nil, nil
		}
		raw = inner
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %q is not a list: %v", ErrCorrupt, Key, err)
	}

	scores := make([]int, 0, len(entries))
	dropped := 0
	for _, e := range entries {
		var v int
		if err := json.Unmarshal(e, &v); err != nil {
			dropped++
			continue
		}
		scores = append(scores, v)
	}
	if dropped > 0 {
		return scores, fmt.Errorf("%w: %d of %d", ErrMalformedEntries, dropped, len(entries))
	}
	return scores, nil
}

// Normalize returns a copy of scores sorted descending and truncated to keep
// entries. keep < 1 means no limit.
func Normalize(scores []int, keep int) []int {
	out := make([]int, len(scores))
	copy(out, scores)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if keep > 0 && len(out) > keep {
		out = out[:keep]
	}
	return out
}

// Insert returns a new list with score added, sorted descending and
// truncated to keep entries.
func Insert(scores []int, score, keep int) []int {
	out := make([]int, 0, len(scores)+1)
	out = append(out, scores...)
	out = append(out, score)
	return Normalize(out, keep)
}

// Rank returns the 1-based position of the first entry of a descending list
// equal to score, or 0 when it is absent.
func Rank(scores []int, score int) int {
	for i, s := range scores {
		if s == score {
			return i + 1
		}
	}
	return 0
}
