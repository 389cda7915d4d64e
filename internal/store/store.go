package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/ronram5126/asus-fan-control/internal/temps"
)

// ErrNotFound signals that no temperature sequence has been persisted yet.
var ErrNotFound = errors.New("store: no persisted temperatures")

// Store persists the last applied temperature sequence as a single line
// of space-joined integers.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// Load returns the persisted sequence. A file that is missing, unreadable
// or not parseable as a sequence is reported as ErrNotFound, the caller
// falls back to model defaults.
func (s *Store) Load() ([]int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, ErrNotFound
	}

	sequence, err := temps.Parse(strings.TrimSpace(string(data)))
	if err != nil || len(sequence) == 0 {
		return nil, ErrNotFound
	}
	return sequence, nil
}

// Save writes the sequence, creating the parent directory if needed. The
// file is replaced atomically so a reader never sees a partial sequence.
func (s *Store) Save(sequence []int) error {
	parentDir := filepath.Dir(s.path)
	if _, err := os.Stat(parentDir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(parentDir, 0o755); err != nil {
			return err
		}
	}

	line := temps.Format(sequence) + "\n"
	return atomic.WriteFile(s.path, strings.NewReader(line))
}
