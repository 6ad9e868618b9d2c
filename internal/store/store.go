// Package store persists player options and the high-score table as JSON
// files in a data directory.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	optionsFile = "options.json"
	scoresFile  = "scores.json"

	// MaxScores is the length of the high-score table.
	MaxScores = 5
)

// Options are the last used game settings.
type Options struct {
	Difficulty int `json:"difficulty"`
	BoardSize  int `json:"size"`
}

// ScoreEntry is one row of the high-score table.
type ScoreEntry struct {
	ID    uuid.UUID `json:"id"`
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

// Store reads and writes files under Dir.
type Store struct {
	Dir string
	now func() time.Time
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &Store{Dir: dir, now: time.Now}, nil
}

// DefaultDir returns the per-user directory for game data.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "gridsnake"), nil
}

// LoadOptions returns the saved options. ok is false if none were saved.
func (s *Store) LoadOptions() (opts Options, ok bool, err error) {
	ok, err = s.read(optionsFile, &opts)
	return opts, ok, err
}

// SaveOptions stores the options, replacing any saved before.
func (s *Store) SaveOptions(opts Options) error {
	return s.write(optionsFile, opts)
}

// Scores returns the high-score table, best first.
func (s *Store) Scores() ([]ScoreEntry, error) {
	var scores []ScoreEntry
	if _, err := s.read(scoresFile, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// AddScore records a finished game's score and keeps only the best
// MaxScores entries. It returns the new entry and whether it made the table.
func (s *Store) AddScore(score int) (ScoreEntry, bool, error) {
	scores, err := s.Scores()
	if err != nil {
		return ScoreEntry{}, false, err
	}

	entry := ScoreEntry{
		ID:    uuid.New(),
		Date:  s.now(),
		Score: score,
	}
	scores = topScores(append(scores, entry))

	kept := false
	for _, e := range scores {
		if e.ID == entry.ID {
			kept = true
			break
		}
	}

	if err := s.write(scoresFile, scores); err != nil {
		return entry, false, err
	}
	return entry, kept, nil
}

// ClearScores deletes the high-score table.
func (s *Store) ClearScores() error {
	err := os.Remove(filepath.Join(s.Dir, scoresFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// topScores sorts by score, highest first, and caps the list. Ties keep
// their existing order, so an older score outranks a new equal one.
func topScores(scores []ScoreEntry) []ScoreEntry {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > MaxScores {
		scores = scores[:MaxScores]
	}
	return scores
}

func (s *Store) read(name string, v any) (bool, error) {
	content, err := os.ReadFile(filepath.Join(s.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return false, fmt.Errorf("failed to parse JSON from %s: %w", name, err)
	}
	return true, nil
}

// write replaces the file atomically so a crash never leaves half a table.
func (s *Store) write(name string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.Dir, name+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.Dir, name))
}
