package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDifficulty is returned for a difficulty outside 1..3.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	// ErrInvalidBoardSize is returned for an unknown board size.
	ErrInvalidBoardSize = errors.New("invalid board size")
)

// Difficulty controls how close to the walls snake and food may spawn,
// and how fast the game speeds up.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// String returns the level name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts a level number ("1".."3") or name.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	d := Difficulty(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDifficulty, n)
	}
	return d, nil
}

// BoardSize selects one of the fixed board dimensions.
type BoardSize int

const (
	BoardSmall BoardSize = iota + 1
	BoardMedium
	BoardLarge
)

// Valid reports whether b is one of the known sizes.
func (b BoardSize) Valid() bool {
	return b >= BoardSmall && b <= BoardLarge
}

// Dimensions returns the (rows, cols) of the board.
func (b BoardSize) Dimensions() (rows, cols int) {
	switch b {
	case BoardMedium:
		return 45, 60
	case BoardLarge:
		return 60, 80
	default:
		return 30, 40
	}
}

// String returns the size name.
func (b BoardSize) String() string {
	switch b {
	case BoardSmall:
		return "small"
	case BoardMedium:
		return "medium"
	case BoardLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ParseBoardSize accepts a size number ("1".."3") or name.
func ParseBoardSize(s string) (BoardSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "small":
		return BoardSmall, nil
	case "medium":
		return BoardMedium, nil
	case "large":
		return BoardLarge, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBoardSize, s)
	}
	b := BoardSize(n)
	if !b.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBoardSize, n)
	}
	return b, nil
}

// Config holds the per-game options of an Engine.
type Config struct {
	Difficulty Difficulty
	BoardSize  BoardSize

	// Seed for the engine's random source. A seed of 0 means a time-based
	// seed is used.
	Seed int64
}

// DefaultConfig returns an easy game on the small board.
func DefaultConfig() Config {
	return Config{
		Difficulty: DifficultyEasy,
		BoardSize:  BoardSmall,
	}
}

// Validate checks that the difficulty and board size are known values.
func (c Config) Validate() error {
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDifficulty, c.Difficulty)
	}
	if !c.BoardSize.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidBoardSize, c.BoardSize)
	}
	return nil
}
