package engine

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
		valid bool
	}{
		{"1", DifficultyEasy, true},
		{"2", DifficultyMedium, true},
		{"3", DifficultyHard, true},
		{"easy", DifficultyEasy, true},
		{" Hard ", DifficultyHard, true},
		{"0", 0, false},
		{"4", 0, false},
		{"insane", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.input)
		if tt.valid {
			if err != nil {
				t.Errorf("ParseDifficulty(%q) error: %v", tt.input, err)
			} else if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.input, got, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidDifficulty) {
			t.Errorf("ParseDifficulty(%q) error = %v, want ErrInvalidDifficulty", tt.input, err)
		}
	}
}

func TestParseBoardSize(t *testing.T) {
	tests := []struct {
		input string
		want  BoardSize
		valid bool
	}{
		{"small", BoardSmall, true},
		{"Medium", BoardMedium, true},
		{"3", BoardLarge, true},
		{"huge", 0, false},
		{"9", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseBoardSize(tt.input)
		if tt.valid {
			if err != nil {
				t.Errorf("ParseBoardSize(%q) error: %v", tt.input, err)
			} else if got != tt.want {
				t.Errorf("ParseBoardSize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidBoardSize) {
			t.Errorf("ParseBoardSize(%q) error = %v, want ErrInvalidBoardSize", tt.input, err)
		}
	}
}

func TestBoardDimensions(t *testing.T) {
	tests := []struct {
		size       BoardSize
		rows, cols int
	}{
		{BoardSmall, 30, 40},
		{BoardMedium, 45, 60},
		{BoardLarge, 60, 80},
	}

	for _, tt := range tests {
		rows, cols := tt.size.Dimensions()
		if rows != tt.rows || cols != tt.cols {
			t.Errorf("%v.Dimensions() = (%d,%d), want (%d,%d)", tt.size, rows, cols, tt.rows, tt.cols)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error: %v", err)
	}

	err := Config{Difficulty: DifficultyEasy, BoardSize: 7}.Validate()
	if !errors.Is(err, ErrInvalidBoardSize) {
		t.Errorf("Validate() error = %v, want ErrInvalidBoardSize", err)
	}
}
