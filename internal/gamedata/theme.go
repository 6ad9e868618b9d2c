package gamedata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
)

const themeFile = "theme.json"

// GlyphDef is how one kind of cell is drawn.
type GlyphDef struct {
	Glyph string `json:"glyph"` // Single character (e.g., "█")
	Color string `json:"color"` // Hex color code (e.g., "#8B4513")
}

// GlyphRune returns the glyph as a rune for rendering.
func (g GlyphDef) GlyphRune() rune {
	for _, r := range g.Glyph {
		return r
	}
	return ' '
}

// TCellColor returns the color as a tcell.Color.
func (g GlyphDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ThemeFile represents the structure of theme.json.
type ThemeFile struct {
	Cells struct {
		Empty GlyphDef `json:"empty"`
		Snake GlyphDef `json:"snake"`
		Food  GlyphDef `json:"food"`
	} `json:"cells"`
	Border       GlyphDef `json:"border"`
	Difficulties []struct {
		Level int    `json:"level"`
		Label string `json:"label"`
	} `json:"difficulties"`
	BoardSizes []struct {
		Size  int    `json:"size"`
		Label string `json:"label"`
	} `json:"boardSizes"`
}

// Theme holds the loaded presentation data with lookup helpers.
type Theme struct {
	Empty  GlyphDef
	Snake  GlyphDef
	Food   GlyphDef
	Border GlyphDef

	difficulties map[int]string
	boardSizes   map[int]string
}

// NewTheme builds a theme from a parsed theme file.
func NewTheme(file ThemeFile) *Theme {
	t := &Theme{
		Empty:        file.Cells.Empty,
		Snake:        file.Cells.Snake,
		Food:         file.Cells.Food,
		Border:       file.Border,
		difficulties: make(map[int]string, len(file.Difficulties)),
		boardSizes:   make(map[int]string, len(file.BoardSizes)),
	}
	for _, d := range file.Difficulties {
		t.difficulties[d.Level] = d.Label
	}
	for _, b := range file.BoardSizes {
		t.boardSizes[b.Size] = b.Label
	}
	return t
}

// LoadTheme loads the theme from the embedded theme.json file.
func LoadTheme() (*Theme, error) {
	file, err := Load[ThemeFile](themeFile)
	if err != nil {
		return nil, err
	}
	return checkedTheme(file)
}

// LoadThemeFile loads a user theme from disk in place of the embedded one.
func LoadThemeFile(path string) (*Theme, error) {
	file, err := LoadFS[ThemeFile](os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return checkedTheme(file)
}

func checkedTheme(file ThemeFile) (*Theme, error) {
	if len(file.Difficulties) == 0 || len(file.BoardSizes) == 0 {
		return nil, errors.New("theme is missing difficulty or board size labels")
	}
	return NewTheme(file), nil
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// DifficultyLabel returns the display name for a difficulty level.
func (t *Theme) DifficultyLabel(level int) string {
	if label, ok := t.difficulties[level]; ok {
		return label
	}
	return fmt.Sprintf("Level %d", level)
}

// BoardSizeLabel returns the display name for a board size.
func (t *Theme) BoardSizeLabel(size int) string {
	if label, ok := t.boardSizes[size]; ok {
		return label
	}
	return fmt.Sprintf("Size %d", size)
}
