package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/world"
)

// View is everything drawn in one frame.
type View struct {
	Cells      [][]world.Cell // row-major grid snapshot
	Score      int
	FoodScore  int
	IntervalMs int64
	State      string
	Difficulty string
	BoardSize  string
	Overlay    *Overlay // nil when no dialog is open
}

// Overlay is a centered dialog box drawn over the board.
type Overlay struct {
	Title string
	Lines []string
	Hint  string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the board, the status line and any open overlay.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	r.drawBoard(v.Cells)
	r.drawStatus(v, len(v.Cells)+2)
	if v.Overlay != nil {
		r.drawOverlay(*v.Overlay)
	}

	r.screen.Show()
}

// cellWidth doubles cells horizontally when the terminal has room, since
// terminal characters are about twice as tall as they are wide.
func (r *Renderer) cellWidth(cols int) int {
	width, _ := r.screen.Size()
	if 2*cols+2 <= width {
		return 2
	}
	return 1
}

func (r *Renderer) drawBoard(cells [][]world.Cell) {
	if len(cells) == 0 {
		return
	}
	rows, cols := len(cells), len(cells[0])
	cw := r.cellWidth(cols)

	border := tcell.StyleDefault.Foreground(r.theme.Border.TCellColor())
	borderRune := r.theme.Border.GlyphRune()
	for x := 0; x < cols*cw+2; x++ {
		r.screen.SetContent(x, 0, borderRune, border)
		r.screen.SetContent(x, rows+1, borderRune, border)
	}
	for y := 1; y <= rows; y++ {
		r.screen.SetContent(0, y, borderRune, border)
		r.screen.SetContent(cols*cw+1, y, borderRune, border)
	}

	for y, row := range cells {
		for x, cell := range row {
			glyph, style := r.cellStyle(cell)
			for i := 0; i < cw; i++ {
				r.screen.SetContent(1+x*cw+i, 1+y, glyph, style)
			}
		}
	}
}

// cellStyle returns the glyph and style for a cell state.
func (r *Renderer) cellStyle(cell world.Cell) (rune, tcell.Style) {
	var def gamedata.GlyphDef
	switch cell {
	case world.CellSnake:
		def = r.theme.Snake
	case world.CellFood:
		def = r.theme.Food
	default:
		def = r.theme.Empty
	}
	return def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor())
}

func (r *Renderer) drawStatus(v View, y int) {
	status := fmt.Sprintf("Score %d   Food %d   Speed %dms   %s   %s / %s",
		v.Score, v.FoodScore, v.IntervalMs, v.State, v.Difficulty, v.BoardSize)
	r.RenderMessage(status, y)
	r.RenderMessage("arrows move  space pause  n new game  o options  q quit", y+1)
}

func (r *Renderer) drawOverlay(o Overlay) {
	width, height := r.screen.Size()

	boxW := len([]rune(o.Title)) + 4
	for _, line := range append([]string{o.Hint}, o.Lines...) {
		if w := len([]rune(line)) + 4; w > boxW {
			boxW = w
		}
	}
	boxH := len(o.Lines) + 5

	x0 := max(0, (width-boxW)/2)
	y0 := max(0, (height-boxH)/2)

	frame := tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			r.screen.SetContent(x, y, ' ', frame)
		}
	}

	r.drawText(x0+2, y0+1, o.Title, frame.Bold(true))
	for i, line := range o.Lines {
		r.drawText(x0+2, y0+3+i, line, frame)
	}
	r.drawText(x0+2, y0+boxH-1, o.Hint, frame.Foreground(tcell.ColorSilver))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// RenderMessage writes a line of text at the left edge of row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
