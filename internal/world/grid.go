package world

import "fmt"

// Grid is a fixed-size occupancy map addressed with 1-indexed (row, col)
// coordinates. Entities keep it in sync with their own positions; nothing
// else writes to it.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates a grid with every cell empty.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", rows, cols))
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

// Contains returns true if the position lies inside the grid.
func (g *Grid) Contains(pos Position) bool {
	return pos.Row >= 1 && pos.Row <= g.rows && pos.Col >= 1 && pos.Col <= g.cols
}

// At returns the state of the given cell.
func (g *Grid) At(row, col int) Cell {
	g.mustContain(row, col)
	return g.cells[row-1][col-1]
}

// IsEmpty returns true if the given cell is unoccupied.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.At(row, col) == CellEmpty
}

// Set stores a state in the given cell.
func (g *Grid) Set(row, col int, cell Cell) {
	g.mustContain(row, col)
	g.cells[row-1][col-1] = cell
}

// Place marks the cell at pos with the given state.
func (g *Grid) Place(pos Position, cell Cell) {
	g.Set(pos.Row, pos.Col, cell)
}

// Clear resets the given cell to empty.
func (g *Grid) Clear(row, col int) {
	g.Set(row, col, CellEmpty)
}

// Count returns the number of cells in the given state.
func (g *Grid) Count(cell Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == cell {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a copy of the cell matrix for readers such as the
// renderer. Index [r][c] holds grid cell (r+1, c+1).
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, g.rows)
	for r, row := range g.cells {
		out[r] = make([]Cell, len(row))
		copy(out[r], row)
	}
	return out
}

func (g *Grid) mustContain(row, col int) {
	if row < 1 || row > g.rows || col < 1 || col > g.cols {
		panic(fmt.Sprintf("world: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}
