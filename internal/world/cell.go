// Package world provides the occupancy grid the snake moves on and the
// random placement used to spawn entities into it.
package world

// Cell is the occupancy state of a single grid cell.
type Cell uint8

const (
	// CellEmpty is a free cell.
	CellEmpty Cell = iota
	// CellSnake is a cell covered by a snake segment.
	CellSnake
	// CellFood is the cell holding the live food item.
	CellFood
)

// IsOccupied returns true if something lives in the cell.
func (c Cell) IsOccupied() bool {
	return c != CellEmpty
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}
