// Package entity provides the snake and food that live on the grid.
package entity

// Direction is a heading on the grid. Up and Down move along rows,
// Left and Right along columns.
type Direction int

const (
	DirLeft Direction = iota + 1
	DirRight
	DirUp
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return d
	}
}

// Delta returns the (row, col) step for one move in this direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	default:
		return 0, 0
	}
}
