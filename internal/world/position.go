package world

// Position is a 1-indexed grid coordinate.
type Position struct {
	Row, Col int
}

// Add returns the position offset by the given deltas.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}
