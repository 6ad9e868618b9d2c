package entity

import (
	"math/rand"

	"github.com/samdwyer/gridsnake/internal/world"
)

const (
	// spawnMargin is how close to a wall a fresh snake may start before its
	// initial heading is turned away from that wall.
	spawnMargin = 5

	// initialGrowth is the length budget a new snake starts with.
	initialGrowth = 4
)

// MoveResult reports the outcome of Snake.Advance.
type MoveResult int

const (
	// MoveOK means the head moved to a cell inside the grid.
	MoveOK MoveResult = iota
	// MoveWallCollision means the next head cell was outside the grid.
	// Nothing was changed.
	MoveWallCollision
)

// String returns a human-readable result name.
func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveWallCollision:
		return "wall_collision"
	default:
		return "unknown"
	}
}

// Snake is the player-controlled chain of segments.
type Snake struct {
	head    world.Position
	heading Direction
	body    []world.Position // tail first, head last
	growth  int
}

// NewSnake spawns a snake at a random empty cell. The spawn cell is not
// marked on the grid; the first Advance marks the first segment.
func NewSnake(g *world.Grid, rng *rand.Rand, difficulty int) *Snake {
	pos := world.RandomEmpty(g, rng, difficulty)
	rows, cols := g.Size()

	return NewSnakeAt(pos, initialHeading(pos, rows, cols))
}

// NewSnakeAt creates a snake whose head sits at pos with the given heading
// and the usual initial growth. Like NewSnake, nothing is marked on the grid.
func NewSnakeAt(pos world.Position, heading Direction) *Snake {
	return &Snake{
		head:    pos,
		heading: heading,
		body:    make([]world.Position, 0, 16),
		growth:  initialGrowth,
	}
}

// initialHeading points a new snake away from a nearby wall.
// Bottom beats top beats right beats left.
func initialHeading(pos world.Position, rows, cols int) Direction {
	switch {
	case pos.Row > rows-spawnMargin:
		return DirUp
	case pos.Row < 1+spawnMargin:
		return DirDown
	case pos.Col > cols-spawnMargin:
		return DirLeft
	case pos.Col < 1+spawnMargin:
		return DirRight
	default:
		return DirRight
	}
}

// Head returns the current head position.
func (s *Snake) Head() world.Position {
	return s.head
}

// Heading returns the direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Growth returns the pending length increase.
func (s *Snake) Growth() int {
	return s.growth
}

// Len returns the number of segments on the grid.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segment positions, tail first.
func (s *Snake) Body() []world.Position {
	out := make([]world.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Grow sets the growth counter.
func (s *Snake) Grow(n int) {
	if n < 0 {
		n = 0
	}
	s.growth = n
}

// SetHeading changes the direction of travel. A direct reversal is refused
// unless force is set. Reports whether the heading was accepted.
func (s *Snake) SetHeading(dir Direction, force bool) bool {
	if dir == s.heading.Opposite() && !force {
		return false
	}
	s.heading = dir
	return true
}

// Advance moves the head one cell along the heading and keeps the grid in
// step: the tail cell is cleared unless the snake is growing, and the new
// head cell is marked.
func (s *Snake) Advance(g *world.Grid) MoveResult {
	next := s.head.Add(s.heading.Delta())
	if !g.Contains(next) {
		return MoveWallCollision
	}

	s.head = next

	if s.growth == 0 {
		if len(s.body) > 0 {
			tail := s.body[0]
			s.body = s.body[1:]
			g.Clear(tail.Row, tail.Col)
		}
	} else {
		s.growth--
	}

	g.Place(next, world.CellSnake)
	s.body = append(s.body, next)

	return MoveOK
}

// SelfCollision returns true if the head shares a cell with any other segment.
func (s *Snake) SelfCollision() bool {
	for i := 0; i < len(s.body)-1; i++ {
		if s.body[i] == s.head {
			return true
		}
	}
	return false
}
