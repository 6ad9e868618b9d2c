package world

import (
	"math"
	"math/rand"
)

// BiasedRandom returns a value in a difficulty-dependent sub-range of [0,1).
// Lower difficulties pull the range toward the middle of the board, so
// spawns land further from the walls:
//
//	difficulty 1: [1/3, 2/3)
//	difficulty 2: [1/4, 3/4)
//	difficulty 3: [0, 1)
//
// Unknown difficulties return 0.
func BiasedRandom(rng *rand.Rand, difficulty int) float64 {
	switch difficulty {
	case 1:
		return (rng.Float64() + 1) / 3
	case 2:
		return (2*rng.Float64() + 1) / 4
	case 3:
		return rng.Float64()
	}
	return 0
}

// RandomEmpty draws candidate cells until it finds an empty one.
// The board is never small enough to fill, so the loop terminates in play.
func RandomEmpty(g *Grid, rng *rand.Rand, difficulty int) Position {
	rows, cols := g.Size()
	for {
		pos := Position{
			Row: int(math.Floor(BiasedRandom(rng, difficulty)*float64(rows))) + 1,
			Col: int(math.Floor(BiasedRandom(rng, difficulty)*float64(cols))) + 1,
		}
		if g.IsEmpty(pos.Row, pos.Col) {
			return pos
		}
	}
}
