package entity

import (
	"math/rand"

	"github.com/samdwyer/gridsnake/internal/world"
)

const (
	// FoodGrowth is the length a snake gains from one food item.
	FoodGrowth = 4
	// FoodInitialScore is what a freshly spawned food is worth.
	FoodInitialScore = 250
	// foodMinScore is the decay floor.
	foodMinScore = 1
)

// Food is the single item the snake is chasing.
type Food struct {
	pos    world.Position
	score  int
	growth int
}

// NewFood spawns food at a random empty cell. The caller marks the cell.
func NewFood(g *world.Grid, rng *rand.Rand, difficulty int) *Food {
	return &Food{
		pos:    world.RandomEmpty(g, rng, difficulty),
		score:  FoodInitialScore,
		growth: FoodGrowth,
	}
}

// NewFoodAt creates fresh food at a known cell.
func NewFoodAt(pos world.Position) *Food {
	return &Food{
		pos:    pos,
		score:  FoodInitialScore,
		growth: FoodGrowth,
	}
}

// Position returns the food cell.
func (f *Food) Position() world.Position {
	return f.pos
}

// Score returns the current value of the food.
func (f *Food) Score() int {
	return f.score
}

// Growth returns the growth bonus granted when eaten.
func (f *Food) Growth() int {
	return f.growth
}

// DecayScore lowers the value by one, never below 1.
func (f *Food) DecayScore() {
	if f.score > foodMinScore {
		f.score--
	}
}

// IsEatenBy returns true if the snake head is on the food.
func (f *Food) IsEatenBy(head world.Position) bool {
	return f.pos == head
}
