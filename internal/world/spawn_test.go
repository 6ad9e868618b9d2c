package world

import (
	"math/rand"
	"testing"
)

func TestBiasedRandomBounds(t *testing.T) {
	tests := []struct {
		difficulty int
		lo, hi     float64
	}{
		{1, 1.0 / 3, 2.0 / 3},
		{2, 1.0 / 4, 3.0 / 4},
		{3, 0, 1},
	}

	rng := rand.New(rand.NewSource(12345))
	for _, tt := range tests {
		for i := 0; i < 10000; i++ {
			v := BiasedRandom(rng, tt.difficulty)
			if v < tt.lo || v >= tt.hi {
				t.Fatalf("BiasedRandom(%d) = %v, want in [%v, %v)", tt.difficulty, v, tt.lo, tt.hi)
			}
		}
	}
}

func TestBiasedRandomUnknownDifficulty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := BiasedRandom(rng, 7); got != 0 {
		t.Errorf("BiasedRandom(7) = %v, want 0", got)
	}
}

func TestRandomEmptyStaysInBiasedRegion(t *testing.T) {
	g := NewGrid(30, 40)
	rng := rand.New(rand.NewSource(99))

	// Difficulty 1 draws from [1/3, 2/3), so rows land in 11..20 and cols in 14..27.
	for i := 0; i < 500; i++ {
		pos := RandomEmpty(g, rng, 1)
		if pos.Row < 11 || pos.Row > 20 || pos.Col < 14 || pos.Col > 27 {
			t.Fatalf("RandomEmpty() = %v, outside the difficulty 1 region", pos)
		}
	}
}

func TestRandomEmptySkipsOccupiedCells(t *testing.T) {
	g := NewGrid(4, 4)
	for r := 1; r <= 4; r++ {
		for c := 1; c <= 4; c++ {
			if r != 3 || c != 2 {
				g.Set(r, c, CellSnake)
			}
		}
	}

	rng := rand.New(rand.NewSource(7))
	if got := RandomEmpty(g, rng, 3); got != (Position{Row: 3, Col: 2}) {
		t.Errorf("RandomEmpty() = %v, want the only empty cell (3,2)", got)
	}
}

func TestRandomEmptyReproducibility(t *testing.T) {
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	g := NewGrid(45, 60)
	for i := 0; i < 20; i++ {
		p1 := RandomEmpty(g, rng1, 2)
		p2 := RandomEmpty(g, rng2, 2)
		if p1 != p2 {
			t.Fatalf("draw %d mismatch: %v != %v", i, p1, p2)
		}
	}
}
