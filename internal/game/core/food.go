package core

import "math/rand"

// FoodSpawner drops food on random board cells using an injected RNG so that
// the same seed replays the same food sequence.
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner creates a spawner drawing from rng
func NewFoodSpawner(rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{rng: rng}
}

// RandomlyAddFood flips one coin weighted by probability. On success it picks
// one cell uniformly from the whole board and turns it into food if it is
// open. An occupied pick is not retried. The returned coordinate is the
// picked cell and placed reports whether food was actually added.
func (fs *FoodSpawner) RandomlyAddFood(b *Board, probability float64) (picked Coordinate, placed bool) {
	if b.Size() == 0 {
		return Coordinate{}, false
	}
	if fs.rng.Float64() >= probability {
		return Coordinate{}, false
	}

	idx := fs.rng.Intn(b.Size())
	picked = b.Coord(idx)
	if b.cells[idx] != CellOpen {
		return picked, false
	}
	b.setIdx(idx, CellFood)
	return picked, true
}
