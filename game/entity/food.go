package entity

import (
	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

// Food is the collectible item. A moving food advances one cell every
// few ticks and re-rolls its heading periodically.
type Food struct {
	Pos    types.Point
	Moving bool

	dir   types.Direction
	moves int
}

// NewFood returns a static food at p.
func NewFood(p types.Point) Food {
	return Food{Pos: p}
}

// NewMovingFood returns a moving food at p with a random heading.
func NewMovingFood(p types.Point, rng *rand.Rand) Food {
	return Food{
		Pos:    p,
		Moving: true,
		dir:    types.Direction(rng.Intn(4)),
	}
}

// Step advances a moving food by one cell. Every MovingFoodTurnMoves
// moves the heading is re-rolled; a step that would leave a walled
// grid reflects instead of clamping in place.
func (f *Food) Step(grid types.Grid, edge types.EdgeMode, rng *rand.Rand) {
	if !f.Moving {
		return
	}

	if f.moves%types.MovingFoodTurnMoves == 0 {
		f.dir = types.Direction(rng.Intn(4))
	}
	f.moves++

	next := f.Pos.Add(f.dir.Vector())
	if !grid.Contains(next) {
		if edge == types.EdgeWrap {
			next = grid.Wrap(next)
		} else {
			f.dir = f.dir.Opposite()
			next = f.Pos.Add(f.dir.Vector())
			if !grid.Contains(next) { // 1-cell grid axis
				return
			}
		}
	}
	f.Pos = next
}
