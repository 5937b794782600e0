package manager

import (
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// SpawnManager places food, power-ups, and obstacles on free cells.
// All placement is uniform over the free cells; when none exist the
// spawn is skipped rather than failing the game.
type SpawnManager struct {
	grid             types.Grid
	movingFoodChance float64
	rng              *rand.Rand
}

func NewSpawnManager(grid types.Grid, movingFoodChance float64, rng *rand.Rand) *SpawnManager {
	return &SpawnManager{
		grid:             grid,
		movingFoodChance: movingFoodChance,
		rng:              rng,
	}
}

// freeCells enumerates the grid cells not present in occupied. The
// enumeration bounds the spawn cost on a nearly-full board, where a
// rejection-sampling loop would spin.
func (sm *SpawnManager) freeCells(occupied map[types.Point]bool) []types.Point {
	free := make([]types.Point, 0, sm.grid.Cells()-len(occupied))
	for y := 0; y < sm.grid.Height; y++ {
		for x := 0; x < sm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

func (sm *SpawnManager) pickFree(occupied map[types.Point]bool) (types.Point, bool) {
	free := sm.freeCells(occupied)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[sm.rng.Intn(len(free))], true
}

// SpawnFood places a new food on a free cell. A fraction of spawns is
// moving food. Returns false when the board has no free cell.
func (sm *SpawnManager) SpawnFood(occupied map[types.Point]bool) (entity.Food, bool) {
	pos, ok := sm.pickFree(occupied)
	if !ok {
		return entity.Food{}, false
	}
	if sm.rng.Float64() < sm.movingFoodChance {
		return entity.NewMovingFood(pos, sm.rng), true
	}
	return entity.NewFood(pos), true
}

// MaybeSpawnPowerUp rolls chance once and, on success, places a
// power-up of a uniformly chosen kind on a free cell. The caller only
// invokes it while no power-up is active.
func (sm *SpawnManager) MaybeSpawnPowerUp(chance float64, occupied map[types.Point]bool) (*entity.PowerUp, bool) {
	if sm.rng.Float64() >= chance {
		return nil, false
	}
	pos, ok := sm.pickFree(occupied)
	if !ok {
		return nil, false
	}
	return &entity.PowerUp{
		Pos:  pos,
		Kind: entity.PowerUpKind(sm.rng.Intn(int(entity.NumPowerUpKinds))),
	}, true
}

// SpawnObstacles places between min and max obstacles on free cells,
// stopping early if the board fills up.
func (sm *SpawnManager) SpawnObstacles(min, max int, occupied map[types.Point]bool) []types.Point {
	n := min
	if max > min {
		n += sm.rng.Intn(max - min + 1)
	}

	taken := make(map[types.Point]bool, len(occupied)+n)
	for p := range occupied {
		taken[p] = true
	}

	obstacles := make([]types.Point, 0, n)
	for i := 0; i < n; i++ {
		pos, ok := sm.pickFree(taken)
		if !ok {
			break
		}
		obstacles = append(obstacles, pos)
		taken[pos] = true
	}
	return obstacles
}
