package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// CollisionManager evaluates all per-tick collision checks against a
// fixed grid and edge policy.
type CollisionManager struct {
	grid types.Grid
	edge types.EdgeMode
}

func NewCollisionManager(grid types.Grid, edge types.EdgeMode) *CollisionManager {
	return &CollisionManager{
		grid: grid,
		edge: edge,
	}
}

// ResolveEdge applies the edge policy to a candidate head cell. In
// wrap mode out-of-bounds positions are remapped; in wall mode they
// signal a wall collision and the position is returned unchanged.
func (cm *CollisionManager) ResolveEdge(pos types.Point) (types.Point, types.CollisionKind) {
	if cm.grid.Contains(pos) {
		return pos, types.NoCollision
	}
	if cm.edge == types.EdgeWrap {
		return cm.grid.Wrap(pos), types.NoCollision
	}
	return pos, types.WallCollision
}

// CheckSelf reports a self collision of the candidate head against the
// snake body, excluding the tail cell when it is vacated this tick.
func (cm *CollisionManager) CheckSelf(pos types.Point, snake *entity.Snake, vacatesTail bool) types.CollisionKind {
	if snake.OccupiesExcludingTail(pos, vacatesTail) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// CheckObstacles reports a collision of the candidate head with a
// challenge-mode obstacle.
func (cm *CollisionManager) CheckObstacles(pos types.Point, obstacles []types.Point) types.CollisionKind {
	for _, obs := range obstacles {
		if pos == obs {
			return types.ObstacleCollision
		}
	}
	return types.NoCollision
}

// IsFoodCollision checks if a position collides with food.
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food entity.Food) bool {
	return pos == food.Pos
}
