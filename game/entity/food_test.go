package entity

import (
	"testing"

	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

func TestMovingFoodStaysInWalledGrid(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 8}
	rng := rand.New(rand.NewSource(1))
	food := NewMovingFood(types.Point{X: 5, Y: 4}, rng)

	for i := 0; i < 500; i++ {
		food.Step(grid, types.EdgeWall, rng)
		if !grid.Contains(food.Pos) {
			t.Fatalf("step %d: food left the grid at %v", i, food.Pos)
		}
	}
}

func TestMovingFoodWraps(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 8}
	rng := rand.New(rand.NewSource(2))
	food := NewMovingFood(types.Point{X: 0, Y: 0}, rng)

	for i := 0; i < 500; i++ {
		food.Step(grid, types.EdgeWrap, rng)
		if !grid.Contains(food.Pos) {
			t.Fatalf("step %d: wrapped food out of bounds at %v", i, food.Pos)
		}
	}
}

func TestStaticFoodDoesNotMove(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 8}
	rng := rand.New(rand.NewSource(3))
	food := NewFood(types.Point{X: 5, Y: 4})

	food.Step(grid, types.EdgeWall, rng)
	if food.Pos != (types.Point{X: 5, Y: 4}) {
		t.Errorf("static food moved to %v", food.Pos)
	}
}
