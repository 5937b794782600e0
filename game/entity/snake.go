package entity

import (
	"snake-arcade/game/types"
)

// Snake is the player entity: an ordered body on the grid with the
// head at the last index.
type Snake struct {
	Body      []types.Point
	Direction types.Direction // pending heading for the next tick
	LastMoved types.Direction // heading the snake actually advanced with
	growth    int             // tail removals still suppressed by pending growth
}

// NewSnake creates a snake of the initial length centered on the grid,
// heading right.
func NewSnake(grid types.Grid) *Snake {
	s := &Snake{}
	s.Reset(grid)
	return s
}

// Reset restores the spawn state: initial length, centered, heading
// right. Score and lives are owned by the game, not the snake.
func (s *Snake) Reset(grid types.Grid) {
	center := grid.Center()
	body := make([]types.Point, 0, types.InitialSnakeLength)
	for i := types.InitialSnakeLength - 1; i >= 0; i-- {
		body = append(body, types.Point{X: center.X - i, Y: center.Y})
	}
	s.Body = body
	s.Direction = types.DirRight
	s.LastMoved = types.DirRight
	s.growth = 0
}

// Head returns the current head cell.
func (s *Snake) Head() types.Point {
	return s.Body[len(s.Body)-1]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection updates the heading for the next tick. The check is
// against the heading last advanced with, not the pending one: several
// inputs can arrive between two ticks, and two quick quarter turns must
// not compose into a reversal into the neck.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == s.LastMoved.Opposite() {
		return
	}
	s.Direction = dir
}

// NextHead returns the cell the head would move into this tick.
func (s *Snake) NextHead() types.Point {
	return s.Head().Add(s.Direction.Vector())
}

// Advance appends the new head cell and latches the heading it was
// reached with.
func (s *Snake) Advance(newHead types.Point) {
	s.Body = append(s.Body, newHead)
	s.LastMoved = s.Direction
}

// TrimTail removes the tail segment unless a growth credit is pending.
func (s *Snake) TrimTail() {
	if s.growth > 0 {
		s.growth--
		return
	}
	if len(s.Body) > 1 {
		s.Body = s.Body[1:]
	}
}

// Grow suppresses the next tail removal, lengthening the snake by one.
func (s *Snake) Grow() {
	s.growth++
}

// WillVacateTail reports whether the tail cell is freed on a tick
// without food consumption.
func (s *Snake) WillVacateTail() bool {
	return s.growth == 0
}

// Occupies reports whether any body segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if p == part {
			return true
		}
	}
	return false
}

// OccupiesExcludingTail is the self-collision membership check: the
// tail cell is excluded when it is vacated this tick.
func (s *Snake) OccupiesExcludingTail(p types.Point, vacatesTail bool) bool {
	body := s.Body
	if vacatesTail && len(body) > 1 {
		body = body[1:]
	}
	for _, part := range body {
		if p == part {
			return true
		}
	}
	return false
}
