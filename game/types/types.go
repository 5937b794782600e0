package types

// Point represents a coordinate on the game grid
type Point struct {
	X, Y int
}

// Add returns the point translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

var directionVectors = [4]Point{
	DirUp:    {X: 0, Y: -1},
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
}

// Vector returns the unit step for the direction.
func (d Direction) Vector() Point {
	return directionVectors[d]
}

// Opposite returns the 180-degree reverse of the direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirRight:
		return "RIGHT"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	}
	return "UNKNOWN"
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap remaps p onto the grid modulo its dimensions.
func (g Grid) Wrap(p Point) Point {
	p.X = ((p.X % g.Width) + g.Width) % g.Width
	p.Y = ((p.Y % g.Height) + g.Height) % g.Height
	return p
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// EdgeMode selects how the grid edge is handled.
type EdgeMode int

const (
	EdgeWall EdgeMode = iota // leaving the grid is a collision
	EdgeWrap                 // coordinates wrap around
)

// CollisionKind represents the type of collision
type CollisionKind int

const (
	NoCollision CollisionKind = iota
	WallCollision
	SelfCollision
	ObstacleCollision
)

func (k CollisionKind) String() string {
	switch k {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case ObstacleCollision:
		return "obstacle"
	}
	return "unknown"
}

// Game constants
const (
	InitialSnakeLength  = 3  // Segments after spawn or life-loss reset
	MovingFoodStepTicks = 3  // Ticks between moving-food steps
	MovingFoodTurnMoves = 30 // Moves before moving food re-rolls its heading
)
