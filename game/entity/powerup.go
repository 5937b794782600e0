package entity

import (
	"snake-arcade/game/types"
)

// PowerUpKind is the closed set of power-up variants.
type PowerUpKind int

const (
	SpeedBoost PowerUpKind = iota
	Invincibility
	ExtraPoints

	NumPowerUpKinds // count, keep last
)

func (k PowerUpKind) String() string {
	switch k {
	case SpeedBoost:
		return "speed_boost"
	case Invincibility:
		return "invincibility"
	case ExtraPoints:
		return "extra_points"
	}
	return "unknown"
}

// PowerUp is a collectible modifier placed on the grid. At most one is
// on the board at a time.
type PowerUp struct {
	Pos  types.Point
	Kind PowerUpKind
}
