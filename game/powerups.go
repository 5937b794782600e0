package game

import (
	"math"

	"snake-arcade/game/entity"
)

// powerUpEffects is the registration table for the closed power-up
// catalog. Adding a variant means adding an entity.PowerUpKind and an
// entry here; the exhaustiveness test keeps the two in sync.
var powerUpEffects = map[entity.PowerUpKind]func(*Game){
	entity.SpeedBoost: func(g *Game) {
		g.boostUntil = g.Ticks + g.Cfg.PowerUps.SpeedBoostTicks
		g.syncSpeed()
	},
	entity.Invincibility: func(g *Game) {
		g.invincibleUntil = g.Ticks + g.Cfg.PowerUps.InvincibilityTicks
	},
	entity.ExtraPoints: func(g *Game) {
		// Instant effect, no duration.
		g.Score += g.Cfg.PowerUps.ExtraPoints
	},
}

// Invincible reports whether the invincibility effect is active.
func (g *Game) Invincible() bool {
	return g.invincibleUntil > 0 && g.Ticks < g.invincibleUntil
}

// SpeedBoosted reports whether a speed boost is active.
func (g *Game) SpeedBoosted() bool {
	return g.boostUntil > 0 && g.Ticks < g.boostUntil
}

// syncSpeed recomputes the effective speed from the base speed and any
// active boost. The base keeps accruing per food even when the boosted
// speed is pinned at the maximum, so the boost reverts to the speed the
// same food would have produced on its own.
func (g *Game) syncSpeed() {
	g.Speed = g.baseSpeed
	if g.SpeedBoosted() {
		g.Speed = math.Min(g.baseSpeed+g.Cfg.PowerUps.SpeedBoostAmount, g.Cfg.Gameplay.MaxSpeed)
	}
}

// expireEffects reverts timed effects whose tick budget ran out.
func (g *Game) expireEffects() {
	if g.boostUntil > 0 && g.Ticks >= g.boostUntil {
		g.boostUntil = 0
		g.syncSpeed()
	}
	if g.invincibleUntil > 0 && g.Ticks >= g.invincibleUntil {
		g.invincibleUntil = 0
	}
}

// clearEffects drops all timed effects, used on life-loss resets.
// Callers reset the speed themselves.
func (g *Game) clearEffects() {
	g.boostUntil = 0
	g.invincibleUntil = 0
}
