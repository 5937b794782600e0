package game

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"snake-arcade/game/config"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Phase is the top-level state of the game state machine. Only
// PhasePlaying advances ticks; every other phase idles awaiting input.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseHighScores
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseHighScores:
		return "high_scores"
	}
	return "unknown"
}

// Action is a logical input. The core consumes only these; mapping
// from device events lives in the outer layer.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionMute
	ActionShowScores
	ActionCycleDifficulty
	ActionMoveUp
	ActionMoveRight
	ActionMoveDown
	ActionMoveLeft
)

// Game owns the whole gameplay state. Exactly one writer (the tick
// loop) mutates it; there is no locking because there is no
// parallelism.
type Game struct {
	Cfg        *config.Config
	Grid       types.Grid
	Difficulty config.Difficulty

	Snake     *entity.Snake
	Food      entity.Food
	PowerUp   *entity.PowerUp
	Obstacles []types.Point

	Score int
	Lives int
	Ticks int
	Speed float64 // ticks per second
	Phase Phase

	Achievements *Achievements
	Scores       *manager.HighScoreManager
	Stats        *manager.StatsManager

	invincibleUntil int
	boostUntil      int
	baseSpeed       float64 // speed without the boost, keeps accruing per food
	powerUpTimer    int

	prevPhase Phase // phase to return to when high scores are dismissed
	startTime time.Time
	events    []Event

	rng        *rand.Rand
	collisions *manager.CollisionManager
	spawner    *manager.SpawnManager
}

// NewGame builds a game in the menu phase. A nil rng seeds one from
// the clock; tests inject a fixed seed.
func NewGame(cfg *config.Config, difficulty config.Difficulty, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	tier := cfg.Tier(difficulty)
	g := &Game{
		Cfg:          cfg,
		Grid:         cfg.Grid,
		Difficulty:   difficulty,
		Lives:        tier.Lives,
		Speed:        tier.InitialSpeed,
		baseSpeed:    tier.InitialSpeed,
		Phase:        PhaseMenu,
		Achievements: NewAchievements(),
		Scores:       manager.NewHighScoreManager(cfg.HighScoreFile, cfg.HighScoreLimit),
		Stats:        manager.NewStatsManager(cfg.StatsFile),
		rng:          rng,
		collisions:   manager.NewCollisionManager(cfg.Grid, cfg.Edge()),
		spawner:      manager.NewSpawnManager(cfg.Grid, cfg.PowerUps.MovingFoodChance, rng),
	}
	g.Snake = entity.NewSnake(g.Grid)
	g.respawnFood()
	return g
}

// HandleAction applies one logical input to the state machine.
// Ignored inputs (reverse-direction moves, actions invalid in the
// current phase) are dropped silently.
func (g *Game) HandleAction(action Action) {
	switch g.Phase {
	case PhaseMenu:
		switch action {
		case ActionStart:
			g.StartRun()
		case ActionCycleDifficulty:
			g.Difficulty = g.Difficulty.Next()
			tier := g.Cfg.Tier(g.Difficulty)
			g.Lives = tier.Lives
			g.Speed = tier.InitialSpeed
			g.baseSpeed = tier.InitialSpeed
		case ActionShowScores:
			g.showScores()
		}

	case PhasePlaying:
		switch action {
		case ActionPause:
			g.Phase = PhasePaused
		case ActionShowScores:
			g.showScores()
		case ActionMoveUp:
			g.Snake.SetDirection(types.DirUp)
		case ActionMoveRight:
			g.Snake.SetDirection(types.DirRight)
		case ActionMoveDown:
			g.Snake.SetDirection(types.DirDown)
		case ActionMoveLeft:
			g.Snake.SetDirection(types.DirLeft)
		}

	case PhasePaused:
		switch action {
		case ActionPause, ActionStart:
			g.Phase = PhasePlaying
		case ActionShowScores:
			g.showScores()
		}

	case PhaseGameOver:
		switch action {
		case ActionStart:
			g.StartRun()
		case ActionShowScores:
			g.showScores()
		}

	case PhaseHighScores:
		switch action {
		case ActionShowScores, ActionStart:
			g.Phase = g.prevPhase
		}
	}
}

func (g *Game) showScores() {
	g.prevPhase = g.Phase
	g.Phase = PhaseHighScores
}

// StartRun resets the whole game state for a fresh run at the current
// difficulty and starts playing.
func (g *Game) StartRun() {
	tier := g.Cfg.Tier(g.Difficulty)

	g.Score = 0
	g.Lives = tier.Lives
	g.Ticks = 0
	g.Speed = tier.InitialSpeed
	g.baseSpeed = tier.InitialSpeed
	g.PowerUp = nil
	g.powerUpTimer = 0
	g.clearEffects()
	g.events = nil

	g.Snake.Reset(g.Grid)

	g.Obstacles = nil
	if g.Cfg.Challenge.Enabled {
		occupied := make(map[types.Point]bool, g.Snake.Len())
		for _, p := range g.Snake.Body {
			occupied[p] = true
		}
		g.Obstacles = g.spawner.SpawnObstacles(
			g.Cfg.Challenge.MinObstacles, g.Cfg.Challenge.MaxObstacles, occupied)
	}

	g.respawnFood()
	g.startTime = time.Now()
	g.Phase = PhasePlaying
}

// TickInterval returns the current time between ticks, derived from
// the speed (and therefore from difficulty and an active speed boost).
func (g *Game) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / g.Speed)
}

// Update advances the simulation by one tick. It is a no-op outside
// the playing phase.
func (g *Game) Update() {
	if g.Phase != PhasePlaying {
		return
	}
	g.Ticks++

	if g.Food.Moving && g.Ticks%types.MovingFoodStepTicks == 0 {
		g.Food.Step(g.Grid, g.Cfg.Edge(), g.rng)
	}

	newHead := g.Snake.NextHead()
	newHead, kind := g.collisions.ResolveEdge(newHead)
	if kind == types.WallCollision && g.Invincible() {
		// Invincibility carries the snake through the edge.
		newHead = g.Grid.Wrap(newHead)
		kind = types.NoCollision
	}

	eating := kind == types.NoCollision && g.collisions.IsFoodCollision(newHead, g.Food)
	vacatesTail := !eating && g.Snake.WillVacateTail()

	if kind == types.NoCollision && !g.Invincible() {
		kind = g.collisions.CheckSelf(newHead, g.Snake, vacatesTail)
		if kind == types.NoCollision {
			kind = g.collisions.CheckObstacles(newHead, g.Obstacles)
		}
	}
	if kind != types.NoCollision {
		g.handleCollision()
		return
	}

	g.Snake.Advance(newHead)

	if eating {
		g.eatFood()
	}
	if g.PowerUp != nil && newHead == g.PowerUp.Pos {
		g.collectPowerUp()
	}

	g.Snake.TrimTail()
	g.idlePowerUpRoll()
	g.expireEffects()
	g.checkAchievements()
}

func (g *Game) eatFood() {
	tier := g.Cfg.Tier(g.Difficulty)

	g.Score += g.Cfg.Gameplay.BasePoints * tier.ScoreMultiplier
	g.Snake.Grow()
	g.Achievements.ApplesEaten++
	g.baseSpeed = math.Min(g.baseSpeed+g.Cfg.Gameplay.SpeedIncrement, g.Cfg.Gameplay.MaxSpeed)
	g.syncSpeed()
	g.emit(EventEat)

	g.respawnFood()

	if g.PowerUp == nil {
		if pu, ok := g.spawner.MaybeSpawnPowerUp(tier.PowerUpChance, g.occupiedCells(true)); ok {
			g.PowerUp = pu
		}
	}
}

func (g *Game) collectPowerUp() {
	pu := g.PowerUp
	g.PowerUp = nil
	g.powerUpTimer = 0
	g.Achievements.PowerUpsCollected++
	g.emit(EventPowerUp)

	if effect, ok := powerUpEffects[pu.Kind]; ok {
		effect(g)
	}
}

// idlePowerUpRoll is the timer-driven spawn path: every SpawnInterval
// ticks without an active power-up, one chance roll is made.
func (g *Game) idlePowerUpRoll() {
	if g.PowerUp != nil {
		return
	}
	g.powerUpTimer++
	if g.powerUpTimer < g.Cfg.PowerUps.SpawnInterval {
		return
	}
	g.powerUpTimer = 0
	if pu, ok := g.spawner.MaybeSpawnPowerUp(g.Cfg.PowerUps.IdleSpawnChance, g.occupiedCells(true)); ok {
		g.PowerUp = pu
	}
}

// handleCollision consumes a life; at zero lives the run ends and the
// score is recorded, otherwise the snake resets in place and the run
// continues with score and remaining lives intact.
func (g *Game) handleCollision() {
	g.emit(EventCollision)
	g.Lives--
	g.baseSpeed = g.Cfg.Tier(g.Difficulty).InitialSpeed
	g.Speed = g.baseSpeed
	g.clearEffects()
	g.PowerUp = nil
	g.powerUpTimer = 0

	if g.Lives <= 0 {
		g.Lives = 0
		g.Phase = PhaseGameOver
		g.emit(EventGameOver)

		g.Stats.AddGame(g.Difficulty.String(), g.Score, g.Ticks, g.startTime, time.Now())
		_ = g.Stats.SaveToFile()
		if g.Scores.Qualifies(g.Score) {
			_ = g.Scores.Record("Player", g.Score)
		}
		return
	}

	g.Snake.Reset(g.Grid)
	g.respawnFood()
}

// respawnFood places a fresh food on a free cell. A full board skips
// the spawn for this tick; it is never fatal.
func (g *Game) respawnFood() {
	if food, ok := g.spawner.SpawnFood(g.occupiedCells(false)); ok {
		g.Food = food
	}
}

// occupiedCells collects every cell a spawn must avoid. includeFood
// is false while placing the food itself.
func (g *Game) occupiedCells(includeFood bool) map[types.Point]bool {
	occupied := make(map[types.Point]bool, g.Snake.Len()+len(g.Obstacles)+2)
	for _, p := range g.Snake.Body {
		occupied[p] = true
	}
	for _, p := range g.Obstacles {
		occupied[p] = true
	}
	if includeFood {
		occupied[g.Food.Pos] = true
	}
	if g.PowerUp != nil {
		occupied[g.PowerUp.Pos] = true
	}
	return occupied
}
