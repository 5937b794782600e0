package game

// Achievement is one entry of the closed achievement catalog. The
// condition is evaluated once per tick; on first success the reward is
// added to the score.
type Achievement struct {
	Name        string
	Description string
	Reward      int
	cond        func(*Game) bool
}

var achievementCatalog = []Achievement{
	{
		Name:        "Snake Charmer",
		Description: "Grow snake to 20 segments",
		Reward:      50,
		cond:        func(g *Game) bool { return g.Snake.Len() >= 20 },
	},
	{
		Name:        "Speed Demon",
		Description: "Reach maximum speed",
		Reward:      30,
		cond:        func(g *Game) bool { return g.Speed >= g.Cfg.Gameplay.MaxSpeed },
	},
	{
		Name:        "Power-Up Collector",
		Description: "Collect 10 power-ups",
		Reward:      40,
		cond:        func(g *Game) bool { return g.Achievements.PowerUpsCollected >= 10 },
	},
	{
		Name:        "Survival Expert",
		Description: "Score 50 without losing a life",
		Reward:      25,
		cond: func(g *Game) bool {
			return g.Score >= 50 && g.Lives == g.Cfg.Tier(g.Difficulty).Lives
		},
	},
}

// Achievements tracks session-wide progress counters and which catalog
// entries have been unlocked. It survives restarts within a session.
type Achievements struct {
	ApplesEaten       int
	PowerUpsCollected int
	unlocked          map[string]bool
}

func NewAchievements() *Achievements {
	return &Achievements{
		unlocked: make(map[string]bool),
	}
}

// checkAchievements unlocks any catalog entry whose condition holds,
// crediting its reward.
func (g *Game) checkAchievements() {
	for _, ach := range achievementCatalog {
		if g.Achievements.unlocked[ach.Name] {
			continue
		}
		if ach.cond(g) {
			g.Achievements.unlocked[ach.Name] = true
			g.Score += ach.Reward
			g.emit(EventAchievement)
		}
	}
}

// UnlockedAchievements returns the unlocked entries in catalog order.
func (g *Game) UnlockedAchievements() []Achievement {
	unlocked := make([]Achievement, 0, len(g.Achievements.unlocked))
	for _, ach := range achievementCatalog {
		if g.Achievements.unlocked[ach.Name] {
			unlocked = append(unlocked, ach)
		}
	}
	return unlocked
}
