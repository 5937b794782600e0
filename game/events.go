package game

// EventKind identifies a discrete gameplay event. The rendering and
// audio layers key off these; the core never depends on how they are
// handled.
type EventKind int

const (
	EventEat EventKind = iota
	EventPowerUp
	EventCollision
	EventGameOver
	EventAchievement
)

func (k EventKind) String() string {
	switch k {
	case EventEat:
		return "eat"
	case EventPowerUp:
		return "power_up"
	case EventCollision:
		return "collision"
	case EventGameOver:
		return "game_over"
	case EventAchievement:
		return "achievement"
	}
	return "unknown"
}

// Event is one discrete gameplay occurrence, stamped with the tick it
// happened on.
type Event struct {
	Tick int
	Kind EventKind
}

func (g *Game) emit(kind EventKind) {
	g.events = append(g.events, Event{Tick: g.Ticks, Kind: kind})
}

// DrainEvents returns and clears the events accumulated since the last
// drain. Called once per frame by the loop.
func (g *Game) DrainEvents() []Event {
	events := g.events
	g.events = nil
	return events
}
