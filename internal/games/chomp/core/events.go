package core

// EventKind identifies a simulation event emitted by Update.
type EventKind int

const (
	// EventScore carries a point delta (pellet, power pellet or capture).
	EventScore EventKind = iota
	// EventLifeLost fires when a pursuer catches the player outside of
	// frightened mode. The owner decides when lives run out.
	EventLifeLost
	// EventLevelClear fires exactly once, in the update that consumes
	// the final pellet.
	EventLevelClear
)

// Event is a single simulation event. Update returns the events of one
// step in the order they occurred; the caller processes them after the
// step completes, so no callback can reenter the world mid-update.
type Event struct {
	Kind   EventKind
	Points int
}

func (k EventKind) String() string {
	switch k {
	case EventScore:
		return "score"
	case EventLifeLost:
		return "life_lost"
	case EventLevelClear:
		return "level_clear"
	default:
		return "unknown"
	}
}
