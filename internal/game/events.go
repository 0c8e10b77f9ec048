package game

// EventKind enumerates the discrete notifications the simulation raises for
// the presentation layer (sound cues, flashes, screen transitions).
type EventKind uint8

const (
	EventPelletEaten EventKind = iota
	EventPowerPelletEaten
	EventGhostEaten
	EventFruitSpawned
	EventFruitEaten
	EventLifeLost
	EventGameOver
	EventLevelCleared
	EventBonusLife
)

func (k EventKind) String() string {
	switch k {
	case EventPelletEaten:
		return "pellet-eaten"
	case EventPowerPelletEaten:
		return "power-pellet-eaten"
	case EventGhostEaten:
		return "ghost-eaten"
	case EventFruitSpawned:
		return "fruit-spawned"
	case EventFruitEaten:
		return "fruit-eaten"
	case EventLifeLost:
		return "life-lost"
	case EventGameOver:
		return "game-over"
	case EventLevelCleared:
		return "level-cleared"
	case EventBonusLife:
		return "bonus-life"
	default:
		return "unknown"
	}
}

// Event is one discrete notification. Points carries the score delta where
// one applies (ghost combos, fruit, level bonus); Ghost is set for
// ghost-eaten events; Level is set for level-cleared events.
type Event struct {
	Kind   EventKind
	Points int
	Ghost  GhostID
	Level  int
}
