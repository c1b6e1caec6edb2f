package core

// RuntimeConfig is the configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the platform-visible status of a game, returned by
// Game.State().
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score seen, including the persisted record
	GameOver  bool // Whether the current run has ended
}

// Event is a gameplay occurrence the presentation layer reacts to, for
// example by playing a sound.
type Event int

const (
	EventPickup Event = iota // a circle was collected
	EventCrash               // a car hit a box of its own color
	EventMiss                // an uncollected circle fell off-screen
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPickup:
		return "pickup"
	case EventCrash:
		return "crash"
	case EventMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
