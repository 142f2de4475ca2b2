package core

// RuntimeConfig contains configuration passed to the session by the platform.
type RuntimeConfig struct {
	ScreenW  int   // Output width (terminal cells or window pixels)
	ScreenH  int   // Output height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the part of the session state the platform cares about.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score in this process
	GameOver  bool // Whether the run has ended
}

// Event is a one-shot signal raised during a tick, consumed by audio and
// the platform layer.
type Event int

const (
	EventJump Event = iota + 1
	EventHit
	EventPoint
	EventRestart
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventHit:
		return "hit"
	case EventPoint:
		return "point"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// StepResult is returned by Session.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the event was raised during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
