package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current difficulty level
	Started  bool // Whether a run is in progress or finished (false on the title screen)
	GameOver bool // Whether the run has ended
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventDoubleJump
	EventCollect
	EventStomp
	EventPowerup
	EventLevelUp
	EventGameOver
	EventStart
	EventRestart
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventDoubleJump:
		return "double_jump"
	case EventCollect:
		return "collect"
	case EventStomp:
		return "stomp"
	case EventPowerup:
		return "powerup"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventStart:
		return "start"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a gameplay event emitted by a game step.
// Value carries kind-specific data (points, new level).
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
