// Package engine runs the snake simulation: one grid, one snake and one
// food item advanced a tick at a time under a small run state machine.
package engine

// RunState is the engine's position in the run state machine.
type RunState int

const (
	// StateIdle is the initial state; nothing is scheduled.
	StateIdle RunState = iota
	// StateRunning means the tick source drives the game.
	StateRunning
	// StatePaused keeps the tick source firing but skips the tick body.
	StatePaused
	// StateGameOver is entered on a collision and left only through Reset.
	StateGameOver
)

// String returns a human-readable state name.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Started reports whether the game has been started and not stopped.
func (s RunState) Started() bool {
	return s == StateRunning || s == StatePaused
}
