// Package game provides the terminal application around the engine: the
// event loop, key bindings, dialogs, persistence and sound.
package game

// Mode is which screen the player is looking at.
type Mode int

const (
	// ModePlay shows the board and routes keys to the engine.
	ModePlay Mode = iota
	// ModeConfirmNew asks before throwing away the current game.
	ModeConfirmNew
	// ModeGameOver reports the final score.
	ModeGameOver
	// ModeOptions edits difficulty and board size and lists high scores.
	ModeOptions
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "play"
	case ModeConfirmNew:
		return "confirm_new"
	case ModeGameOver:
		return "game_over"
	case ModeOptions:
		return "options"
	default:
		return "unknown"
	}
}
