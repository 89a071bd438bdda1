// Package engine runs the falling-block simulation: gravity ticks, player
// commands, locking, line clears and scoring.
package engine

// Phase represents the lifecycle phase of a game.
type Phase int

const (
	// PhaseFalling is the normal phase: the active piece falls each tick.
	PhaseFalling Phase = iota
	// PhaseGameOver means a new piece could not spawn.
	PhaseGameOver
	// PhaseExited means the player asked to quit.
	PhaseExited
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseGameOver:
		return "game_over"
	case PhaseExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Terminal returns true if the phase accepts no further ticks.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseExited
}
