package engine

// Command is a discrete player input.
type Command int

const (
	// CommandNone does nothing. Unmapped input translates to it.
	CommandNone Command = iota
	MoveLeft
	MoveRight
	SoftDrop
	RotateCW
	RotateCCW
	Exit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case SoftDrop:
		return "soft_drop"
	case RotateCW:
		return "rotate_cw"
	case RotateCCW:
		return "rotate_ccw"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}
