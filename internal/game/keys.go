package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/blockfall/internal/engine"
)

// CommandForKey maps a key press to an engine command. Unbound keys map to
// engine.CommandNone.
func CommandForKey(ev *tcell.EventKey) engine.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.Exit
	case tcell.KeyLeft:
		return engine.MoveLeft
	case tcell.KeyRight:
		return engine.MoveRight
	case tcell.KeyDown:
		return engine.SoftDrop
	case tcell.KeyUp:
		return engine.RotateCW
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'x', 'X':
			return engine.RotateCW
		case 'z', 'Z':
			return engine.RotateCCW
		case 'q', 'Q':
			return engine.Exit
		}
	}
	return engine.CommandNone
}
