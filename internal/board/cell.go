// Package board provides the playfield grid and its cell states.
package board

// Cell represents the occupancy state of a single grid cell.
type Cell uint8

const (
	// Empty is an unoccupied cell.
	Empty Cell = iota
	Red
	Green
	Blue
	Yellow
	Magenta
	Cyan
	Orange
)

// IsEmpty returns true if the cell holds no block.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// String returns the cell's palette name.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// Colors returns every non-empty cell value.
func Colors() []Cell {
	return []Cell{Red, Green, Blue, Yellow, Magenta, Cyan, Orange}
}
