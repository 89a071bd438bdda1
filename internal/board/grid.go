package board

import (
	"errors"
	"fmt"
)

const (
	// Playfield dimensions
	Rows = 20
	Cols = 10
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrEmptyCell is returned when Set is asked to write an empty cell.
	ErrEmptyCell = errors.New("cannot set an empty cell")
)

// Grid is the fixed-size occupancy matrix. Row 0 is the top of the playfield.
// The zero value is an empty grid. Grid is a value type: copying it copies
// every cell.
type Grid struct {
	cells [Rows][Cols]Cell
}

// InBounds returns true if the coordinate indexes a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// Occupied returns true if the cell at (x, y) holds a block.
// Coordinates outside the grid count as occupied so that callers treat a
// boundary like any other obstacle.
func (g *Grid) Occupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return !g.cells[y][x].IsEmpty()
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Empty, fmt.Errorf("at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return g.cells[y][x], nil
}

// Set writes a block into the grid. It is used when locking a piece.
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	if c.IsEmpty() {
		return fmt.Errorf("set (%d,%d): %w", x, y, ErrEmptyCell)
	}
	g.cells[y][x] = c
	return nil
}

// RowIsFull returns true if every cell in row y holds a block.
// Rows outside the grid are never full.
func (g *Grid) RowIsFull(y int) bool {
	if y < 0 || y >= Rows {
		return false
	}
	for _, c := range g.cells[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, scanning bottom to top.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := Rows - 1; y >= 0; y-- {
		if g.RowIsFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearAndCompact removes the given rows in a single pass and returns how
// many were removed. Remaining rows keep their relative order and settle at
// the bottom; vacated rows at the top are left empty. Duplicate indices are
// counted once.
func (g *Grid) ClearAndCompact(rows []int) (int, error) {
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y < 0 || y >= Rows {
			return 0, fmt.Errorf("clear row %d: %w", y, ErrOutOfBounds)
		}
		remove[y] = true
	}
	if len(remove) == 0 {
		return 0, nil
	}

	// Rebuild from the bottom up into a fresh grid, skipping removed rows
	var next [Rows][Cols]Cell
	dst := Rows - 1
	for y := Rows - 1; y >= 0; y-- {
		if remove[y] {
			continue
		}
		next[dst] = g.cells[y]
		dst--
	}
	g.cells = next

	return len(remove), nil
}

// Cells returns a copy of the cell matrix.
func (g *Grid) Cells() [Rows][Cols]Cell {
	return g.cells
}

// String renders the grid as text, one line per row, '.' for empty cells
// and '#' for blocks. Useful in test failure output.
func (g *Grid) String() string {
	buf := make([]byte, 0, Rows*(Cols+1))
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if g.cells[y][x].IsEmpty() {
				buf = append(buf, '.')
			} else {
				buf = append(buf, '#')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
