package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow occupies every cell of row y with the given color.
func fillRow(t *testing.T, g *Grid, y int, c Cell) {
	t.Helper()
	for x := 0; x < Cols; x++ {
		require.NoError(t, g.Set(x, y, c))
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected string
	}{
		{Empty, "empty"},
		{Red, "red"},
		{Cyan, "cyan"},
		{Orange, "orange"},
		{Cell(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.cell.String())
	}
}

func TestGridZeroValueIsEmpty(t *testing.T) {
	var g Grid
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			assert.False(t, g.Occupied(x, y), "cell (%d,%d) should be empty", x, y)
		}
	}
}

func TestGridBounds(t *testing.T) {
	var g Grid

	tests := []struct {
		name string
		x, y int
		in   bool
	}{
		{"origin", 0, 0, true},
		{"bottom right", Cols - 1, Rows - 1, true},
		{"left of grid", -1, 0, false},
		{"right of grid", Cols, 0, false},
		{"above grid", 0, -1, false},
		{"below grid", 0, Rows, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, g.InBounds(tt.x, tt.y))
			assert.Equal(t, !tt.in, g.Occupied(tt.x, tt.y))

			_, err := g.At(tt.x, tt.y)
			if tt.in {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrOutOfBounds)
			}

			err = g.Set(tt.x, tt.y, Red)
			if tt.in {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrOutOfBounds)
			}
		})
	}
}

func TestGridSet(t *testing.T) {
	var g Grid

	require.NoError(t, g.Set(3, 7, Blue))
	c, err := g.At(3, 7)
	require.NoError(t, err)
	assert.Equal(t, Blue, c)
	assert.True(t, g.Occupied(3, 7))

	assert.ErrorIs(t, g.Set(4, 7, Empty), ErrEmptyCell)
	assert.False(t, g.Occupied(4, 7))
}

func TestGridRowIsFull(t *testing.T) {
	var g Grid

	for x := 0; x < Cols-1; x++ {
		require.NoError(t, g.Set(x, Rows-1, Green))
	}
	assert.False(t, g.RowIsFull(Rows-1), "row with one gap is not full")

	require.NoError(t, g.Set(Cols-1, Rows-1, Green))
	assert.True(t, g.RowIsFull(Rows-1))

	assert.False(t, g.RowIsFull(-1))
	assert.False(t, g.RowIsFull(Rows))
}

func TestGridFullRowsBottomToTop(t *testing.T) {
	var g Grid
	fillRow(t, &g, 5, Red)
	fillRow(t, &g, 19, Red)
	fillRow(t, &g, 12, Red)

	assert.Equal(t, []int{19, 12, 5}, g.FullRows())
}

func TestGridClearAndCompact(t *testing.T) {
	t.Run("single row shifts rows above down", func(t *testing.T) {
		var g Grid
		require.NoError(t, g.Set(2, 16, Yellow))
		require.NoError(t, g.Set(7, 17, Cyan))
		fillRow(t, &g, 18, Red)
		require.NoError(t, g.Set(0, 19, Blue))

		n, err := g.ClearAndCompact([]int{18})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		assert.True(t, g.Occupied(2, 17))
		assert.True(t, g.Occupied(7, 18))
		assert.True(t, g.Occupied(0, 19), "rows below a cleared row stay put")
		assert.False(t, g.Occupied(2, 16))
		assert.False(t, g.RowIsFull(18))
	})

	t.Run("non-adjacent rows preserve order", func(t *testing.T) {
		var g Grid
		// Marker cells identify each surviving row by its column
		require.NoError(t, g.Set(0, 14, Red))
		fillRow(t, &g, 15, Green)
		require.NoError(t, g.Set(1, 16, Red))
		fillRow(t, &g, 17, Green)
		require.NoError(t, g.Set(2, 18, Red))
		fillRow(t, &g, 19, Green)

		n, err := g.ClearAndCompact(g.FullRows())
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		assert.True(t, g.Occupied(0, 17))
		assert.True(t, g.Occupied(1, 18))
		assert.True(t, g.Occupied(2, 19))
		for y := 0; y < 17; y++ {
			for x := 0; x < Cols; x++ {
				assert.False(t, g.Occupied(x, y), "vacated cell (%d,%d) should be empty", x, y)
			}
		}
	})

	t.Run("four rows", func(t *testing.T) {
		var g Grid
		for y := 16; y < Rows; y++ {
			fillRow(t, &g, y, Magenta)
		}
		require.NoError(t, g.Set(4, 15, Orange))

		n, err := g.ClearAndCompact(g.FullRows())
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.True(t, g.Occupied(4, 19))
		assert.Empty(t, g.FullRows())
	})

	t.Run("duplicates counted once", func(t *testing.T) {
		var g Grid
		fillRow(t, &g, 19, Red)

		n, err := g.ClearAndCompact([]int{19, 19})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("nothing to clear", func(t *testing.T) {
		var g Grid
		require.NoError(t, g.Set(0, 19, Red))
		before := g.Cells()

		n, err := g.ClearAndCompact(nil)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, before, g.Cells())
	})

	t.Run("out of range row rejected without mutation", func(t *testing.T) {
		var g Grid
		fillRow(t, &g, 19, Red)
		before := g.Cells()

		_, err := g.ClearAndCompact([]int{19, Rows})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, before, g.Cells())
	})
}

func TestGridCopyIsIndependent(t *testing.T) {
	var g Grid
	require.NoError(t, g.Set(1, 1, Red))

	cells := g.Cells()
	cells[1][1] = Empty
	cells[2][2] = Blue

	assert.True(t, g.Occupied(1, 1))
	assert.False(t, g.Occupied(2, 2))
}

func TestGridString(t *testing.T) {
	var g Grid
	require.NoError(t, g.Set(0, 0, Red))
	require.NoError(t, g.Set(Cols-1, Rows-1, Red))

	lines := g.String()
	assert.Len(t, lines, Rows*(Cols+1))
	assert.Equal(t, "#.........\n", lines[:Cols+1])
	assert.Equal(t, ".........#\n", lines[len(lines)-(Cols+1):])
}
