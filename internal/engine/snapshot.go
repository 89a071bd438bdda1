package engine

import (
	"fmt"

	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/piece"
)

// Snapshot is a read-only copy of the game state for rendering.
type Snapshot struct {
	Cells      [board.Rows][board.Cols]board.Cell
	Piece      [4]piece.Point
	PieceColor board.Cell
	PieceShape piece.Shape
	HasPiece   bool
	// Blocked reports that Piece is the spawn that ended the game.
	Blocked      bool
	Score        int
	Lines        int
	PiecesLocked int
	Phase        Phase
}

// Snapshot returns the current game state. Mutating the result does not
// affect the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Cells:        e.grid.Cells(),
		Piece:        e.active.Cells,
		PieceColor:   e.active.Color,
		PieceShape:   e.active.Shape,
		HasPiece:     e.hasPiece,
		Blocked:      e.blocked,
		Score:        e.score,
		Lines:        e.lines,
		PiecesLocked: e.locked,
		Phase:        e.phase,
	}
}

// CellAt returns the color to draw at (x, y). The active or blocked piece
// takes precedence over the grid.
func (s *Snapshot) CellAt(x, y int) (board.Cell, error) {
	if x < 0 || x >= board.Cols || y < 0 || y >= board.Rows {
		return board.Empty, fmt.Errorf("snapshot cell (%d,%d): %w", x, y, board.ErrOutOfBounds)
	}
	if s.HasPiece || s.Blocked {
		for _, c := range s.Piece {
			if c.X == x && c.Y == y {
				return s.PieceColor, nil
			}
		}
	}
	return s.Cells[y][x], nil
}
