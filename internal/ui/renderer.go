package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/engine"
	"github.com/samdwyer/blockfall/internal/gamedata"
)

const (
	// Each grid cell is drawn two terminal columns wide to look square
	cellWidth = 2

	wellWidth  = board.Cols*cellWidth + 2 // including borders
	wellHeight = board.Rows + 2
	panelGap   = 3
	panelWidth = 18
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen and palette.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws one frame from a snapshot.
func (r *Renderer) Render(snap engine.Snapshot) {
	r.screen.Clear()

	width, height := r.screen.Size()
	left, top := layoutOrigin(width, height)

	r.drawWell(left, top, &snap)
	r.drawPanel(left+wellWidth+panelGap, top, &snap)

	if snap.Phase == engine.PhaseGameOver {
		r.drawBanner(left, top+wellHeight/2, "GAME OVER")
	}

	r.screen.Show()
}

// layoutOrigin centers the well and side panel in the terminal.
func layoutOrigin(width, height int) (left, top int) {
	total := wellWidth + panelGap + panelWidth
	left = (width - total) / 2
	top = (height - wellHeight) / 2
	return max(left, 0), max(top, 0)
}

// drawWell draws the bordered playfield with locked cells and the active piece.
func (r *Renderer) drawWell(left, top int, snap *engine.Snapshot) {
	border := tcell.StyleDefault.Foreground(r.palette.Border)
	bottom := top + wellHeight - 1
	right := left + wellWidth - 1

	for y := top; y <= bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, border)
		r.screen.SetContent(right, y, tcell.RuneVLine, border)
	}
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, border)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, border)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, border)
	r.screen.SetContent(right, top, tcell.RuneURCorner, border)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, border)

	for y := 0; y < board.Rows; y++ {
		for x := 0; x < board.Cols; x++ {
			c, err := snap.CellAt(x, y)
			if err != nil {
				continue
			}
			glyph, style := r.cellStyle(c)
			sx := left + 1 + x*cellWidth
			for i := 0; i < cellWidth; i++ {
				r.screen.SetContent(sx+i, top+1+y, glyph, style)
			}
		}
	}
}

// cellStyle returns the glyph and style for a cell.
func (r *Renderer) cellStyle(c board.Cell) (rune, tcell.Style) {
	if c.IsEmpty() {
		return ' ', tcell.StyleDefault.Background(r.palette.Background)
	}
	return r.palette.Glyph, tcell.StyleDefault.
		Foreground(r.palette.Color(c)).
		Background(r.palette.Background)
}

// drawPanel draws score and controls beside the well.
func (r *Renderer) drawPanel(left, top int, snap *engine.Snapshot) {
	lines := panelLines(snap)
	for i, line := range lines {
		r.RenderMessage(line, left, top+1+i)
	}
}

// panelLines returns the side panel text for a snapshot.
func panelLines(snap *engine.Snapshot) []string {
	return []string{
		fmt.Sprintf("Score  %d", snap.Score),
		fmt.Sprintf("Lines  %d", snap.Lines),
		fmt.Sprintf("Pieces %d", snap.PiecesLocked),
		"",
		"←/→   move",
		"↓     soft drop",
		"↑ x   rotate cw",
		"z     rotate ccw",
		"q     quit",
	}
}

// drawBanner centers msg horizontally inside the well on row y.
func (r *Renderer) drawBanner(left, y int, msg string) {
	x := left + (wellWidth-len([]rune(msg)))/2
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// RenderMessage writes msg starting at (x, y).
func (r *Renderer) RenderMessage(msg string, x, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
