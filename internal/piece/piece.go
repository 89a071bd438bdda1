package piece

import (
	"errors"
	"fmt"

	"github.com/samdwyer/blockfall/internal/board"
)

var (
	// ErrSpawnOutOfBounds is returned when a shape does not fit inside the
	// grid at the requested origin.
	ErrSpawnOutOfBounds = errors.New("spawn position out of bounds")
	// ErrSpawnBlocked is returned when a freshly spawned piece overlaps
	// blocks already in the grid.
	ErrSpawnBlocked = errors.New("spawn position blocked")
	// ErrUnknownShape is returned when spawning a shape not in the catalog.
	ErrUnknownShape = errors.New("unknown shape")
	// ErrOverlap is returned when locking a piece whose cells are not free.
	ErrOverlap = errors.New("piece overlaps grid")
)

// Piece is the falling tetromino: four absolute cells and a color.
// Transforms move either all four cells or none of them.
type Piece struct {
	Cells [4]Point
	Color board.Cell
	Shape Shape
}

// Spawn creates a piece of the given shape with its offsets applied to
// origin. A shape that leaves the grid is rejected outright. A shape that
// overlaps existing blocks is returned together with ErrSpawnBlocked.
func Spawn(g *board.Grid, origin Point, shape Shape) (Piece, error) {
	if !shape.Valid() {
		return Piece{}, fmt.Errorf("spawn %d: %w", shape, ErrUnknownShape)
	}

	p := Piece{Color: ColorFor(shape), Shape: shape}
	for i, off := range Offsets(shape) {
		p.Cells[i] = origin.Add(off)
	}

	for _, c := range p.Cells {
		if !g.InBounds(c.X, c.Y) {
			return Piece{}, fmt.Errorf("spawn %s at (%d,%d): %w", shape, origin.X, origin.Y, ErrSpawnOutOfBounds)
		}
	}
	for _, c := range p.Cells {
		if g.Occupied(c.X, c.Y) {
			return p, fmt.Errorf("spawn %s at (%d,%d): %w", shape, origin.X, origin.Y, ErrSpawnBlocked)
		}
	}

	return p, nil
}

// Collides returns true if pt lies outside the grid or on an occupied cell.
// Every transform is gated by this predicate.
func Collides(g *board.Grid, pt Point) bool {
	if pt.X < 0 || pt.X >= board.Cols || pt.Y < 0 || pt.Y >= board.Rows {
		return true
	}
	return g.Occupied(pt.X, pt.Y)
}

// MoveDown shifts the piece one row down. It returns false, leaving the
// piece untouched, if any cell would collide.
func (p *Piece) MoveDown(g *board.Grid) bool {
	return p.translate(g, 0, 1)
}

// MoveLeft shifts the piece one column left.
func (p *Piece) MoveLeft(g *board.Grid) bool {
	return p.translate(g, -1, 0)
}

// MoveRight shifts the piece one column right.
func (p *Piece) MoveRight(g *board.Grid) bool {
	return p.translate(g, 1, 0)
}

// RotateClockwise turns the piece 90 degrees about its centroid.
// There is no wall kick: a rotation that collides simply fails.
func (p *Piece) RotateClockwise(g *board.Grid) bool {
	return p.rotate(g, func(rel Point) Point {
		return Point{X: rel.Y, Y: -rel.X}
	})
}

// RotateCounterClockwise turns the piece 90 degrees the other way.
func (p *Piece) RotateCounterClockwise(g *board.Grid) bool {
	return p.rotate(g, func(rel Point) Point {
		return Point{X: -rel.Y, Y: rel.X}
	})
}

// Centroid returns the integer-truncated average of the piece's cells.
func (p *Piece) Centroid() Point {
	var sum Point
	for _, c := range p.Cells {
		sum = sum.Add(c)
	}
	return Point{X: sum.X / len(p.Cells), Y: sum.Y / len(p.Cells)}
}

// translate moves every cell by (dx, dy) if none collides.
func (p *Piece) translate(g *board.Grid, dx, dy int) bool {
	var next [4]Point
	for i, c := range p.Cells {
		next[i] = Point{X: c.X + dx, Y: c.Y + dy}
	}
	return p.commit(g, next)
}

// rotate applies turn to each cell relative to the centroid.
func (p *Piece) rotate(g *board.Grid, turn func(rel Point) Point) bool {
	center := p.Centroid()
	var next [4]Point
	for i, c := range p.Cells {
		rel := Point{X: c.X - center.X, Y: c.Y - center.Y}
		next[i] = turn(rel).Add(center)
	}
	return p.commit(g, next)
}

// commit replaces all cells with next, or nothing if any cell collides.
func (p *Piece) commit(g *board.Grid, next [4]Point) bool {
	for _, c := range next {
		if Collides(g, c) {
			return false
		}
	}
	p.Cells = next
	return true
}

// Lock writes the piece's cells into the grid.
func (p *Piece) Lock(g *board.Grid) error {
	for _, c := range p.Cells {
		if Collides(g, c) {
			return fmt.Errorf("lock %s at (%d,%d): %w", p.Shape, c.X, c.Y, ErrOverlap)
		}
	}
	for _, c := range p.Cells {
		if err := g.Set(c.X, c.Y, p.Color); err != nil {
			return fmt.Errorf("lock %s: %w", p.Shape, err)
		}
	}
	return nil
}
