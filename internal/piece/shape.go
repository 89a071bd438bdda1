// Package piece provides the tetromino catalog and the falling piece.
package piece

import "github.com/samdwyer/blockfall/internal/board"

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeZ
	ShapeS
	ShapeT
	ShapeO

	shapeCount = iota
)

// Point is an (x, y) grid coordinate. y grows downward.
type Point struct {
	X, Y int
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// shapeDef holds the canonical layout and color of a shape.
type shapeDef struct {
	name    string
	offsets [4]Point
	color   board.Cell
}

var catalog = [shapeCount]shapeDef{
	ShapeI: {"I", [4]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, board.Cyan},
	ShapeJ: {"J", [4]Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, board.Blue},
	ShapeL: {"L", [4]Point{{2, 0}, {0, 1}, {1, 1}, {2, 1}}, board.Orange},
	ShapeZ: {"Z", [4]Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, board.Red},
	ShapeS: {"S", [4]Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, board.Green},
	ShapeT: {"T", [4]Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, board.Magenta},
	ShapeO: {"O", [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, board.Yellow},
}

// Valid returns true if s names a catalog shape.
func (s Shape) Valid() bool {
	return s >= 0 && s < shapeCount
}

// String returns the shape's letter.
func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return catalog[s].name
}

// Offsets returns the shape's cell offsets relative to its spawn origin.
func Offsets(s Shape) [4]Point {
	if !s.Valid() {
		return [4]Point{}
	}
	return catalog[s].offsets
}

// ColorFor returns the shape's canonical color.
func ColorFor(s Shape) board.Cell {
	if !s.Valid() {
		return board.Empty
	}
	return catalog[s].color
}

// Shapes returns all seven shapes in catalog order.
func Shapes() []Shape {
	shapes := make([]Shape, shapeCount)
	for i := range shapes {
		shapes[i] = Shape(i)
	}
	return shapes
}
