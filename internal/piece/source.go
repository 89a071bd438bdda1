package piece

import (
	"math/rand"
	"time"
)

// Source supplies the shape of each newly spawned piece.
type Source interface {
	Next() Shape
}

// RandomSource picks every shape independently and uniformly.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded with seed.
// A seed of 0 means a time-based seed will be used.
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen shape.
func (s *RandomSource) Next() Shape {
	return Shape(s.rng.Intn(shapeCount))
}

// SequenceSource replays a fixed list of shapes, cycling when exhausted.
type SequenceSource struct {
	shapes []Shape
	next   int
}

// NewSequenceSource creates a source that yields shapes in order.
// An empty list yields ShapeI forever.
func NewSequenceSource(shapes ...Shape) *SequenceSource {
	return &SequenceSource{shapes: shapes}
}

// Next returns the next shape in the sequence.
func (s *SequenceSource) Next() Shape {
	if len(s.shapes) == 0 {
		return ShapeI
	}
	shape := s.shapes[s.next%len(s.shapes)]
	s.next++
	return shape
}
