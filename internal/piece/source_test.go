package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSourceUniform(t *testing.T) {
	src := NewRandomSource(12345)

	const draws = 70000
	counts := make(map[Shape]int)
	for i := 0; i < draws; i++ {
		s := src.Next()
		assert.True(t, s.Valid())
		counts[s]++
	}

	expected := draws / len(Shapes())
	for _, shape := range Shapes() {
		assert.InDelta(t, expected, counts[shape], float64(expected)/20, "shape %s", shape)
	}
}

func TestRandomSourceDeterministic(t *testing.T) {
	a := NewRandomSource(777)
	b := NewRandomSource(777)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestSequenceSource(t *testing.T) {
	src := NewSequenceSource(ShapeO, ShapeT)
	assert.Equal(t, []Shape{ShapeO, ShapeT, ShapeO, ShapeT},
		[]Shape{src.Next(), src.Next(), src.Next(), src.Next()})

	empty := NewSequenceSource()
	assert.Equal(t, ShapeI, empty.Next())
}
