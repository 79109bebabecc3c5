package boolean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointCmp(t *testing.T) {
	tests := map[string]struct {
		a, b     Point
		expected int
	}{
		"same point":      {a: Point{X: 1, Y: 2}, b: Point{X: 1, Y: 2}, expected: 0},
		"less by x":       {a: Point{X: 0, Y: 5}, b: Point{X: 1, Y: 0}, expected: -1},
		"greater by x":    {a: Point{X: 2, Y: 0}, b: Point{X: 1, Y: 9}, expected: 1},
		"less by y tie x": {a: Point{X: 1, Y: 0}, b: Point{X: 1, Y: 1}, expected: -1},
		"greater by y":    {a: Point{X: 1, Y: 2}, b: Point{X: 1, Y: 1}, expected: 1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, pointCmp(&tc.a, &tc.b))
		})
	}
}

func TestRasterise(t *testing.T) {
	tests := map[string]struct {
		v, eps, expected float64
	}{
		"snaps to grid":      {v: 1.00049, eps: 0.001, expected: 1.0},
		"near zero snaps":    {v: 0.0004, eps: 0.001, expected: 0},
		"eps disabled":       {v: 1.23456789, eps: 0, expected: 1.23456789},
		"negative near zero": {v: -0.0002, eps: 0.001, expected: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, rasterise(tc.v, tc.eps), 1e-12)
		})
	}
}

func TestPointRegistry_CanonicalisesIdenticalCoordinates(t *testing.T) {
	a := newArena(4)
	r := newPointRegistry(a, 0.001)

	p1 := r.get(1.0, 1.0, "first")
	p2 := r.get(1.00049, 1.00049, "second") // rounds to the same grid cell
	p3 := r.get(2.0, 2.0, "third")

	assert.Same(t, p1, p2, "coordinates within epsilon must share identity")
	assert.NotSame(t, p1, p3)
	assert.Equal(t, "first", p1.Tag, "first writer wins the tag")
}

func TestPointRegistry_EpsilonDisabledUsesExactBits(t *testing.T) {
	a := newArena(4)
	r := newPointRegistry(a, 0)

	p1 := r.get(1.0, 1.0, nil)
	p2 := r.get(1.0, 1.0, nil)
	p3 := r.get(1.0000000001, 1.0, nil)

	assert.Same(t, p1, p2)
	assert.NotSame(t, p1, p3)
}
