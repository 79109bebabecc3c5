package boolean

import (
	"testing"

	"github.com/mikenye/geom2d/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float64) Path {
	return Path{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

// rotated returns path's vertices starting from index i, preserving order —
// boundary-scenario expectations describe a cyclic sequence, not a fixed
// starting vertex.
func rotated(path Path, i int) Path {
	out := make(Path, len(path))
	for k := range path {
		out[k] = path[(i+k)%len(path)]
	}
	return out
}

func assertPathEqualsCyclic(t *testing.T, want, got Path) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		if got[i].X == want[0].X && got[i].Y == want[0].Y {
			rotatedGot := rotated(got, i)
			for k := range want {
				assert.InDelta(t, want[k].X, rotatedGot[k].X, 1e-6)
				assert.InDelta(t, want[k].Y, rotatedGot[k].Y, 1e-6)
			}
			return
		}
	}
	t.Fatalf("no vertex in %v matches start of expected path %v", got, want)
}

func TestRun_DisjointSquaresUnion(t *testing.T) {
	a := Polygon{Paths: []Path{square(0, 0, 1, 1)}}
	b := Polygon{Paths: []Path{square(2, 0, 3, 1)}}

	result, err := Run(a, b, Union, options.WithEpsilon(0.001))
	require.NoError(t, err)
	require.Len(t, result.Paths, 2)
}

func TestRun_IdenticalSquaresIntersect(t *testing.T) {
	sq := Polygon{Paths: []Path{square(0, 0, 2, 2)}}

	result, err := Run(sq, sq, Intersect, options.WithEpsilon(0.001))
	require.NoError(t, err)
	require.Len(t, result.Paths, 1)
	assertPathEqualsCyclic(t, square(0, 0, 2, 2), result.Paths[0])
}

func TestRun_SquareWithHoleSubtract(t *testing.T) {
	a := Polygon{Paths: []Path{square(0, 0, 4, 4)}}
	b := Polygon{Paths: []Path{square(1, 1, 3, 3)}}

	result, err := Run(a, b, Subtract, options.WithEpsilon(0.001))
	require.NoError(t, err)
	require.Len(t, result.Paths, 2)
}

func TestRun_EdgeSharingSquaresUnion(t *testing.T) {
	a := Polygon{Paths: []Path{square(0, 0, 2, 2)}}
	b := Polygon{Paths: []Path{square(2, 0, 4, 2)}}

	result, err := Run(a, b, Union, options.WithEpsilon(0.001))
	require.NoError(t, err)
	require.Len(t, result.Paths, 1)
	assertPathEqualsCyclic(t, square(0, 0, 4, 2), result.Paths[0])
}

func TestRun_CrossingSquaresXor(t *testing.T) {
	a := Polygon{Paths: []Path{square(0, 0, 2, 2)}}
	b := Polygon{Paths: []Path{{
		{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3},
	}}}

	result, err := Run(a, b, Xor, options.WithEpsilon(0.001))
	require.NoError(t, err)
	assert.Len(t, result.Paths, 2)
}

func TestRun_DegenerateInputCollapsesToEmpty(t *testing.T) {
	a := Polygon{Paths: []Path{{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0},
	}}}
	b := Polygon{}

	result, err := Run(a, b, Union, options.WithEpsilon(0.001))
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestRun_CommutativeUnion(t *testing.T) {
	a := Polygon{Paths: []Path{square(0, 0, 2, 2)}}
	b := Polygon{Paths: []Path{square(1, 1, 3, 3)}}

	ab, err := Run(a, b, Union, options.WithEpsilon(0.001))
	require.NoError(t, err)
	ba, err := Run(b, a, Union, options.WithEpsilon(0.001))
	require.NoError(t, err)

	assert.Equal(t, len(ab.Paths), len(ba.Paths))
}

func TestRun_SelfSubtractIsEmpty(t *testing.T) {
	sq := Polygon{Paths: []Path{square(0, 0, 2, 2)}}

	result, err := Run(sq, sq, Subtract, options.WithEpsilon(0.001))
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestBboxesDisjoint(t *testing.T) {
	a := Polygon{Paths: []Path{square(0, 0, 1, 1)}}
	b := Polygon{Paths: []Path{square(5, 5, 6, 6)}}
	c := Polygon{Paths: []Path{square(0.5, 0.5, 1.5, 1.5)}}

	assert.True(t, bboxesDisjoint(a, b))
	assert.False(t, bboxesDisjoint(a, c))
}

func TestTrivialShortcut(t *testing.T) {
	sq := Polygon{Paths: []Path{square(0, 0, 1, 1)}}
	empty := Polygon{}

	result, ok := trivialShortcut(sq, empty, Union)
	require.True(t, ok)
	require.Len(t, result.Paths, 1)
	assert.True(t, isClockwise(result.Paths[0]), "sole surviving path normalizes to an outer (clockwise) boundary")
	assert.ElementsMatch(t, sq.Paths[0], result.Paths[0], "shortcut only reorients, never changes the vertex set")

	result, ok = trivialShortcut(empty, empty, Intersect)
	require.True(t, ok)
	assert.True(t, result.IsEmpty())

	_, ok = trivialShortcut(sq, sq, Union)
	assert.False(t, ok, "neither input empty: no shortcut applies")
}
