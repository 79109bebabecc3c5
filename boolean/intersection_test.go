package boolean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIntersection_CrossingDiagonals(t *testing.T) {
	a := newArena(8)
	r := newPointRegistry(a, 0.001)

	e1, ok := newEdge(a, r.get(0, 0, nil), r.get(4, 4, nil), 0)
	require.True(t, ok)
	e2, ok := newEdge(a, r.get(0, 4, nil), r.get(4, 0, nil), 1)
	require.True(t, ok)

	x, y, ok := computeIntersection(e1, e2, 0.001)
	require.True(t, ok)
	assert.InDelta(t, 2.0, x, 1e-6)
	assert.InDelta(t, 2.0, y, 1e-6)
}

func TestComputeIntersection_ParallelLinesDontCross(t *testing.T) {
	a := newArena(8)
	r := newPointRegistry(a, 0.001)

	e1, ok := newEdge(a, r.get(0, 0, nil), r.get(4, 0, nil), 0)
	require.True(t, ok)
	e2, ok := newEdge(a, r.get(0, 1, nil), r.get(4, 1, nil), 1)
	require.True(t, ok)

	_, _, ok = computeIntersection(e1, e2, 0.001)
	assert.False(t, ok)
}

func TestComputeIntersection_OutsideBoundingIntervalRejected(t *testing.T) {
	a := newArena(8)
	r := newPointRegistry(a, 0.001)

	// These lines cross at (2,2), but e2's segment stops at x=1, well short.
	e1, ok := newEdge(a, r.get(0, 0, nil), r.get(4, 4, nil), 0)
	require.True(t, ok)
	e2, ok := newEdge(a, r.get(0, 4, nil), r.get(1, 3, nil), 1)
	require.True(t, ok)

	_, _, ok = computeIntersection(e1, e2, 0.001)
	assert.False(t, ok)
}

func TestCollinear(t *testing.T) {
	a := newArena(8)
	r := newPointRegistry(a, 0.001)

	onLine, ok := newEdge(a, r.get(0, 0, nil), r.get(10, 0, nil), 0)
	require.True(t, ok)
	overlapping, ok := newEdge(a, r.get(5, 0, nil), r.get(15, 0, nil), 1)
	require.True(t, ok)
	offLine, ok := newEdge(a, r.get(0, 1, nil), r.get(10, 1, nil), 1)
	require.True(t, ok)

	assert.True(t, collinear(onLine, overlapping, 0.001))
	assert.False(t, collinear(onLine, offLine, 0.001))
}
