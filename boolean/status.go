package boolean

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/mikenye/geom2d/numeric"
)

// status is the ordered set of currently-open left events (spec.md §3/§4.C4),
// backed by [redblacktree.Tree] — the same ordered-dictionary choice the
// teacher's linesegment package makes for its own sweep status
// (linesegment/sweepline_statusstructure_rbt.go), because floor/ceiling
// queries map directly onto "find my neighbours in the vertical stacking at
// the sweep line".
//
// Ordering resolves spec.md §9's note on the original algorithm's documented
// asymmetric comparator: rather than reproduce an insertion-order-dependent
// quirk we cannot verify without running it, this implementation takes the
// spec's own sanctioned alternative — "a strictly total order via
// lexicographic tiebreak on (below-endpoint, pointer-id)" — substituting the
// event's arena allocation sequence for "pointer-id" (Go pointers don't
// carry a usable total order, but sequence numbers do, and are assigned at
// the same place events are allocated).
type status struct {
	tree   *rbt.Tree
	sweepY float64
	eps    float64
}

func newStatus(eps float64) *status {
	s := &status{eps: eps}
	s.tree = rbt.NewWith(func(a, b interface{}) int {
		return s.compare(a.(*event), b.(*event))
	})
	return s
}

// setSweepY updates the y-coordinate the comparator evaluates edges at. The
// driver calls this before every S mutation/query so ordering always
// reflects "just below the current event point" (spec.md §4.C4).
func (s *status) setSweepY(y float64) { s.sweepY = y }

func (s *status) compare(e1, e2 *event) int {
	if e1 == e2 {
		return 0
	}
	x1, ok1 := e1.xAtY(s.sweepY)
	x2, ok2 := e2.xAtY(s.sweepY)
	if !ok1 {
		x1 = e1.p.X
	}
	if !ok2 {
		x2 = e2.p.X
	}
	if !numeric.FloatEquals(x1, x2, s.eps) {
		if x1 < x2 {
			return -1
		}
		return 1
	}
	if c := pointCmp(e1.leftPoint(), e2.leftPoint()); c != 0 {
		return c
	}
	if e1.seq < e2.seq {
		return -1
	}
	return 1
}

func (s *status) insert(e *event) {
	s.tree.Put(e, nil)
	e.inStatus = true
}

func (s *status) remove(e *event) {
	s.tree.Remove(e)
	e.inStatus = false
}

// neighbors returns the predecessor and successor of e in S, or nil where
// there is none.
func (s *status) neighbors(e *event) (prev, next *event) {
	node := s.tree.GetNode(e)
	if node == nil {
		return nil, nil
	}
	it := s.tree.IteratorAt(node)
	if it.Prev() {
		prev = it.Key().(*event)
	}
	it = s.tree.IteratorAt(node)
	if it.Next() {
		next = it.Key().(*event)
	}
	return prev, next
}
