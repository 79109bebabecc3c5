package boolean

import "github.com/google/btree"

// eventQueue is the ordered set of unprocessed events (spec.md §3/§4.C3),
// backed by [btree.BTreeG] — the same ordered-dictionary choice the teacher's
// linesegment package makes for its own sweep-line event queue
// (linesegment/sweepline_eventqueue.go), and for the same reason: no dynamic
// resizing surprises on the hot path the way a growing binary heap would
// need.
type eventQueue struct {
	tree *btree.BTreeG[*event]
}

func newEventQueue() *eventQueue {
	return &eventQueue{tree: btree.NewG[*event](32, qLess)}
}

func (q *eventQueue) push(e *event) {
	q.tree.ReplaceOrInsert(e)
}

// pop removes and returns the minimum event under the sweep order, or
// ok=false if the queue is empty.
func (q *eventQueue) pop() (e *event, ok bool) {
	return q.tree.DeleteMin()
}

func (q *eventQueue) remove(e *event) {
	q.tree.Delete(e)
}

func (q *eventQueue) len() int { return q.tree.Len() }

// qLess implements spec.md §4.C3's three-tier event order:
//
//  1. Distinct points compare lexicographically (x, then y).
//  2. At the same point, right events (the lex-greater endpoint of their
//     edge) precede left events, so edges close before new ones open at a
//     shared vertex.
//  3. At the same point and same direction, the edge whose other endpoint
//     lies below the other's supporting line is processed first.
//
// A final tie-break on allocation sequence keeps the comparator a strict
// total order so the backing B-tree never silently merges two distinct
// events that fall into case 3 without a strict geometric answer — see
// DESIGN.md's note on spec.md §9's "ties may compare equal" allowance.
func qLess(e1, e2 *event) bool {
	if e1 == e2 {
		return false
	}
	if c := pointCmp(e1.p, e2.p); c != 0 {
		return c < 0
	}
	if e1.left != e2.left {
		return !e1.left // right (left=false) precedes left
	}
	if below := otherEndpointBelowOther(e1, e2); below != 0 {
		return below < 0
	}
	return e1.seq < e2.seq
}

// otherEndpointBelowOther compares, for two events e1, e2 that share the
// same point p, whether e1's other endpoint lies below the supporting line
// through p and e2's other endpoint. Returns -1 if e1 sorts first, +1 if e2
// sorts first, 0 if collinear (the caller then falls back to seq).
func otherEndpointBelowOther(e1, e2 *event) int {
	p := e1.p
	o1, o2 := e1.other.p, e2.other.p
	cross := (o2.X-p.X)*(o1.Y-p.Y) - (o2.Y-p.Y)*(o1.X-p.X)
	if !e1.left {
		// For right events the other endpoints lie to the left of p, which
		// flips the sign of "below" relative to the vector p->o2.
		cross = -cross
	}
	switch {
	case cross < 0:
		return -1
	case cross > 0:
		return 1
	default:
		return 0
	}
}
