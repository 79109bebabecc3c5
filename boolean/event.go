package boolean

import "math"

// ownerBit returns the bitmask bit for polygon id i (0 = A, 1 = B).
func ownerBit(polyID int) uint8 { return 1 << uint(polyID) }

// event is one endpoint of an edge queued for the sweep (spec.md §3,
// "Edge / Event"). Every edge is represented by a left/right pair of events,
// each pointing at its partner via other.
type event struct {
	p     *Point
	other *event
	left  bool

	// owner's bit i is toggled once per time polygon i uses this edge, so
	// overlap parity survives self-overlapping input (spec.md §9).
	owner uint8

	// below is valid only while the left event is in the sweep status S: bit
	// i says whether the region just below this edge is inside polygon i.
	below uint8

	// belowIn records, at emission time, the classifier's in() verdict for
	// `below` — the orientation bit the chain assembler uses (spec.md §4.C6).
	belowIn bool

	// Cached line formula: y = a*x + b if !swap, x = a*y + b if swap. swap is
	// chosen so |a| <= 1, which is what keeps the formula numerically stable
	// near-vertical edges (spec.md §3).
	a, b float64
	swap bool

	used bool

	// inStatus is true while this (necessarily left) event sits in S. It
	// lets handle_left's "only if e is still in S" check (spec.md §4.C8) be
	// an O(1) flag test instead of a tree lookup.
	inStatus bool

	// seq is a monotonically increasing allocation order, used only to
	// break remaining ties in the sweep-status order (see DESIGN.md's
	// resolution of the §9 asymmetric-comparator note).
	seq uint64

	// ring fields, populated only once this edge's right endpoint has been
	// classified into the output (spec.md §3, "Chain ring").
	ringPrev, ringNext *event
}

// newEdge allocates the left/right event pair for an edge between two
// (already-registered) Points tagged with polyID. It returns ok=false if the
// two points collapsed to the same identity (spec.md §4.C2 step 1) — the
// caller drops such edges silently, recording [ErrDegenerateEdge] only in
// debug builds.
func newEdge(a *arena, p1, p2 *Point, polyID int) (left *event, ok bool) {
	if p1 == p2 {
		logDebugf("%v at %v", ErrDegenerateEdge, p1)
		return nil, false
	}

	e1, e2 := a.newEventPair()
	assignEdge(e1, e2, p1, p2, 0)
	e1.owner |= ownerBit(polyID)
	e2.owner |= ownerBit(polyID)

	if e1.left {
		return e1, true
	}
	return e2, true
}

// setLineFormula computes and caches (a, b, swap) for both events of one
// edge (spec.md §4.C2 step 3).
func setLineFormula(e1, e2 *event) {
	dx := e2.p.X - e1.p.X
	dy := e2.p.Y - e1.p.Y

	swap := math.Abs(dy) > math.Abs(dx)
	var a, b float64
	if swap {
		// x = a*y + b
		a = dx / dy
		b = e1.p.X - a*e1.p.Y
	} else {
		// y = a*x + b
		a = dy / dx
		b = e1.p.Y - a*e1.p.X
	}

	e1.a, e1.b, e1.swap = a, b, swap
	e2.a, e2.b, e2.swap = a, b, swap
}

// xAtY evaluates the edge's cached line formula for x at a given y. It
// returns false if the formula cannot resolve to a single x at that y
// (a perfectly horizontal edge represented in !swap form).
func (e *event) xAtY(y float64) (x float64, ok bool) {
	if e.swap {
		return e.a*y + e.b, true
	}
	if e.a == 0 {
		return 0, false
	}
	return (y - e.b) / e.a, true
}

// leftPoint/rightPoint return this edge's lex-smaller/lex-greater endpoint
// regardless of which of the pair e is.
func (e *event) leftPoint() *Point {
	if e.left {
		return e.p
	}
	return e.other.p
}

func (e *event) rightPoint() *Point {
	if e.left {
		return e.other.p
	}
	return e.p
}
