// File intersection.go implements the intersection engine (spec.md §4.C5):
// given two edges adjacent in the sweep status S, it detects whether they
// cross, overlap, or neither, and resolves each case by splitting edges,
// re-queuing, or merging owner/below masks.
package boolean

import (
	"math"
	"slices"

	"github.com/mikenye/geom2d/numeric"
)

// checkIntersection is the entry point handle_left/handle_right call
// whenever two events become adjacent in S. el and eh are assumed to be the
// lower/upper pair as found by the status structure's neighbour query; order
// between them does not otherwise matter to the math below.
func (d *driver) checkIntersection(el, eh *event) {
	if el == nil || eh == nil || el == eh {
		return
	}

	if d.resolveOverlap(el, eh) {
		return
	}

	x, y, ok := computeIntersection(el, eh, d.eps)
	if !ok {
		return
	}

	// If rounding places the crossing on the left endpoint of an
	// already-active edge, that edge needs reclassifying once the sweep
	// reaches this x: pull it out of S and let it re-enter Q (spec.md
	// §4.C5 step 2).
	if x == el.p.X && y == el.p.Y {
		d.requeue(el)
		return
	}
	if x == eh.p.X && y == eh.p.Y {
		d.requeue(eh)
		return
	}

	ip := d.registry.get(x, y, nil)
	if ip != el.other.p {
		d.divideSegment(el, ip)
	}
	if ip != eh.other.p {
		d.divideSegment(eh, ip)
	}
}

// requeue removes e from S (if present) and pushes it back onto Q, so it is
// reclassified once the sweep revisits its x (spec.md §4.C5, §9 "Coroutine-
// like control flow" note: modelled as plain removal-and-reinsertion, never
// as a suspended call).
func (d *driver) requeue(e *event) {
	if e.inStatus {
		d.S.remove(e)
	}
	d.Q.push(e)
}

// computeIntersection evaluates the crossing point of two edges from their
// cached line formulas (spec.md §4.C5 step 2), falling back to inverting one
// formula when the two edges disagree on swap. It rasterises the result and
// validates it falls within both edges' bounding interval; ok is false for
// parallel lines or a computed point outside either edge's span.
func computeIntersection(el, eh *event, eps float64) (x, y float64, ok bool) {
	a1, b1, s1 := el.a, el.b, el.swap
	a2, b2, s2 := eh.a, eh.b, eh.swap

	switch {
	case !s1 && !s2: // both y = a*x + b
		if a1 == a2 {
			return 0, 0, false
		}
		x = (b2 - b1) / (a1 - a2)
		y = a1*x + b1

	case s1 && s2: // both x = a*y + b
		if a1 == a2 {
			return 0, 0, false
		}
		y = (b2 - b1) / (a1 - a2)
		x = a1*y + b1

	case !s1 && s2: // el: y=a1*x+b1, eh: x=a2*y+b2
		denom := 1 - a1*a2
		if numeric.FloatEquals(denom, 0, eps) {
			return 0, 0, false
		}
		x = (a2*b1 + b2) / denom
		y = a1*x + b1

	default: // s1 && !s2
		denom := 1 - a2*a1
		if numeric.FloatEquals(denom, 0, eps) {
			return 0, 0, false
		}
		x = (a1*b2 + b1) / denom
		y = a2*x + b2
	}

	x = rasterise(x, eps)
	y = rasterise(y, eps)

	if !withinBounds(x, y, el, eps) || !withinBounds(x, y, eh, eps) {
		return 0, 0, false
	}
	return x, y, true
}

// withinBounds reports whether (x, y) falls within e's bounding interval,
// inclusive, within eps. This is the validation step computeIntersection
// needs before trusting a numerically-derived crossing point.
func withinBounds(x, y float64, e *event, eps float64) bool {
	lo, hi := e.leftPoint(), e.rightPoint()
	minX, maxX := math.Min(lo.X, hi.X), math.Max(lo.X, hi.X)
	minY, maxY := math.Min(lo.Y, hi.Y), math.Max(lo.Y, hi.Y)
	return numeric.FloatGreaterThanOrEqualTo(x, minX, eps) &&
		numeric.FloatLessThanOrEqualTo(x, maxX, eps) &&
		numeric.FloatGreaterThanOrEqualTo(y, minY, eps) &&
		numeric.FloatLessThanOrEqualTo(y, maxY, eps)
}

// collinear reports whether el and eh lie on the same supporting line,
// within eps — the coordinate-based screen spec.md §4.C5 step 1 requires to
// run before any numeric intersection is attempted.
func collinear(el, eh *event, eps float64) bool {
	a, b := el.leftPoint(), el.rightPoint()
	return crossZero(a, b, eh.leftPoint(), eps) && crossZero(a, b, eh.rightPoint(), eps)
}

func crossZero(a, b, c *Point, eps float64) bool {
	cr := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	return numeric.FloatEquals(cr, 0, eps)
}

// resolveOverlap handles spec.md §4.C5 step 3. Rather than enumerate the
// five canonical endpoint configurations by hand, it sorts the four
// endpoints of el and eh lexicographically: the middle two bound the
// overlapping stretch (or, if they don't form a strict interval, el and eh
// only touch at a shared endpoint, which is excluded from "overlap" per
// spec.md §4.C5 step 1). Both edges are split down to exactly that stretch,
// then combined: one edge becomes canonical carrying owner' = owner(el) XOR
// owner(eh) (and the current below mask), the other has its owner mask
// cleared so the classifier sees nothing from it. See DESIGN.md for why this
// replaces the five-case enumeration.
func (d *driver) resolveOverlap(el, eh *event) bool {
	if !collinear(el, eh, d.eps) {
		return false
	}

	pts := []*Point{el.leftPoint(), el.rightPoint(), eh.leftPoint(), eh.rightPoint()}
	slices.SortFunc(pts, pointCmp)
	lo, hi := pts[1], pts[2]
	if pointCmp(lo, hi) >= 0 {
		return false // only a shared endpoint, not a true overlap
	}

	el = d.restrictToRange(el, lo, hi)
	eh = d.restrictToRange(eh, lo, hi)

	// el survives as the canonical edge over the overlap: owner' = owner(el)
	// XOR owner(eh), below' = below(el) (unchanged — el's own below already
	// reflects the region beneath the overlap). eh is cleared so the
	// classifier sees nothing from it.
	ownerXor := el.owner ^ eh.owner
	el.owner, el.other.owner = ownerXor, ownerXor
	eh.owner, eh.other.owner = 0, 0

	return true
}

// restrictToRange splits e, if necessary, so its span is exactly [lo, hi],
// re-inserting the resulting sub-edge into S (the pieces outside [lo, hi]
// stay queued and re-enter S in their own turn, as any split edge would).
func (d *driver) restrictToRange(e *event, lo, hi *Point) *event {
	if e.leftPoint() != lo {
		_, far := d.divideSegment(e, lo)
		e = far
	}
	if e.rightPoint() != hi {
		near, _ := d.divideSegment(e, hi)
		e = near
	}
	if !e.inStatus {
		d.S.insert(e)
	}
	return e
}

// divideSegment splits edge e at Point p into two edges, e.p--p and
// p--(e's original far point), per spec.md §4.C5: "produces r = right
// endpoint of e, replaces with e–p and p–other." It removes e from S (if
// active) and the original right event from Q, then queues all four new
// endpoints. Returns the left event of each half (nearHalf spans
// [e.p, p], farHalf spans [p, originalFarPoint]); callers that already hold
// p positioned between e.p and the far point (guaranteed by the intersection
// engine and the overlap resolver) can rely on that ordering.
func (d *driver) divideSegment(e *event, p *Point) (nearHalf, farHalf *event) {
	other := e.other
	owner := e.owner
	below := e.below
	farPoint := other.p
	nearPoint := e.p

	if e.inStatus {
		d.S.remove(e)
	}
	d.Q.remove(other)

	l1, r1 := d.arena.newEventPair()
	assignEdge(l1, r1, nearPoint, p, owner)
	l2, r2 := d.arena.newEventPair()
	assignEdge(l2, r2, p, farPoint, owner)

	// Both halves are uninterrupted continuations of e's own line, not a
	// crossing with another edge, so the "region below" classification
	// carries over unchanged (spec.md §4.C5: divide_segment "copies ...
	// in state"). A re-inserted half still gets this overwritten from its
	// actual S neighbours the next time handle_left runs on it.
	l1.below, l2.below = below, below

	for _, ev := range [4]*event{l1, r1, l2, r2} {
		d.Q.push(ev)
	}

	return leftOf(l1, r1), leftOf(l2, r2)
}

func leftOf(a, b *event) *event {
	if a.left {
		return a
	}
	return b
}

// assignEdge wires l and r (an already-paired event pair) to represent the
// edge between p1 and p2 with the given owner mask, choosing which of l, r
// is the left endpoint by lex order.
func assignEdge(l, r *event, p1, p2 *Point, owner uint8) {
	if pointCmp(p1, p2) < 0 {
		l.p, r.p = p1, p2
		l.left, r.left = true, false
	} else {
		l.p, r.p = p1, p2
		l.left, r.left = false, true
	}
	setLineFormula(l, r)
	l.owner, r.owner = owner, owner
}
