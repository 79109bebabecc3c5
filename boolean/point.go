package boolean

import "math"

// Point is the canonical identity of a coordinate within one boolean run
// (spec.md §3). Two Points are never equal under rasterised lex order; the
// [pointRegistry] guarantees that the same rasterised coordinate always
// yields the same Point pointer, so downstream code can compare identities
// with plain pointer equality.
type Point struct {
	X, Y float64

	// Tag is an opaque source-location value, propagated only, never
	// inspected by this package.
	Tag any

	// outputIndex is the position this point was assigned in the first
	// output path that used it; -1 means "unassigned" (spec.md §3).
	outputIndex int

	// usage counts how many times this Point has been pushed into an output
	// path; used only for diagnostics.
	usage int
}

// pointCmp orders two Points by lexicographic (X, Y). It is the single
// source of truth for "lex-smaller" throughout this package (left/right
// endpoint determination, event-queue order, chain orientation).
func pointCmp(a, b *Point) int {
	if a == b {
		return 0
	}
	if a.X != b.X {
		if a.X < b.X {
			return -1
		}
		return 1
	}
	if a.Y != b.Y {
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	return 0
}

// rasterise snaps v to the nearest multiple of eps, per spec.md §3:
// round(v/eps)*eps, with exact-zero snap when |v| < eps. eps <= 0 disables
// rasterisation (the coordinate passes through unchanged), matching how
// [options.WithEpsilon] of 0 disables every other epsilon-gated adjustment
// in this library.
func rasterise(v, eps float64) float64 {
	if eps <= 0 {
		return v
	}
	if math.Abs(v) < eps {
		return 0
	}
	return math.Round(v/eps) * eps
}

// gridKey is the rasterised-coordinate key used by pointRegistry. Coordinates
// are stored as grid cell indices (not raw floats) so that two requests for
// the same rasterised coordinate always hash identically, sidestepping
// float-equality pitfalls entirely.
type gridKey struct {
	gx, gy int64
}

func keyOf(x, y, eps float64) gridKey {
	if eps <= 0 {
		// Degenerate (no quantisation): still need a stable, finite key.
		// Falling back to the raw bits keeps identical floats identical.
		return gridKey{gx: int64(math.Float64bits(x)), gy: int64(math.Float64bits(y))}
	}
	return gridKey{gx: int64(math.Round(x / eps)), gy: int64(math.Round(y / eps))}
}

// pointRegistry canonicalises rasterised coordinates to shared Point
// identities (spec.md §4.C1). It is backed by the run's [arena]: every Point
// it hands out lives until the arena resets.
type pointRegistry struct {
	eps   float64
	index map[gridKey]*Point
	arena *arena
}

func newPointRegistry(a *arena, eps float64) *pointRegistry {
	return &pointRegistry{
		eps:   eps,
		index: make(map[gridKey]*Point, a.blockSize),
		arena: a,
	}
}

// get rasterises (x, y), snaps near-zero components to exact zero, then
// inserts-or-returns the canonical Point for that coordinate.
func (r *pointRegistry) get(x, y float64, tag any) *Point {
	x = rasterise(x, r.eps)
	y = rasterise(y, r.eps)
	k := keyOf(x, y, r.eps)
	if p, ok := r.index[k]; ok {
		return p
	}
	p := r.arena.newPoint(x, y, tag)
	r.index[k] = p
	return p
}
