// Package boolean implements the planar boolean operator described in
// spec.md: a variant of the Martínez–Rueda plane-sweep algorithm that
// combines two 2D polygon sets (each a collection of closed paths, possibly
// with holes, possibly self-touching or overlapping) under union,
// intersection, subtraction, or symmetric difference.
//
// The package follows the dependency-ordered component breakdown of
// spec.md §2: a point registry (C1) canonicalises rasterised coordinates, an
// event model (C2) represents edge endpoints, an event queue (C3) and sweep
// status (C4) drive the sweep, an intersection engine (C5) resolves crossing
// and overlapping edges, a classifier (C6) decides inside/outside per the
// chosen operation, a chain assembler (C7) stitches emitted edges into
// closed oriented paths, and a driver (C8) wires all of the above together.
//
// Everything here is single-threaded; nothing is safe for concurrent use
// across goroutines. Points and events come from a per-call [arena]
// (spec.md §5); the registry map, event-queue B-tree, status tree, seed list
// and output paths are ordinary heap allocations outside the arena.
package boolean

import "github.com/mikenye/geom2d/options"

// Operation enumerates the four set-theoretic operators this package
// supports. Subtraction always removes B's area from A, matching spec.md §6.
type Operation uint8

const (
	// Union combines the area of A and B.
	Union Operation = iota
	// Intersect keeps only the area shared by A and B.
	Intersect
	// Subtract removes B's area from A.
	Subtract
	// Xor keeps the area covered by exactly one of A, B.
	Xor
)

// String renders the operation the way the teacher's own BooleanOperation
// enum names itself (see `_examples/mikenye-geom2d/polytree.go`).
func (op Operation) String() string {
	switch op {
	case Union:
		return "Union"
	case Intersect:
		return "Intersect"
	case Subtract:
		return "Subtract"
	case Xor:
		return "Xor"
	default:
		return "Unknown"
	}
}

// Vertex is one point of an input or output [Path]. Tag is an opaque
// source-location value that the core propagates but never inspects (spec.md
// §3's Point "source-location opaque tag"); callers can stash whatever
// identifies the vertex in their own front-end (e.g. an SCAD node id).
type Vertex struct {
	X, Y float64
	Tag  any
}

// Path is an ordered, implicitly-closed loop of vertices (last connects back
// to first). Input paths may self-touch, overlap edges with other paths, or
// be nested in any order; orientation is not required. Output paths are
// always simple and oriented per spec.md §6: outer boundaries clockwise,
// holes counter-clockwise.
type Path []Vertex

// Polygon is an ordered set of [Path]s, the unit boolean operations consume
// and produce.
type Polygon struct {
	Paths []Path
}

// IsEmpty reports whether the polygon has no paths, or only degenerate paths
// with fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	for _, path := range p.Paths {
		if len(path) >= 3 {
			return false
		}
	}
	return true
}

// Run computes boolean(A, B, op): the hard-part planar boolean operator of
// spec.md. It never partially mutates its result: on an internal-invariant
// failure it returns an empty Polygon alongside the error (spec.md §7).
func Run(a, b Polygon, op Operation, opts ...options.GeometryOptionsFunc) (result Polygon, err error) {
	geoOpts := applyOptions(opts...)

	defer func() {
		if r := recover(); r != nil {
			if ib, ok := r.(*ErrInvariantBroken); ok {
				result = Polygon{}
				err = ib
				return
			}
			panic(r)
		}
	}()

	if shortcut, ok := trivialShortcut(a, b, op); ok {
		return shortcut, nil
	}
	if bboxesDisjoint(a, b) {
		return disjointShortcut(a, b, op), nil
	}

	d := newDriver(a, b, op, geoOpts)
	return d.run(), nil
}
