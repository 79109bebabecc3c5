// File driver.go wires the point registry, event queue, sweep status,
// intersection engine, classifier, and chain assembler together into the
// plane sweep described in spec.md §4.C8.
package boolean

import (
	"math"

	"github.com/mikenye/geom2d/options"
)

// defaultEpsilon is used when the caller doesn't supply [options.WithEpsilon]
// (spec.md §6 lists epsilon as an ancillary input but leaves its default
// unspecified — see DESIGN.md for why this value was chosen).
const defaultEpsilon = 1e-9

func applyOptions(opts ...options.GeometryOptionsFunc) options.GeometryOptions {
	return options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: defaultEpsilon}, opts...)
}

// driver owns every structure the sweep touches for one call to [Run]: the
// point registry, event queue, sweep status, chain assembler, and the arena
// backing all of it (spec.md §5's scoped-pool model).
type driver struct {
	arena    *arena
	registry *pointRegistry
	Q        *eventQueue
	S        *status
	asm      *assembler
	eps      float64
	op       Operation

	// maxXA, maxXB bound the early-stop check for intersect/subtract
	// (spec.md §4.C8: "rest is cut away").
	maxXA, maxXB float64
}

func newDriver(a, b Polygon, op Operation, geoOpts options.GeometryOptions) *driver {
	n := geoOpts.ArenaCapacity
	if n <= 0 {
		n = countVertices(a) + countVertices(b)
	}

	ar := newArena(n)
	d := &driver{
		arena:    ar,
		registry: newPointRegistry(ar, geoOpts.Epsilon),
		Q:        newEventQueue(),
		S:        newStatus(geoOpts.Epsilon),
		asm:      newAssembler(),
		eps:      geoOpts.Epsilon,
		op:       op,
	}

	d.maxXA = d.loadPolygon(a, 0)
	d.maxXB = d.loadPolygon(b, 1)
	return d
}

func countVertices(p Polygon) int {
	n := 0
	for _, path := range p.Paths {
		n += len(path)
	}
	return n
}

// loadPolygon registers every vertex of p and queues an edge between each
// consecutive pair (paths are implicitly closed), tagged with polyID. It
// returns the polygon's maximum x, used for the driver's early-stop bound.
func (d *driver) loadPolygon(p Polygon, polyID int) float64 {
	maxX := math.Inf(-1)
	for _, path := range p.Paths {
		if len(path) < 2 {
			continue
		}
		pts := make([]*Point, len(path))
		for i, v := range path {
			pts[i] = d.registry.get(v.X, v.Y, v.Tag)
			if pts[i].X > maxX {
				maxX = pts[i].X
			}
		}
		for i := range pts {
			j := (i + 1) % len(pts)
			if left, ok := newEdge(d.arena, pts[i], pts[j], polyID); ok {
				d.Q.push(left)
				d.Q.push(left.other)
			}
		}
	}
	return maxX
}

// run executes the sweep to completion and returns the assembled result
// (spec.md §4.C8's pseudocode).
func (d *driver) run() Polygon {
	// Intersect can't extend past either input's right edge, so the tighter
	// bound stops the sweep as soon as one side runs out. Subtract only ever
	// removes B's area from A: once x is past B's right edge, B has nothing
	// left to subtract, but A's own tail past that point is still part of the
	// result and must still be swept — the bound there is A's own maxX, not
	// the tighter of the two (csg2-bool.c uses c.bb[0].max.x, A's own bbox,
	// for CP_OP_SUB, versus the shared c.minmaxx for CP_OP_CUT).
	var cutoff float64
	stopEarly := true
	switch d.op {
	case Intersect:
		cutoff = math.Min(d.maxXA, d.maxXB)
	case Subtract:
		cutoff = d.maxXA
	default:
		stopEarly = false
	}

	for {
		e, ok := d.Q.pop()
		if !ok {
			break
		}
		if stopEarly && e.p.X > cutoff {
			break
		}
		d.S.setSweepY(e.p.Y)
		if e.left {
			d.handleLeft(e)
		} else {
			d.handleRight(e)
		}
	}

	return d.emitPaths()
}

// handleLeft inserts e into S, derives its below mask from its predecessor,
// then checks intersection with both new neighbours (spec.md §4.C8).
func (d *driver) handleLeft(e *event) {
	d.S.insert(e)
	prev, next := d.S.neighbors(e)

	if prev == nil {
		e.below = 0
	} else {
		e.below = prev.below ^ prev.owner
	}

	if next != nil {
		d.checkIntersection(e, next)
	}
	if e.inStatus {
		if prev != nil {
			d.checkIntersection(prev, e)
		}
	}
}

// handleRight classifies e's completed edge and removes it from S, then lets
// its former neighbours meet (spec.md §4.C8).
func (d *driver) handleRight(e *event) {
	sli := e.other
	prev, next := d.S.neighbors(sli)
	d.S.remove(sli)

	emit, belowIn := classify(d.op, sli)
	sli.belowIn = belowIn
	if emit {
		d.asm.emit(sli)
	}

	if prev != nil && next != nil {
		d.checkIntersection(prev, next)
	}
}

// emitPaths walks every unclaimed chain seed into a closed [Path], per
// spec.md §4.C7.
func (d *driver) emitPaths() Polygon {
	var result Polygon
	for _, seed := range d.asm.seedEvents() {
		if seed.used {
			continue
		}
		pts := walkRing(seed)
		if len(pts) < 3 {
			panic(invariantf("chain closed with only %d distinct point(s)", len(pts)))
		}
		if seed.belowIn {
			reversePoints(pts)
		}
		result.Paths = append(result.Paths, toPath(pts))
	}
	return result
}

func reversePoints(pts []*Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func toPath(pts []*Point) Path {
	path := make(Path, len(pts))
	for i, p := range pts {
		if p.outputIndex < 0 {
			p.outputIndex = i
		}
		p.usage++
		path[i] = Vertex{X: p.X, Y: p.Y, Tag: p.Tag}
	}
	return path
}

// trivialShortcut applies the identity/annihilation shortcuts of spec.md
// §4.C8's first line: an empty input collapses the operation to a copy, a
// clear, or the other input, without touching the sweep at all. The
// surviving input still needs normalizeOrientation: spec.md §6 explicitly
// allows unoriented input, but the shortcut never runs the sweep that would
// otherwise derive orientation from geometry.
func trivialShortcut(a, b Polygon, op Operation) (Polygon, bool) {
	aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
	if !aEmpty && !bEmpty {
		return Polygon{}, false
	}

	switch op {
	case Union, Xor:
		if aEmpty {
			return normalizeOrientation(b), true
		}
		return normalizeOrientation(a), true
	case Intersect:
		return Polygon{}, true
	case Subtract:
		if aEmpty {
			return Polygon{}, true
		}
		return normalizeOrientation(a), true
	default:
		return Polygon{}, true
	}
}

// bboxesDisjoint reports whether A and B's bounding boxes don't overlap —
// the cheap pre-check spec.md §4.C8 runs before committing to a full sweep.
func bboxesDisjoint(a, b Polygon) bool {
	aMinX, aMinY, aMaxX, aMaxY, aOK := bbox(a)
	bMinX, bMinY, bMaxX, bMaxY, bOK := bbox(b)
	if !aOK || !bOK {
		return false
	}
	return aMaxX < bMinX || bMaxX < aMinX || aMaxY < bMinY || bMaxY < aMinY
}

func bbox(p Polygon) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, path := range p.Paths {
		for _, v := range path {
			ok = true
			minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
			minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
		}
	}
	return minX, minY, maxX, maxY, ok
}

// disjointShortcut resolves an operation once bboxesDisjoint has confirmed A
// and B cannot share any area: no edge from one can ever cross or overlap an
// edge from the other, so the result is assembled by simple concatenation
// rather than a sweep. Each side is normalized independently before
// concatenating — disjoint bounding boxes rule out any nesting *between* A
// and B, but a hole nested inside its own polygon's outer boundary is still
// possible and must resolve from that polygon's own paths alone.
func disjointShortcut(a, b Polygon, op Operation) Polygon {
	switch op {
	case Union, Xor:
		na, nb := normalizeOrientation(a), normalizeOrientation(b)
		paths := make([]Path, 0, len(na.Paths)+len(nb.Paths))
		paths = append(paths, na.Paths...)
		paths = append(paths, nb.Paths...)
		return Polygon{Paths: paths}
	case Subtract:
		return normalizeOrientation(a)
	case Intersect:
		return Polygon{}
	default:
		return Polygon{}
	}
}

// normalizeOrientation enforces spec.md §6/§8's convention — outer
// boundaries clockwise, holes counter-clockwise — on a polygon assembled
// without running the sweep engine that would otherwise derive it from
// geometry (driver.go's emitPaths, via seed.belowIn). A path's nesting
// depth, found by testing point containment against the polygon's own other
// paths, decides whether it is an outer boundary (even depth) or a hole
// (odd depth); the path is reversed only if its own signed-area orientation
// disagrees with that verdict. Paths with fewer than three distinct vertices
// enclose no area and are dropped.
func normalizeOrientation(p Polygon) Polygon {
	out := Polygon{Paths: make([]Path, 0, len(p.Paths))}
	for i, path := range p.Paths {
		distinct := make(map[[2]float64]struct{}, len(path))
		for _, v := range path {
			distinct[[2]float64{v.X, v.Y}] = struct{}{}
		}
		if len(distinct) < 3 {
			continue
		}
		cp := append(Path(nil), path...)
		if len(cp) >= 3 {
			depth := 0
			x, y := cp[0].X, cp[0].Y
			for j, other := range p.Paths {
				if j == i || len(other) < 3 {
					continue
				}
				if pointInPath(x, y, other) {
					depth++
				}
			}
			wantClockwise := depth%2 == 0
			if isClockwise(cp) != wantClockwise {
				reversePath(cp)
			}
		}
		out.Paths = append(out.Paths, cp)
	}
	return out
}

// signedArea computes twice the signed area of a closed path via the
// shoelace formula: positive for counter-clockwise, negative for clockwise
// (spec.md §8: "an outer boundary is clockwise by signed-area").
func signedArea(path Path) float64 {
	var sum float64
	n := len(path)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += path[i].X*path[j].Y - path[j].X*path[i].Y
	}
	return sum
}

func isClockwise(path Path) bool { return signedArea(path) < 0 }

// pointInPath reports whether (x, y) lies inside path using the standard
// even-odd ray-casting test.
func pointInPath(x, y float64, path Path) bool {
	inside := false
	n := len(path)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := path[i].X, path[i].Y
		xj, yj := path[j].X, path[j].Y
		if (yi > y) != (yj > y) {
			xCross := (xj-xi)*(y-yi)/(yj-yi) + xi
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func reversePath(vs Path) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}
