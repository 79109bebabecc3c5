// File arena.go implements the scoped memory pool described in spec.md §5.
//
// Every [Point] and [event] allocated during one call to [Run] comes from the
// same arena and is released in a single bulk reset when the call returns.
// Allocation is block-based rather than one growing slice: downstream code
// hands out raw pointers into arena storage (the registry hands out one Point
// pointer per grid cell and callers compare Points by pointer, the event
// queue and status tree hold events by pointer, the chain ring links events
// by pointer), and a reallocating append would leave every pointer handed out
// before the grow pointing into an orphaned copy of the array. Each block is
// fixed-size once created, so no element already handed out ever moves; only
// a new block is appended when the current one fills, mirroring why the
// teacher's sweep-line package favours ordered dictionaries (B-tree/red-black
// tree) over a heap that would otherwise need the same kind of resize.
package boolean

// arena owns every Point and event allocated for one boolean operation. It is
// created fresh per call to Run and discarded afterwards; nothing it hands
// out is safe to retain across calls.
type arena struct {
	pointBlocks [][]Point
	eventBlocks [][]event
	blockSize   int
	seq         uint64
}

// newArena sizes its first blocks for roughly n input vertices. Each vertex
// contributes at most one Point and two Events (left+right), and the
// intersection engine may split edges, so events gets extra headroom.
func newArena(n int) *arena {
	if n < 8 {
		n = 8
	}
	a := &arena{blockSize: n}
	a.pointBlocks = [][]Point{make([]Point, 0, n)}
	a.eventBlocks = [][]event{make([]event, 0, n*3)}
	return a
}

// newPoint allocates a Point from the arena. Returned pointers remain valid
// and stationary for the arena's lifetime; pointer identity is what the
// registry relies on to canonicalise coordinates (spec.md §4.C1).
func (a *arena) newPoint(x, y float64, tag any) *Point {
	blk := a.pointBlocks[len(a.pointBlocks)-1]
	if len(blk) == cap(blk) {
		blk = make([]Point, 0, a.blockSize)
		a.pointBlocks = append(a.pointBlocks, blk)
	}
	blk = append(blk, Point{X: x, Y: y, Tag: tag, outputIndex: -1})
	a.pointBlocks[len(a.pointBlocks)-1] = blk
	return &blk[len(blk)-1]
}

// newEventPair allocates the two Events of one edge from a single block (so
// one never ends up in a different block from the other with nothing
// depending on it), wires them as each other's `other`, and assigns each a
// monotonically increasing sequence number. The sequence number stands in
// for "pointer identity" in the status structure's tie-break (spec.md §9's
// asymmetric-comparator note; see DESIGN.md for why we resolve it as a
// strict total order instead).
func (a *arena) newEventPair() (left, right *event) {
	blk := a.eventBlocks[len(a.eventBlocks)-1]
	if len(blk)+2 > cap(blk) {
		size := a.blockSize * 3
		if size < 2 {
			size = 2
		}
		blk = make([]event, 0, size)
		a.eventBlocks = append(a.eventBlocks, blk)
	}

	a.seq++
	seqL := a.seq
	a.seq++
	seqR := a.seq

	blk = append(blk, event{seq: seqL}, event{seq: seqR})
	a.eventBlocks[len(a.eventBlocks)-1] = blk

	left = &blk[len(blk)-2]
	right = &blk[len(blk)-1]
	left.other = right
	right.other = left
	return left, right
}
