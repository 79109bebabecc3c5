// File chain.go implements the chain assembler (spec.md §4.C7): it stitches
// the edges the classifier emits into closed, correctly oriented paths.
package boolean

import "github.com/emirpasic/gods/lists/arraylist"

// assembler tracks the "End store" (spec.md §3: a mapping from Point to the
// unique dangling chain-endpoint event at that point) and the "Polygon
// list" (seed events, one per known chain) — the latter backed by
// [arraylist.List], the same append-only container choice the teacher's
// pack uses elsewhere in `gods`, since seeds are only ever appended to and
// walked in order, never searched or removed individually.
//
// Each event carries two undirected ring-neighbour slots (ringPrev,
// ringNext — despite the names, neither is privileged as "forward"; see
// link/walkRing below). An emitted edge always fills one slot on each of its
// own two endpoint events first (the "own edge" hop); joining two chains at
// a shared point fills the remaining slot on each side. A free end is an
// event with an empty slot, which is exactly what the End store indexes.
type assembler struct {
	ends  map[*Point]*event
	seeds *arraylist.List
}

func newAssembler() *assembler {
	return &assembler{ends: make(map[*Point]*event), seeds: arraylist.New()}
}

// seedEvents returns the accumulated chain seeds as a typed slice, for
// driver.emitPaths to range over.
func (asm *assembler) seedEvents() []*event {
	values := asm.seeds.Values()
	out := make([]*event, len(values))
	for i, v := range values {
		out[i] = v.(*event)
	}
	return out
}

// emit weaves one classifier-accepted edge (leftEvt, leftEvt.other) into the
// growing set of chains, per spec.md §4.C7.
func (asm *assembler) emit(leftEvt *event) {
	le, re := leftEvt, leftEvt.other
	link(le, re) // this edge's own hop

	pL, pR := le.p, re.p
	freeL, okL := asm.ends[pL]
	freeR, okR := asm.ends[pR]

	switch {
	case !okL && !okR:
		asm.seeds.Add(le)
		asm.ends[pL] = le
		asm.ends[pR] = re

	case okL && !okR:
		link(freeL, le)
		delete(asm.ends, pL)
		asm.ends[pR] = re

	case !okL && okR:
		link(freeR, re)
		delete(asm.ends, pR)
		asm.ends[pL] = le

	default: // both found: closes a ring, or merges two chains
		link(freeL, le)
		link(freeR, re)
		delete(asm.ends, pL)
		delete(asm.ends, pR)
	}
}

// link connects u and v as ring neighbours, filling each one's first empty
// slot. Both u and v must have at least one empty slot; emit, its only
// caller, is the only place slots are assigned, and
// every event gets exactly two edge-incident hops over its lifetime, so this
// never overflows on well-formed input.
func link(u, v *event) {
	if u.ringPrev == nil {
		u.ringPrev = v
	} else {
		u.ringNext = v
	}
	if v.ringPrev == nil {
		v.ringPrev = u
	} else {
		v.ringNext = u
	}
}

// walkRing walks the ring starting at seed, returning the Points visited in
// order (with consecutive duplicates — two ring nodes sharing one Point at a
// join — collapsed, and the closing duplicate of the seed's own point
// dropped). It marks every visited event used so a ring reached by more than
// one seed (two chains that later merged) is only emitted once.
func walkRing(seed *event) []*Point {
	var raw []*event
	var prev *event
	cur := seed
	for {
		raw = append(raw, cur)
		cur.used = true
		next := cur.ringPrev
		if next == prev {
			next = cur.ringNext
		}
		if next == nil || next == seed {
			break
		}
		prev, cur = cur, next
	}

	pts := make([]*Point, 0, len(raw))
	for i, e := range raw {
		if i > 0 && e.p == raw[i-1].p {
			continue
		}
		pts = append(pts, e.p)
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}
