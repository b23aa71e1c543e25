package fst

import "container/list"

// shiftKeysFrom adds delta to the key of every node in [from, term),
// removing any node whose shifted key lands at or past kmax. term
// itself (the terminal sentinel) is never touched.
func shiftKeysFrom[K Key, V comparable](leaves *list.List, from, term *list.Element, delta, kmax K) {
	for n := from; n != nil && n != term; {
		next := n.Next()
		nv := val[K, V](n)
		nv.key += delta
		if nv.key >= kmax {
			leaves.Remove(n)
		}
		n = next
	}
}

// ShiftLeft removes the half-open range [s, e) and shifts every
// remaining breakpoint at or after e left by e-s; the terminal
// sentinel stays pinned at kmax, so the segment abutting it simply
// extends to absorb the vacated span. Segments wholly inside [s, e)
// are destroyed; a resulting pair of adjacent equal-value segments at
// the cut point merges into one. s < kmin, e > kmax, or s >= e is a
// no-op that leaves the tree's validity untouched.
func (t *Tree[K, V]) ShiftLeft(s, e K) {
	if s < t.kmin || e > t.kmax || s >= e {
		return
	}
	fs := t.ensureBreakpointForward(t.leaves.Front(), s)
	fe := t.ensureBreakpointForward(fs, e)
	prev := fs.Prev()
	delta := e - s

	n := fs
	for n != fe {
		next := n.Next()
		t.leaves.Remove(n)
		n = next
	}

	term := t.leaves.Back()
	for n := fe; n != term; n = n.Next() {
		val[K, V](n).key -= delta
	}

	if prev != nil && fe != term && val[K, V](prev).value == val[K, V](fe).value {
		t.leaves.Remove(fe)
	}
	t.invalidate()
}

// ShiftRight inserts size new default-valued positions at s, shifting
// every breakpoint at or after s right by size; the terminal sentinel
// stays pinned at kmax and any breakpoint pushed at or past it is
// discarded.
//
// If s falls strictly inside a segment (no breakpoint sits exactly at
// s), the new capacity simply extends that segment — nothing needs to
// be created or moved at s itself, only the following breakpoints
// shift. If s coincides with an existing breakpoint, that breakpoint
// and everything after it shifts away, and a new default-valued node
// takes its place at the original key s, unless skipStartNode is true,
// in which case the existing breakpoint is left in place (its segment
// absorbs the new capacity) and only what follows it shifts. s outside
// [kmin, kmax) or size <= 0 is a no-op.
func (t *Tree[K, V]) ShiftRight(s K, size int, skipStartNode bool) {
	if size <= 0 || s < t.kmin || s >= t.kmax {
		return
	}
	delta := K(size)
	floor := floorForward[K, V](t.leaves.Front(), s)
	existed := val[K, V](floor).key == s
	term := t.leaves.Back()

	if !existed || skipStartNode {
		shiftKeysFrom[K, V](t.leaves, floor.Next(), term, delta, t.kmax)
		t.invalidate()
		return
	}

	prevOfFloor := floor.Prev()
	gap := t.leaves.InsertBefore(&leaf[K, V]{key: s, value: t.def}, floor)
	shiftKeysFrom[K, V](t.leaves, floor, term, delta, t.kmax)
	if next := gap.Next(); next != term && val[K, V](next).value == t.def {
		t.leaves.Remove(next)
	}
	if prevOfFloor != nil && val[K, V](prevOfFloor).value == t.def {
		t.leaves.Remove(gap)
	}
	t.invalidate()
}
