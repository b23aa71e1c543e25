package fst

import "container/list"

// clipRange clips [s, e) to [kmin, kmax), reporting false if the
// clipped range is empty (s >= e after clipping, or the input was
// already inverted or entirely outside bounds).
func (t *Tree[K, V]) clipRange(s, e K) (K, K, bool) {
	if s < t.kmin {
		s = t.kmin
	}
	if e > t.kmax {
		e = t.kmax
	}
	if s >= e {
		return s, e, false
	}
	return s, e, true
}

// ensureBreakpointForward returns the leaf with key == key, scanning
// forward from start, creating one by splitting the segment that
// currently covers key if none exists.
func (t *Tree[K, V]) ensureBreakpointForward(start *list.Element, key K) *list.Element {
	floor := floorForward[K, V](start, key)
	if val[K, V](floor).key == key {
		return floor
	}
	return t.leaves.InsertAfter(&leaf[K, V]{key: key, value: val[K, V](floor).value}, floor)
}

// ensureBreakpointBackward is ensureBreakpointForward scanning backward
// from start instead, for insert_back's tail-first locality.
func (t *Tree[K, V]) ensureBreakpointBackward(start *list.Element, key K) *list.Element {
	floor := floorBackward[K, V](start, key)
	if val[K, V](floor).key == key {
		return floor
	}
	return t.leaves.InsertAfter(&leaf[K, V]{key: key, value: val[K, V](floor).value}, floor)
}

// applyRange sets the segment at fs (a breakpoint already at s) to v,
// removing any interior breakpoints between fs and fe (a breakpoint
// already at e) since they're now redundant, then merges fs with its
// neighbors on both sides if they end up carrying the same value. It
// returns the surviving leaf covering s and whether anything changed.
func (t *Tree[K, V]) applyRange(fs, fe *list.Element, v V) (*list.Element, bool) {
	// No interior breakpoint and fs already holding v means [s, e) lay
	// inside one segment of value v; the merges below then only undo the
	// breakpoints ensured for s and e, leaving the list as it was.
	unchanged := fs.Next() == fe && val[K, V](fs).value == v
	changed := false
	n := fs.Next()
	for n != fe {
		next := n.Next()
		t.leaves.Remove(n)
		changed = true
		n = next
	}
	ls := val[K, V](fs)
	if ls.value != v {
		ls.value = v
		changed = true
	}
	start := fs
	if prev := fs.Prev(); prev != nil && val[K, V](prev).value == v {
		t.leaves.Remove(fs)
		start = prev
		changed = true
	}
	if fe.Next() != nil && val[K, V](fe).value == v {
		t.leaves.Remove(fe)
		changed = true
	}
	return start, changed && !unchanged
}

// InsertFront sets [s, e) to v, clipping the range to [kmin, kmax) and
// searching the leaf list from its head. It returns an iterator to the
// segment now containing s, or End() if the range clipped away to
// nothing, and whether the tree's structure changed.
func (t *Tree[K, V]) InsertFront(s, e K, v V) (LeafIter[K, V], bool) {
	s, e, ok := t.clipRange(s, e)
	if !ok {
		return t.End(), false
	}
	fs := t.ensureBreakpointForward(t.leaves.Front(), s)
	fe := t.ensureBreakpointForward(fs, e)
	start, changed := t.applyRange(fs, fe, v)
	if changed {
		t.invalidate()
	}
	return LeafIter[K, V]{t, start}, changed
}

// InsertBack is InsertFront searching from the tail instead of the
// head, for locality-friendly sequential insertion from the high end.
func (t *Tree[K, V]) InsertBack(s, e K, v V) (LeafIter[K, V], bool) {
	s, e, ok := t.clipRange(s, e)
	if !ok {
		return t.End(), false
	}
	fe := t.ensureBreakpointBackward(t.leaves.Back(), e)
	fs := t.ensureBreakpointBackward(fe, s)
	start, changed := t.applyRange(fs, fe, v)
	if changed {
		t.invalidate()
	}
	return LeafIter[K, V]{t, start}, changed
}

// Insert sets [s, e) to v, starting its search from hint instead of
// either end of the list. If hint belongs to another tree, behavior
// falls back to InsertFront.
func (t *Tree[K, V]) Insert(hint LeafIter[K, V], s, e K, v V) (LeafIter[K, V], bool) {
	if hint.t != t || hint.e == nil {
		return t.InsertFront(s, e, v)
	}
	s, e, ok := t.clipRange(s, e)
	if !ok {
		return t.End(), false
	}
	var fs *list.Element
	if val[K, V](hint.e).key <= s {
		fs = t.ensureBreakpointForward(hint.e, s)
	} else {
		fs = t.ensureBreakpointBackward(hint.e, s)
	}
	fe := t.ensureBreakpointForward(fs, e)
	start, changed := t.applyRange(fs, fe, v)
	if changed {
		t.invalidate()
	}
	return LeafIter[K, V]{t, start}, changed
}
