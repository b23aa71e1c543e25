// Package segtree implements the segment tree interval index: a set of
// half-open intervals [low, high), each tagged with a caller-supplied
// data identity, answering "which stored intervals contain key k"
// stabbing queries in O(log n + k) after an O(n log n) build.
package segtree

import (
	"cmp"
	"fmt"
	"slices"

	"blockvec/pkg/blockerr"
)

// segment is one inserted (low, high, data) triple.
type segment[K cmp.Ordered, D comparable] struct {
	low, high K
	data      D
}

// Tree is the segment tree. It holds an unordered segment list until
// BuildTree constructs the balanced elementary-interval tree that
// Search descends; any Insert or Remove after a build invalidates it.
type Tree[K cmp.Ordered, D comparable] struct {
	segs  []segment[K, D]
	root  *node[K, D]
	valid bool
}

// node is an elementary-interval tree node: leaves partition the sorted
// distinct endpoint set; a node carries the data identities of the
// inserted segments that fully contain its [low, high) but not its
// parent's.
type node[K cmp.Ordered, D comparable] struct {
	low, high   K
	left, right *node[K, D]
	data        []D
}

// New constructs an empty segment tree.
func New[K cmp.Ordered, D comparable]() *Tree[K, D] {
	return &Tree[K, D]{}
}

// Empty reports whether the tree holds no segments.
func (t *Tree[K, D]) Empty() bool { return len(t.segs) == 0 }

// Size returns the number of inserted segments.
func (t *Tree[K, D]) Size() int { return len(t.segs) }

// IsTreeValid reports whether BuildTree's result still reflects the
// current segment list.
func (t *Tree[K, D]) IsTreeValid() bool { return t.valid }

// Clear removes every segment and invalidates the built tree.
func (t *Tree[K, D]) Clear() {
	t.segs = nil
	t.invalidate()
}

func (t *Tree[K, D]) invalidate() {
	t.valid = false
	t.root = nil
}

// Insert adds the interval [low, high) tagged with data. It fails with
// blockerr.ErrInvalidArg if high <= low. Inserting an identical
// (low, high, data) triple twice is a no-op. Invalidates the built tree.
func (t *Tree[K, D]) Insert(low, high K, data D) error {
	if high <= low {
		return fmt.Errorf("segtree: high %v <= low %v: %w", high, low, blockerr.ErrInvalidArg)
	}
	for _, s := range t.segs {
		if s.low == low && s.high == high && s.data == data {
			return nil
		}
	}
	t.segs = append(t.segs, segment[K, D]{low, high, data})
	t.invalidate()
	return nil
}

// Remove deletes every segment tagged with data. Invalidates the built
// tree if anything was removed.
func (t *Tree[K, D]) Remove(data D) {
	out := t.segs[:0]
	removed := false
	for _, s := range t.segs {
		if s.data == data {
			removed = true
			continue
		}
		out = append(out, s)
	}
	t.segs = out
	if removed {
		t.invalidate()
	}
}

// Equal reports whether t and other hold the same set of segments,
// irrespective of insertion order or build state.
func (t *Tree[K, D]) Equal(other *Tree[K, D]) bool {
	if len(t.segs) != len(other.segs) {
		return false
	}
	a := slices.Clone(t.segs)
	b := slices.Clone(other.segs)
	less := func(x, y segment[K, D]) int {
		if x.low != y.low {
			return cmp.Compare(x.low, y.low)
		}
		if x.high != y.high {
			return cmp.Compare(x.high, y.high)
		}
		// D only guarantees comparable, not cmp.Ordered, so segments
		// sharing a (low, high) pair are tie-broken on a string
		// rendering of data — enough to make the sort a total order
		// without requiring callers' data to be orderable.
		return cmp.Compare(fmt.Sprint(x.data), fmt.Sprint(y.data))
	}
	slices.SortFunc(a, less)
	slices.SortFunc(b, less)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of t. The built tree, if any, is not
// copied; the copy starts unbuilt.
func (t *Tree[K, D]) Copy() *Tree[K, D] {
	return &Tree[K, D]{segs: slices.Clone(t.segs)}
}
