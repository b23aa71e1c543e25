package segtree

import (
	"cmp"
	"slices"
)

// BuildTree constructs the balanced elementary-interval tree over the
// sorted set of distinct segment endpoints. Every inserted segment is
// pushed down to the highest nodes whose [low, high) it fully contains
// (see pushDown), so each elementary interval it covers sees it on
// exactly one ancestor. A tree with fewer than two distinct endpoints (no
// segments, or segments all sharing one low==high pair, which Insert
// already rejects) builds nothing and IsTreeValid reports false.
func (t *Tree[K, D]) BuildTree() {
	if len(t.segs) == 0 {
		t.root = nil
		t.valid = false
		return
	}
	endpoints := make([]K, 0, len(t.segs)*2)
	for _, s := range t.segs {
		endpoints = append(endpoints, s.low, s.high)
	}
	slices.Sort(endpoints)
	endpoints = slices.Compact(endpoints)
	if len(endpoints) < 2 {
		t.root = nil
		t.valid = false
		return
	}
	t.root = buildRange[K, D](endpoints, 0, len(endpoints)-1)
	for _, s := range t.segs {
		pushDown(t.root, s)
	}
	t.valid = true
}

// buildRange builds the subtree spanning elementary intervals
// [lo, hi) of the endpoint array (hi-lo elementary intervals).
func buildRange[K cmp.Ordered, D comparable](endpoints []K, lo, hi int) *node[K, D] {
	if hi-lo == 1 {
		return &node[K, D]{low: endpoints[lo], high: endpoints[hi]}
	}
	mid := lo + (hi-lo)/2
	left := buildRange[K, D](endpoints, lo, mid)
	right := buildRange[K, D](endpoints, mid, hi)
	return &node[K, D]{low: left.low, high: right.high, left: left, right: right}
}

// pushDown attaches s.data to the highest nodes in n's subtree whose
// interval is fully contained in [s.low, s.high): the descent stops as
// soon as containment holds, so the children of such a node do not
// carry s.data themselves.
func pushDown[K cmp.Ordered, D comparable](n *node[K, D], s segment[K, D]) {
	if n == nil || s.high <= n.low || s.low >= n.high {
		return
	}
	if s.low <= n.low && n.high <= s.high {
		n.data = append(n.data, s.data)
		return
	}
	pushDown(n.left, s)
	pushDown(n.right, s)
}
