package fst

import (
	"container/list"
)

// floorForward returns the rightmost leaf with key <= target, scanning
// forward from start (inclusive). start must itself have key <= target.
func floorForward[K Key, V comparable](start *list.Element, target K) *list.Element {
	e := start
	for {
		next := e.Next()
		if next == nil || val[K, V](next).key > target {
			return e
		}
		e = next
	}
}

// floorBackward returns the rightmost leaf with key <= target, scanning
// backward from start (inclusive).
func floorBackward[K Key, V comparable](start *list.Element, target K) *list.Element {
	e := start
	for e.Prev() != nil && val[K, V](e).key > target {
		e = e.Prev()
	}
	return e
}

// Search finds the leaf covering key, scanning from the list head.
// found is false iff key lies outside [kmin, kmax).
func (t *Tree[K, V]) Search(key K) (it LeafIter[K, V], found bool) {
	if key < t.kmin || key >= t.kmax {
		return t.End(), false
	}
	e := floorForward[K, V](t.leaves.Front(), key)
	return LeafIter[K, V]{t, e}, true
}

// SearchHint finds the leaf covering key, starting its scan from hint
// instead of the list head. If hint belongs to another tree, this falls
// back to a full Search.
func (t *Tree[K, V]) SearchHint(hint LeafIter[K, V], key K) (LeafIter[K, V], bool) {
	if hint.t != t || hint.e == nil {
		return t.Search(key)
	}
	if key < t.kmin || key >= t.kmax {
		return t.End(), false
	}
	start := hint.e
	if val[K, V](start).key <= key {
		return LeafIter[K, V]{t, floorForward[K, V](start, key)}, true
	}
	return LeafIter[K, V]{t, floorBackward[K, V](start, key)}, true
}

// SearchTree finds the leaf covering key using the auxiliary balanced
// tree built by BuildTree, in O(log n). Returns (end, false) if the
// tree has not been built or has been invalidated by a mutation since.
func (t *Tree[K, V]) SearchTree(key K) (LeafIter[K, V], bool) {
	if !t.treeValid || t.root == nil {
		return t.End(), false
	}
	if key < t.kmin || key >= t.kmax {
		return t.End(), false
	}
	n := t.root
	for n.leafIdx < 0 {
		if key < n.left.high {
			n = n.left
		} else {
			n = n.right
		}
	}
	return LeafIter[K, V]{t, t.elems[n.leafIdx]}, true
}

// treeNode is a node of the auxiliary balanced search tree: leafIdx >= 0
// identifies a single elementary segment [keys[leafIdx], keys[leafIdx+1]);
// leafIdx == -1 marks an internal node spanning [low, high).
type treeNode[K Key, V comparable] struct {
	low, high   K
	left, right *treeNode[K, V]
	leafIdx     int
}

// BuildTree constructs the auxiliary balanced search tree over the
// current leaf list, enabling O(log n) SearchTree lookups until the
// next leaf mutation invalidates it.
func (t *Tree[K, V]) BuildTree() {
	n := t.leaves.Len()
	if n < 2 {
		t.root = nil
		t.elems = nil
		t.treeValid = false
		return
	}
	elems := make([]*list.Element, 0, n)
	for e := t.leaves.Front(); e != nil; e = e.Next() {
		elems = append(elems, e)
	}
	t.elems = elems
	t.root = buildTreeRange[K, V](elems, 0, n-1)
	t.treeValid = true
}

// buildTreeRange builds the subtree covering elementary segments
// [lo, hi) of the leaf array (hi-lo segments, spanning keys[lo..hi]).
func buildTreeRange[K Key, V comparable](elems []*list.Element, lo, hi int) *treeNode[K, V] {
	if hi-lo == 1 {
		return &treeNode[K, V]{
			low:     val[K, V](elems[lo]).key,
			high:    val[K, V](elems[hi]).key,
			leafIdx: lo,
		}
	}
	mid := lo + (hi-lo)/2
	left := buildTreeRange[K, V](elems, lo, mid)
	right := buildTreeRange[K, V](elems, mid, hi)
	return &treeNode[K, V]{low: left.low, high: right.high, left: left, right: right, leafIdx: -1}
}
