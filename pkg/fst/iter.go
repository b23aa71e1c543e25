package fst

import (
	"container/list"
)

// LeafIter refers to one leaf node (or the end) of a Tree. Like the
// multi-type vector's block iterator, it is invalidated by any
// structural mutation of the tree it came from.
type LeafIter[K Key, V comparable] struct {
	t *Tree[K, V]
	e *list.Element
}

// End reports whether this iterator refers past the last leaf.
func (it LeafIter[K, V]) End() bool { return it.e == nil }

// Key returns the leaf's breakpoint key. Calling this on the end
// iterator panics.
func (it LeafIter[K, V]) Key() K { return val[K, V](it.e).key }

// Value returns the leaf's value. On the terminal leaf (key == max_key)
// this value is a placeholder and carries no meaning.
func (it LeafIter[K, V]) Value() V { return val[K, V](it.e).value }

// Next returns the iterator for the following leaf, or the end iterator
// if this is the last leaf.
func (it LeafIter[K, V]) Next() LeafIter[K, V] { return LeafIter[K, V]{it.t, it.e.Next()} }

// Prev returns the iterator for the preceding leaf. Calling this on the
// first leaf is undefined.
func (it LeafIter[K, V]) Prev() LeafIter[K, V] { return LeafIter[K, V]{it.t, it.e.Prev()} }

// IsLast reports whether it refers to the terminal sentinel leaf.
func (it LeafIter[K, V]) IsLast() bool { return it.e != nil && it.e.Next() == nil }

// Begin returns an iterator to the first leaf.
func (t *Tree[K, V]) Begin() LeafIter[K, V] { return LeafIter[K, V]{t, t.leaves.Front()} }

// End returns the one-past-the-last-leaf sentinel iterator.
func (t *Tree[K, V]) End() LeafIter[K, V] { return LeafIter[K, V]{t, nil} }

// RBegin returns an iterator to the last leaf for reverse traversal.
func (t *Tree[K, V]) RBegin() LeafIter[K, V] { return LeafIter[K, V]{t, t.leaves.Back()} }

// SegIter yields half-open {start, end, value} segments: every leaf
// except the terminal sentinel, paired with the key of the next leaf.
type SegIter[K Key, V comparable] struct {
	leaf LeafIter[K, V]
}

// Segments returns an iterator to the first segment, or an iterator
// already at end if the tree has no segments (a malformed tree of one
// leaf, which New never produces).
func (t *Tree[K, V]) Segments() SegIter[K, V] { return SegIter[K, V]{t.Begin()} }

// End reports whether the iterator has advanced past the last segment.
func (it SegIter[K, V]) End() bool { return it.leaf.End() || it.leaf.IsLast() }

// Start returns the segment's starting key.
func (it SegIter[K, V]) Start() K { return it.leaf.Key() }

// Stop returns the segment's exclusive ending key.
func (it SegIter[K, V]) Stop() K { return it.leaf.Next().Key() }

// Value returns the segment's value.
func (it SegIter[K, V]) Value() V { return it.leaf.Value() }

// Next advances to the following segment.
func (it SegIter[K, V]) Next() SegIter[K, V] { return SegIter[K, V]{it.leaf.Next()} }
