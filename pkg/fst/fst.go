// Package fst implements the flat segment tree: a piecewise-constant
// value map over a half-open key range, stored as a doubly-linked leaf
// list with an optional balanced search tree for accelerated lookups.
package fst

import (
	"container/list"
	"fmt"

	"blockvec/pkg/blockerr"
)

// Key is the constraint satisfied by key types a flat segment tree can
// be built over. Unlike the segment tree's interval endpoints, a flat
// segment tree's shift_left/shift_right need to add and subtract key
// values, which rules out a plain cmp.Ordered (its string arm has no
// arithmetic).
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// leaf is one breakpoint node: value applies to [key, next leaf's key).
// The last leaf's value slot is unused; its key is always kmax.
type leaf[K Key, V comparable] struct {
	key   K
	value V
}

// Tree is a flat segment tree over key range [kmin, kmax) with default
// value def, modeled on the teacher's doubly-linked list usage in
// pkg/pager.go for its LRU chain.
type Tree[K Key, V comparable] struct {
	leaves    *list.List
	kmin      K
	kmax      K
	def       V
	treeValid bool
	root      *treeNode[K, V]
	elems     []*list.Element
}

func val[K Key, V comparable](e *list.Element) *leaf[K, V] {
	return e.Value.(*leaf[K, V])
}

// New constructs a tree spanning [kmin, kmax) with a single segment
// holding def. Fails with blockerr.ErrInvalidArg if kmin >= kmax.
func New[K Key, V comparable](kmin, kmax K, def V) (*Tree[K, V], error) {
	if kmin >= kmax {
		return nil, fmt.Errorf("fst: kmin %v >= kmax %v: %w", kmin, kmax, blockerr.ErrInvalidArg)
	}
	t := &Tree[K, V]{leaves: list.New(), kmin: kmin, kmax: kmax, def: def}
	t.leaves.PushBack(&leaf[K, V]{key: kmin, value: def})
	t.leaves.PushBack(&leaf[K, V]{key: kmax, value: def})
	return t, nil
}

// MinKey returns kmin.
func (t *Tree[K, V]) MinKey() K { return t.kmin }

// MaxKey returns kmax.
func (t *Tree[K, V]) MaxKey() K { return t.kmax }

// DefaultValue returns the value a fresh or cleared tree holds
// throughout [kmin, kmax).
func (t *Tree[K, V]) DefaultValue() V { return t.def }

// LeafSize returns the number of leaf nodes, including the terminal one.
func (t *Tree[K, V]) LeafSize() int { return t.leaves.Len() }

// IsTreeValid reports whether the auxiliary search tree reflects the
// current leaf list.
func (t *Tree[K, V]) IsTreeValid() bool { return t.treeValid }

// Clear resets the tree to a single default-valued segment spanning
// [kmin, kmax), invalidating the search tree.
func (t *Tree[K, V]) Clear() {
	t.leaves.Init()
	t.leaves.PushBack(&leaf[K, V]{key: t.kmin, value: t.def})
	t.leaves.PushBack(&leaf[K, V]{key: t.kmax, value: t.def})
	t.invalidate()
}

// Swap exchanges the entire contents of t and other.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	t.leaves, other.leaves = other.leaves, t.leaves
	t.kmin, other.kmin = other.kmin, t.kmin
	t.kmax, other.kmax = other.kmax, t.kmax
	t.def, other.def = other.def, t.def
	t.treeValid, other.treeValid = false, false
	t.root, other.root = nil, nil
	t.elems, other.elems = nil, nil
}

func (t *Tree[K, V]) invalidate() {
	t.treeValid = false
	t.root = nil
	t.elems = nil
}

// Equal reports structural equality: same bounds, same default, and the
// same leaf sequence.
func (t *Tree[K, V]) Equal(other *Tree[K, V]) bool {
	if t.kmin != other.kmin || t.kmax != other.kmax || t.def != other.def {
		return false
	}
	if t.leaves.Len() != other.leaves.Len() {
		return false
	}
	a, b := t.leaves.Front(), other.leaves.Front()
	for a != nil {
		la, lb := val[K, V](a), val[K, V](b)
		if la.key != lb.key || la.value != lb.value {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}
