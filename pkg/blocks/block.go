// Package blocks implements the element-block registry: the dispatch
// layer, keyed by a small integer type tag, that the multi-type vector
// uses to create, clone, resize, and splice the dense per-type storage
// backing each of its blocks.
package blocks

import (
	"blockvec/pkg/tag"
)

// ElementBlock is the uniform interface every per-type storage block
// implements. All same-tag-input assumptions are the caller's
// responsibility: a block fails with a type-mismatch error if an
// incompatible value is handed to it, and with an invalid-argument error
// if a bulk operation's lengths disagree.
type ElementBlock interface {
	// Tag reports the element type this block stores.
	Tag() tag.Tag

	// Len reports the number of elements currently stored.
	Len() int

	// Clone returns an independent deep copy. Pointer-typed blocks clone
	// by pointer value only unless built with a clone hook (see
	// TypedBlockHooks), in which case every element is cloned through it.
	Clone() ElementBlock

	// Resize grows or shrinks the block in place. Growing default-
	// initializes the new trailing slots; shrinking destroys them
	// through the release hook first.
	Resize(n int)

	// SplitOff truncates this block to [0, pos) and returns a new block
	// holding what was [pos, Len()). Values move to the returned block
	// without running the clone or destroy hook.
	SplitOff(pos int) ElementBlock

	// Erase removes the [pos, pos+length) sub-range in place, destroying
	// the removed elements through the release hook.
	Erase(pos, length int)

	AppendValue(v any) error
	AppendValues(vs []any) error
	PrependValue(v any) error
	PrependValues(vs []any) error
	InsertValues(pos int, vs []any) error
	SetValue(pos int, v any) error
	SetValues(pos int, vs []any) error
	GetValue(pos int) (any, error)

	// AssignValuesFrom replaces this block's entire contents with the
	// [begin, begin+length) sub-range of src, which must share this
	// block's tag.
	AssignValuesFrom(src ElementBlock, begin, length int) error

	// AppendValuesFrom appends the [begin, begin+length) sub-range of
	// src, which must share this block's tag, cloning each value through
	// src's clone hook. This is a copy: src keeps its own
	// elements and owns them still.
	AppendValuesFrom(src ElementBlock, begin, length int) error

	// AppendValuesFromMove appends the [begin, begin+length) sub-range
	// of src, which must share this block's tag, by moving the values
	// across without running the clone hook. Ownership of anything those
	// values hold transfers to the receiver; src must not be used again
	// for those positions (the caller is expected to drop src's record
	// outright, as the block merge in pkg/mtv does, not destroy it).
	AppendValuesFromMove(src ElementBlock, begin, length int) error

	// Equal compares tag and element sequence.
	Equal(other ElementBlock) bool

	// Release runs the tag's destroy hook over every stored element and
	// then detaches the backing storage. It is invoked exactly once,
	// immediately before the block is dropped.
	Release()
}
