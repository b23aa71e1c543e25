package mtv

import (
	"fmt"

	"blockvec/pkg/blockerr"
	"blockvec/pkg/blocks"
	"blockvec/pkg/tag"
)

// BlockIter refers to one block (or the end) of a Container. It carries
// both the block's ordinal (Index) and a back-reference to the
// container, so next_position/advance_position/logical_position can run
// in O(1) per step. It is invalidated by any structural mutation of the
// container it came from; using a stale BlockIter afterward is
// undefined, mirroring the source's iterator-invalidation contract.
type BlockIter struct {
	c     *Container
	index int
}

// End reports whether this iterator refers one-past the last block.
func (it BlockIter) End() bool { return it.index >= len(it.c.list) }

// Index returns the block's ordinal in the block list (block_index).
func (it BlockIter) Index() int { return it.index }

// Tag returns the block's element tag. Calling this on the end iterator
// panics, matching "incrementing past end is undefined".
func (it BlockIter) Tag() tag.Tag { return it.c.list[it.index].tag }

// Size returns the block's length.
func (it BlockIter) Size() int { return it.c.list[it.index].size }

// Position returns the block's absolute starting logical index.
func (it BlockIter) Position() int { return it.c.list[it.index].position }

// Data returns the block's backing storage, or nil for an empty block.
func (it BlockIter) Data() blocks.ElementBlock { return it.c.list[it.index].data }

// Next returns the iterator for the following block. Calling this on
// the end iterator is undefined.
func (it BlockIter) Next() BlockIter { return BlockIter{it.c, it.index + 1} }

// Prev returns the iterator for the preceding block. Calling this on the
// begin iterator is undefined; calling it on the end iterator yields the
// last block.
func (it BlockIter) Prev() BlockIter { return BlockIter{it.c, it.index - 1} }

// Equal reports whether it and other refer to the same container and
// block ordinal. The end iterator compares equal only to itself.
func (it BlockIter) Equal(other BlockIter) bool {
	return it.c == other.c && it.index == other.index
}

// Begin returns an iterator to the first block.
func (c *Container) Begin() BlockIter { return BlockIter{c, 0} }

// End returns the one-past-the-last-block iterator.
func (c *Container) End() BlockIter { return BlockIter{c, len(c.list)} }

// RBegin returns an iterator to the last block for reverse traversal,
// stepping backward via Prev; RBegin on an empty container equals REnd.
func (c *Container) RBegin() BlockIter { return BlockIter{c, len(c.list) - 1} }

// REnd is the reverse one-before-the-first-block sentinel.
func (c *Container) REnd() BlockIter { return BlockIter{c, -1} }

// Pos is a position reference: a block iterator plus the offset within
// that block. It is distinct from a BlockIter and is how position(i),
// next_position, and get<T> are expressed.
type Pos struct {
	Block  BlockIter
	Offset int
}

// Position resolves logical index i to a Pos in O(log B) via binary
// search over the block list. i == Size() resolves to the end position.
func (c *Container) Position(i int) (Pos, error) {
	idx, err := c.blockIndexAt(i)
	if err != nil {
		return Pos{}, err
	}
	if idx == len(c.list) {
		return Pos{Block: BlockIter{c, idx}, Offset: 0}, nil
	}
	return Pos{Block: BlockIter{c, idx}, Offset: i - c.list[idx].position}, nil
}

// PositionHint resolves i the same as Position, but starts its search
// by scanning forward or backward from hint's block instead of
// rebinding from the root. Locality-friendly sequential access this way
// runs proportional to the number of blocks actually crossed rather than
// log B. If hint belongs to another container, behavior falls back to a
// full Position(i) search.
func (c *Container) PositionHint(hint Pos, i int) (Pos, error) {
	if hint.Block.c != c {
		return c.Position(i)
	}
	if i < 0 || i > c.size {
		return Pos{}, fmt.Errorf("mtv: position %d: %w", i, blockerr.ErrOutOfRange)
	}
	idx := hint.Block.index
	if idx >= len(c.list) {
		idx = len(c.list) - 1
	}
	if idx < 0 {
		return c.Position(i)
	}
	for idx > 0 && i < c.list[idx].position {
		idx--
	}
	for idx < len(c.list) && i >= c.list[idx].position+c.list[idx].size {
		idx++
	}
	if idx == len(c.list) {
		return Pos{Block: BlockIter{c, idx}, Offset: 0}, nil
	}
	return Pos{Block: BlockIter{c, idx}, Offset: i - c.list[idx].position}, nil
}

// NextPosition advances p by one logical position, moving to the start
// of the following block when p falls off the end of its current one.
func NextPosition(p Pos) (Pos, error) {
	return AdvancePosition(p, 1)
}

// AdvancePosition moves p forward (delta > 0) or backward (delta < 0)
// by delta logical positions, crossing block boundaries as needed, in
// O(1) amortized per block crossed.
func AdvancePosition(p Pos, delta int) (Pos, error) {
	c := p.Block.c
	i := LogicalPosition(p) + delta
	return c.PositionHint(p, i)
}

// LogicalPosition returns the absolute logical index a Pos refers to.
func LogicalPosition(p Pos) int {
	return p.Block.Position() + p.Offset
}

// Get resolves the value at p as T, failing with blockerr.ErrTypeMismatch
// if p's block is empty or does not hold T and blockerr.ErrOutOfRange if
// p refers to the end position.
func Get[T any](p Pos) (T, error) {
	var zero T
	if p.Block.End() {
		return zero, fmt.Errorf("mtv: get at end position: %w", blockerr.ErrOutOfRange)
	}
	if p.Block.Tag() == tag.Empty {
		return zero, fmt.Errorf("mtv: get at empty position: %w", blockerr.ErrTypeMismatch)
	}
	v, err := p.Block.Data().GetValue(p.Offset)
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("mtv: value of type %T is not %T: %w", v, zero, blockerr.ErrTypeMismatch)
	}
	return tv, nil
}
