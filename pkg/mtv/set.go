package mtv

import (
	"fmt"

	"blockvec/pkg/blockerr"
	"blockvec/pkg/tag"
)

// Set overwrites the single position i with v. If the position's
// current block already holds v's tag, this is a pure content update
// with no structural change. Otherwise the containing block is split
// as needed and a new length-1 block of v's tag is spliced in, then
// merged with any same-tag neighbor, per the four cases of spec §4.2.3.
func (c *Container) Set(i int, v any) (BlockIter, error) {
	p, err := c.Position(i)
	if err != nil {
		return BlockIter{}, err
	}
	if p.Block.End() {
		return BlockIter{}, fmt.Errorf("mtv: set at %d: %w", i, blockerr.ErrOutOfRange)
	}
	tg, ok := c.registry.TagOf(v)
	if !ok {
		return BlockIter{}, fmt.Errorf("mtv: set: unrecognized value type %T: %w", v, blockerr.ErrTypeMismatch)
	}
	b := c.list[p.Block.Index()]
	if b.tag == tg {
		if err := b.data.SetValue(p.Offset, v); err != nil {
			return BlockIter{}, err
		}
		return BlockIter{c, p.Block.Index()}, nil
	}
	data, err := c.registry.CreateWithValue(tg, 1, v)
	if err != nil {
		return BlockIter{}, err
	}
	idx := c.replaceRange(i, 1, &blockRecord{size: 1, tag: tg, data: data})
	idx, err = c.mergeNeighbors(idx)
	if err != nil {
		return BlockIter{}, err
	}
	return BlockIter{c, idx}, nil
}

// SetRange overwrites the length(vs) positions starting at i with vs,
// in order, deducing the element tag from vs[0]. The leading and
// trailing edges of the range are split off and preserved; blocks fully
// covered are replaced outright. Fails with blockerr.ErrOutOfRange if
// i+len(vs) exceeds the container's size and blockerr.ErrInvalidArg if
// vs is empty.
func (c *Container) SetRange(i int, vs []any) (BlockIter, error) {
	if len(vs) == 0 {
		return BlockIter{}, fmt.Errorf("mtv: set_range with no values: %w", blockerr.ErrInvalidArg)
	}
	if i < 0 || i+len(vs) > c.size {
		return BlockIter{}, fmt.Errorf("mtv: set_range [%d,%d): %w", i, i+len(vs), blockerr.ErrOutOfRange)
	}
	tg, ok := c.registry.TagOf(vs[0])
	if !ok {
		return BlockIter{}, fmt.Errorf("mtv: set_range: unrecognized value type %T: %w", vs[0], blockerr.ErrTypeMismatch)
	}
	data, err := c.registry.CreateFromValues(tg, vs)
	if err != nil {
		return BlockIter{}, err
	}
	idx := c.replaceRange(i, len(vs), &blockRecord{size: len(vs), tag: tg, data: data})
	idx, err = c.mergeNeighbors(idx)
	if err != nil {
		return BlockIter{}, err
	}
	return BlockIter{c, idx}, nil
}

// SetEmpty sets the inclusive range [i, j] to empty. Partial blocks at
// the edges are shrunk via a split; fully-covered blocks are destroyed;
// the resulting empty run merges with any adjacent empty block.
func (c *Container) SetEmpty(i, j int) (BlockIter, error) {
	if i < 0 || j < i || j >= c.size {
		return BlockIter{}, fmt.Errorf("mtv: set_empty [%d,%d]: %w", i, j, blockerr.ErrOutOfRange)
	}
	length := j - i + 1
	idx := c.replaceRange(i, length, &blockRecord{size: length, tag: tag.Empty})
	idx, err := c.mergeNeighbors(idx)
	if err != nil {
		return BlockIter{}, err
	}
	return BlockIter{c, idx}, nil
}
