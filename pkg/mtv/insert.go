package mtv

import (
	"fmt"

	"blockvec/pkg/blockerr"
	"blockvec/pkg/tag"
)

// insertGrowing splits at i, splices rec into the block list there, and
// grows the container by rec.size. i == Size() appends at the tail.
func (c *Container) insertGrowing(i int, rec *blockRecord) (int, error) {
	if i < 0 || i > c.size {
		return 0, fmt.Errorf("mtv: insert at %d: %w", i, blockerr.ErrOutOfRange)
	}
	c.splitAt(i)
	idx, _ := c.blockIndexAt(i)
	c.insertRecordAt(idx, rec)
	c.size += rec.size
	return idx, nil
}

// Insert splices len(vs) new positions at i, in order, deducing the
// element tag from vs[0], growing the container's size by len(vs).
func (c *Container) Insert(i int, vs []any) (BlockIter, error) {
	if len(vs) == 0 {
		return BlockIter{}, fmt.Errorf("mtv: insert with no values: %w", blockerr.ErrInvalidArg)
	}
	tg, ok := c.registry.TagOf(vs[0])
	if !ok {
		return BlockIter{}, fmt.Errorf("mtv: insert: unrecognized value type %T: %w", vs[0], blockerr.ErrTypeMismatch)
	}
	data, err := c.registry.CreateFromValues(tg, vs)
	if err != nil {
		return BlockIter{}, err
	}
	idx, err := c.insertGrowing(i, &blockRecord{size: len(vs), tag: tg, data: data})
	if err != nil {
		return BlockIter{}, err
	}
	idx, err = c.mergeNeighbors(idx)
	if err != nil {
		return BlockIter{}, err
	}
	return BlockIter{c, idx}, nil
}

// InsertEmpty splices n empty positions at i, growing the container's
// size by n.
func (c *Container) InsertEmpty(i, n int) (BlockIter, error) {
	if n <= 0 {
		return BlockIter{}, fmt.Errorf("mtv: insert_empty count %d: %w", n, blockerr.ErrInvalidArg)
	}
	idx, err := c.insertGrowing(i, &blockRecord{size: n, tag: tag.Empty})
	if err != nil {
		return BlockIter{}, err
	}
	idx, err = c.mergeNeighbors(idx)
	if err != nil {
		return BlockIter{}, err
	}
	return BlockIter{c, idx}, nil
}
