package mtv

import (
	"fmt"

	"blockvec/pkg/blockerr"
	"blockvec/pkg/tag"
)

// PushBack appends v as the new last position, in O(1) amortized: if
// the tail block already holds v's tag it grows in place, otherwise a
// new length-1 tail block is created.
func (c *Container) PushBack(v any) (BlockIter, error) {
	tg, ok := c.registry.TagOf(v)
	if !ok {
		return BlockIter{}, fmt.Errorf("mtv: push_back: unrecognized value type %T: %w", v, blockerr.ErrTypeMismatch)
	}
	if n := len(c.list); n > 0 && c.list[n-1].tag == tg {
		last := c.list[n-1]
		if err := last.data.AppendValue(v); err != nil {
			return BlockIter{}, err
		}
		last.size++
		c.size++
		return BlockIter{c, n - 1}, nil
	}
	data, err := c.registry.CreateWithValue(tg, 1, v)
	if err != nil {
		return BlockIter{}, err
	}
	c.appendRecord(&blockRecord{size: 1, tag: tg, data: data})
	return BlockIter{c, len(c.list) - 1}, nil
}

// PushBackEmpty appends an empty position, in O(1) amortized.
func (c *Container) PushBackEmpty() (BlockIter, error) {
	if n := len(c.list); n > 0 && c.list[n-1].tag == tag.Empty {
		c.list[n-1].size++
		c.size++
		return BlockIter{c, n - 1}, nil
	}
	c.appendRecord(&blockRecord{size: 1, tag: tag.Empty})
	return BlockIter{c, len(c.list) - 1}, nil
}
