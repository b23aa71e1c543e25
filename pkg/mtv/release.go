package mtv

import (
	"fmt"

	"blockvec/pkg/blockerr"
	"blockvec/pkg/tag"
)

// Release transfers ownership of the value at position i out of the
// container, replacing its slot with empty, without running the tag's
// destroy hook — the caller now owns whatever was released. Releasing
// an already-empty position returns (nil, nil).
func (c *Container) Release(i int) (any, error) {
	p, err := c.Position(i)
	if err != nil {
		return nil, err
	}
	if p.Block.End() {
		return nil, fmt.Errorf("mtv: release at %d: %w", i, blockerr.ErrOutOfRange)
	}
	if p.Block.Tag() == tag.Empty {
		return nil, nil
	}
	v, err := p.Block.Data().GetValue(p.Offset)
	if err != nil {
		return nil, err
	}
	c.splitAt(i)
	c.splitAt(i + 1)
	idx, _ := c.blockIndexAt(i)
	c.detachRecords(idx, idx+1)
	return v, nil
}

// ReleaseAll detaches every block in the container without running any
// destroy hook, resetting the container to size 0. Used to avoid a
// double release when ownership of every element has already been
// handed off externally.
func (c *Container) ReleaseAll() {
	for _, b := range c.list {
		c.notifyReleased(b)
	}
	c.list = nil
	c.size = 0
}
