package mtv

import (
	"fmt"

	"blockvec/pkg/blockerr"
)

// Erase removes the inclusive range [i, j], shrinking the container's
// size by j-i+1. Partially-covered edge blocks are split and kept;
// fully-covered blocks are destroyed; the two surviving edges merge if
// they end up adjacent with the same tag.
func (c *Container) Erase(i, j int) error {
	if i < 0 || j < i || j >= c.size {
		return fmt.Errorf("mtv: erase [%d,%d]: %w", i, j, blockerr.ErrOutOfRange)
	}
	length := j - i + 1
	c.splitAt(i)
	c.splitAt(i + length)
	from, _ := c.blockIndexAt(i)
	to, _ := c.blockIndexAt(i + length)
	c.removeRecords(from, to)
	c.size -= length
	if _, err := c.mergeNeighbors(from); err != nil {
		return err
	}
	return nil
}
