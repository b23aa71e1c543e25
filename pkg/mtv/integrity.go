package mtv

import (
	"fmt"

	"blockvec/pkg/tag"
)

// CheckBlockIntegrity verifies the universal invariants of spec §8: no
// two adjacent blocks share a tag, every block's stored data (if any)
// has length equal to its size, positions are contiguous and start at
// zero, and the sum of block sizes equals Size(). It returns an error
// describing the first violation found; a violation here is a bug in
// this package, not a consequence of caller input, and the check is
// meant for tests and debug builds, not production call paths.
func (c *Container) CheckBlockIntegrity() error {
	pos := 0
	for i, b := range c.list {
		if b.position != pos {
			return fmt.Errorf("mtv: block %d position %d, want %d", i, b.position, pos)
		}
		if b.size <= 0 {
			return fmt.Errorf("mtv: block %d has non-positive size %d", i, b.size)
		}
		if b.tag == tag.Empty {
			if b.data != nil {
				return fmt.Errorf("mtv: block %d is tagged empty but has data", i)
			}
		} else {
			if b.data == nil {
				return fmt.Errorf("mtv: block %d tagged %v has nil data", i, b.tag)
			}
			if b.data.Len() != b.size {
				return fmt.Errorf("mtv: block %d data length %d != size %d", i, b.data.Len(), b.size)
			}
			if b.data.Tag() != b.tag {
				return fmt.Errorf("mtv: block %d data tag %v != block tag %v", i, b.data.Tag(), b.tag)
			}
		}
		if i > 0 && c.list[i-1].tag == b.tag {
			return fmt.Errorf("mtv: adjacent blocks %d and %d share tag %v", i-1, i, b.tag)
		}
		pos += b.size
	}
	if pos != c.size {
		return fmt.Errorf("mtv: sum of block sizes %d != container size %d", pos, c.size)
	}
	if c.size == 0 && len(c.list) != 0 {
		return fmt.Errorf("mtv: zero-size container has %d blocks", len(c.list))
	}
	return nil
}
