package mtv

import "blockvec/pkg/tag"

// Resize grows or shrinks the container to exactly n. Growing appends
// (or extends the trailing empty block with) n-Size() empty positions.
// Shrinking truncates at the block containing position n-1, shrinking
// that block's storage if the cut falls mid-block and destroying
// everything after it.
func (c *Container) Resize(n int) {
	switch {
	case n == c.size:
		return
	case n > c.size:
		if last := len(c.list) - 1; last >= 0 && c.list[last].tag == tag.Empty {
			c.list[last].size += n - c.size
			c.size = n
			return
		}
		c.appendRecord(&blockRecord{size: n - c.size, tag: tag.Empty})
	case n == 0:
		c.Clear()
	default:
		c.splitAt(n)
		idx, _ := c.blockIndexAt(n)
		c.removeRecords(idx, len(c.list))
		c.size = n
	}
}
