package mtv

// Capacity returns the number of block-list slots currently allocated,
// which may exceed BlockSize() after erases/merges have vacated slots
// the underlying slice has not released.
func (c *Container) Capacity() int {
	return cap(c.list)
}

// ShrinkToFit releases any block-list slack accumulated by prior
// mutations, reallocating so Capacity() == BlockSize().
func (c *Container) ShrinkToFit() {
	if cap(c.list) == len(c.list) {
		return
	}
	trimmed := make([]*blockRecord, len(c.list))
	copy(trimmed, c.list)
	c.list = trimmed
}
