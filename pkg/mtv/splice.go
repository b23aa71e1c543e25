package mtv

import "blockvec/pkg/tag"

// splitAt ensures a block boundary exists at logical position pos,
// splitting the block that currently straddles it. No block event fires
// for the retained (left) half — it keeps its identity, just shrunk —
// but the carved-out right half is a newly created block and fires
// Acquired. pos == 0 or pos == size is already a boundary and is a
// no-op.
func (c *Container) splitAt(pos int) {
	if pos <= 0 || pos >= c.size {
		return
	}
	idx, _ := c.blockIndexAt(pos)
	b := c.list[idx]
	if b.position == pos {
		return
	}
	offset := pos - b.position
	var right *blockRecord
	if b.tag == tag.Empty {
		right = &blockRecord{size: b.size - offset, tag: tag.Empty}
	} else {
		right = &blockRecord{size: b.size - offset, tag: b.tag, data: b.data.SplitOff(offset)}
	}
	b.size = offset
	c.list = append(c.list, nil)
	copy(c.list[idx+2:], c.list[idx+1:])
	c.list[idx+1] = right
	c.recalcPositions(idx + 1)
	c.notifyAcquired(right)
}

// insertRecordAt inserts rec into the block list at idx, fixing
// positions and firing the acquire event.
func (c *Container) insertRecordAt(idx int, rec *blockRecord) {
	c.list = append(c.list, nil)
	copy(c.list[idx+1:], c.list[idx:])
	c.list[idx] = rec
	c.recalcPositions(idx)
	c.notifyAcquired(rec)
}

// replaceRange splits at i and i+length so the range is block-aligned,
// removes the blocks now fully inside [i, i+length), and inserts rec in
// their place, fixing positions. It returns the list index rec ends up
// at. rec.size must equal length.
func (c *Container) replaceRange(i, length int, rec *blockRecord) int {
	c.splitAt(i)
	c.splitAt(i + length)
	from, _ := c.blockIndexAt(i)
	to, _ := c.blockIndexAt(i + length)
	c.removeRecords(from, to)
	c.insertRecordAt(from, rec)
	return from
}
