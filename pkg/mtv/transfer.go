package mtv

import (
	"fmt"

	"blockvec/pkg/blockerr"
	"blockvec/pkg/tag"
)

// Transfer moves the inclusive range [i, j] out of c — leaving it empty
// — into dst, overwriting [k, k+(j-i)]. Whole blocks are detached and
// reattached directly; only the blocks straddling the range's edges are
// split, and no element is copied beyond that split. The moved blocks
// fire a released event on c and an acquired event on dst, per spec
// §4.2.6's "every block creation/destruction fires exactly once,
// including splits".
func (c *Container) Transfer(i, j int, dst *Container, k int) error {
	if i < 0 || j < i || j >= c.size {
		return fmt.Errorf("mtv: transfer src [%d,%d]: %w", i, j, blockerr.ErrOutOfRange)
	}
	length := j - i + 1
	if k < 0 || k+length > dst.size {
		return fmt.Errorf("mtv: transfer dst [%d,%d): %w", k, k+length, blockerr.ErrOutOfRange)
	}
	c.splitAt(i)
	c.splitAt(i + length)
	from, _ := c.blockIndexAt(i)
	to, _ := c.blockIndexAt(i + length)
	recs := c.detachRecords(from, to)
	dst.spliceRecordsInto(k, length, recs)
	return nil
}

// SwapRange exchanges the inclusive range [i, j] of c with the
// equal-length range [k, k+(j-i)] of dst, preserving value identities
// on both sides. It is implemented as three Transfers through a scratch
// container so the splice/merge logic lives in Transfer alone.
func (c *Container) SwapRange(i, j int, dst *Container, k int) error {
	if i < 0 || j < i || j >= c.size {
		return fmt.Errorf("mtv: swap src [%d,%d]: %w", i, j, blockerr.ErrOutOfRange)
	}
	length := j - i + 1
	if k < 0 || k+length > dst.size {
		return fmt.Errorf("mtv: swap dst [%d,%d): %w", k, k+length, blockerr.ErrOutOfRange)
	}
	scratch := &Container{registry: c.registry, list: []*blockRecord{{size: length, tag: tag.Empty}}, size: length}
	if err := c.Transfer(i, j, scratch, 0); err != nil {
		return err
	}
	if err := dst.Transfer(k, k+length-1, c, i); err != nil {
		return err
	}
	return scratch.Transfer(0, length-1, dst, k)
}

// spliceRecordsInto splits at k and k+length, removes (and destroys)
// whatever dst currently holds over [k, k+length), splices recs in,
// fixes positions, fires an acquired event per inserted record, and
// merges both new boundaries. recs' sizes must sum to length.
func (dst *Container) spliceRecordsInto(k, length int, recs []*blockRecord) {
	dst.splitAt(k)
	dst.splitAt(k + length)
	from, _ := dst.blockIndexAt(k)
	to, _ := dst.blockIndexAt(k + length)
	dst.removeRecords(from, to)
	merged := append([]*blockRecord(nil), dst.list[:from]...)
	merged = append(merged, recs...)
	merged = append(merged, dst.list[from:]...)
	dst.list = merged
	dst.recalcPositions(from)
	for _, r := range recs {
		dst.notifyAcquired(r)
	}
	dst.mergeNeighbors(from)
	if len(recs) > 0 {
		dst.mergeNeighbors(from + len(recs) - 1)
	}
}
