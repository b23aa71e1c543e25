// Package mtv implements the multi-type vector: a logically contiguous
// sequence of N positions, each either empty or holding a typed value,
// stored as an ordered partition of [0,N) into same-tag blocks.
package mtv

import (
	"fmt"

	"blockvec/pkg/blockerr"
	"blockvec/pkg/blocks"
	"blockvec/pkg/tag"
)

// blockRecord is one entry of the ordered block partition: {position,
// size, type_tag, data} from spec §3. data is nil iff tag == tag.Empty.
type blockRecord struct {
	position int
	size     int
	tag      tag.Tag
	data     blocks.ElementBlock
}

// EventHandler is notified exactly once per element-block creation and
// destruction, including the boundary pieces produced by a split. It is
// borrowed by the Container for its lifetime and carried across Copy/
// Swap/Transfer the same way the rest of the container's state is.
type EventHandler interface {
	ElementBlockAcquired(info BlockInfo)
	ElementBlockReleased(info BlockInfo)
}

// BlockInfo describes a block for event-handler notifications.
type BlockInfo struct {
	Tag      tag.Tag
	Size     int
	Position int
}

// Container is the multi-type vector.
type Container struct {
	registry *blocks.Registry
	list     []*blockRecord
	size     int
	handler  EventHandler
}

// Options configures a Container at construction. Registry is required
// whenever the container will ever hold a non-empty value; a
// registry-less Container can still represent all-empty sequences.
type Options struct {
	Registry *blocks.Registry
	Handler  EventHandler
}

// New constructs an empty container (size 0, no blocks).
func New(opts Options) *Container {
	return &Container{registry: opts.Registry, handler: opts.Handler}
}

// NewSized constructs a container of size n: a single empty block of
// length n, or no blocks at all if n == 0.
func NewSized(opts Options, n int) *Container {
	c := New(opts)
	if n > 0 {
		c.appendRecord(&blockRecord{size: n, tag: tag.Empty})
	}
	return c
}

// NewWithValue constructs a container of size n, every position holding
// v.
func NewWithValue(opts Options, n int, v any) (*Container, error) {
	c := New(opts)
	if n == 0 {
		return c, nil
	}
	tg, ok := c.registry.TagOf(v)
	if !ok {
		return nil, fmt.Errorf("mtv: unrecognized value type %T: %w", v, blockerr.ErrTypeMismatch)
	}
	data, err := c.registry.CreateWithValue(tg, n, v)
	if err != nil {
		return nil, err
	}
	c.appendRecord(&blockRecord{size: n, tag: tg, data: data})
	return c, nil
}

// NewFromValues constructs a container of size len(vs), with an element
// type deduced from vs[0]. An empty vs yields an empty container (size
// 0, no blocks) and no error.
func NewFromValues(opts Options, vs []any) (*Container, error) {
	c := New(opts)
	if len(vs) == 0 {
		return c, nil
	}
	tg, ok := c.registry.TagOf(vs[0])
	if !ok {
		return nil, fmt.Errorf("mtv: unrecognized value type %T: %w", vs[0], blockerr.ErrTypeMismatch)
	}
	data, err := c.registry.CreateFromValues(tg, vs)
	if err != nil {
		return nil, err
	}
	c.appendRecord(&blockRecord{size: len(vs), tag: tg, data: data})
	return c, nil
}

// Size returns the container's logical size, the sum of all block sizes.
func (c *Container) Size() int { return c.size }

// Empty reports whether the container has zero size (equivalently, no
// blocks).
func (c *Container) Empty() bool { return c.size == 0 }

// BlockSize returns the number of blocks in the partition.
func (c *Container) BlockSize() int { return len(c.list) }

// Clear destroys every block, through Release, and resets the container
// to size 0.
func (c *Container) Clear() {
	for _, b := range c.list {
		c.destroyRecord(b)
	}
	c.list = nil
	c.size = 0
}

// Swap exchanges block lists, sizes, and event handlers with other.
func (c *Container) Swap(other *Container) {
	c.list, other.list = other.list, c.list
	c.size, other.size = other.size, c.size
	c.handler, other.handler = other.handler, c.handler
	c.registry, other.registry = other.registry, c.registry
}

// appendRecord appends b to the block list, fixing its position, and
// fires the acquire event.
func (c *Container) appendRecord(b *blockRecord) {
	b.position = c.size
	c.list = append(c.list, b)
	c.size += b.size
	c.notifyAcquired(b)
}

func (c *Container) notifyAcquired(b *blockRecord) {
	if c.handler != nil {
		c.handler.ElementBlockAcquired(BlockInfo{Tag: b.tag, Size: b.size, Position: b.position})
	}
}

func (c *Container) notifyReleased(b *blockRecord) {
	if c.handler != nil {
		c.handler.ElementBlockReleased(BlockInfo{Tag: b.tag, Size: b.size, Position: b.position})
	}
}

// destroyRecord releases a block's storage and fires the release event.
// It does not remove b from c.list; callers do that themselves.
func (c *Container) destroyRecord(b *blockRecord) {
	if b.data != nil {
		b.data.Release()
	}
	c.notifyReleased(b)
}

// recalcPositions fixes the .position field of every block starting at
// list index from, assuming everything before it is already correct.
func (c *Container) recalcPositions(from int) {
	pos := 0
	if from > 0 {
		pos = c.list[from-1].position + c.list[from-1].size
	}
	for i := from; i < len(c.list); i++ {
		c.list[i].position = pos
		pos += c.list[i].size
	}
}

// blockIndexAt returns the list index of the block containing logical
// position i, via binary search over the sorted .position field
// (O(log B)). i == c.size resolves to the end index len(c.list).
func (c *Container) blockIndexAt(i int) (int, error) {
	if i < 0 || i > c.size {
		return 0, fmt.Errorf("mtv: position %d: %w", i, blockerr.ErrOutOfRange)
	}
	if i == c.size {
		return len(c.list), nil
	}
	lo, hi := 0, len(c.list)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if c.list[mid].position <= i {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}

// removeRecords deletes list[from:to], destroying each removed block's
// contents (they are being overwritten, not relocated), and fixes the
// positions of everything after.
func (c *Container) removeRecords(from, to int) {
	for i := from; i < to; i++ {
		c.destroyRecord(c.list[i])
	}
	c.list = append(c.list[:from], c.list[to:]...)
	c.recalcPositions(from)
}

// detachRecords removes list[from:to] without running any destroy hook
// on their contents — the blocks are being relocated (Transfer) or
// handed to the caller (Release), not destroyed — and fires only the
// bookkeeping release event. The vacated range is refilled with a
// single empty block of the same total size, and the new boundary is
// merged. Returns the detached records in order.
func (c *Container) detachRecords(from, to int) []*blockRecord {
	recs := append([]*blockRecord(nil), c.list[from:to]...)
	length := 0
	for _, r := range recs {
		c.notifyReleased(r)
		length += r.size
	}
	filler := &blockRecord{size: length, tag: tag.Empty}
	c.list = append(c.list[:from:from], append([]*blockRecord{filler}, c.list[to:]...)...)
	c.recalcPositions(from)
	c.notifyAcquired(filler)
	c.mergeNeighbors(from)
	return recs
}

// mergeWithNext merges list[idx] and list[idx+1] if they share a tag,
// returning true if a merge happened. Merging two empty blocks just
// combines their sizes; merging two typed blocks splices element data
// and fires a release event for the absorbed block (its identity is
// gone, even though its elements survive inside the other block).
func (c *Container) mergeWithNext(idx int) (bool, error) {
	if idx < 0 || idx+1 >= len(c.list) {
		return false, nil
	}
	a, b := c.list[idx], c.list[idx+1]
	if a.tag != b.tag {
		return false, nil
	}
	if a.tag == tag.Empty {
		a.size += b.size
		c.list = append(c.list[:idx+1], c.list[idx+2:]...)
		c.notifyReleased(b)
		c.recalcPositions(idx)
		return true, nil
	}
	// A merge moves b's elements into a rather than cloning them: b's
	// identity is gone, but its elements survive as themselves inside a,
	// not as copies, and ownership transfers without ever running a
	// destroy hook on what's being kept.
	if err := a.data.AppendValuesFromMove(b.data, 0, b.size); err != nil {
		return false, err
	}
	a.size += b.size
	c.list = append(c.list[:idx+1], c.list[idx+2:]...)
	c.notifyReleased(b)
	c.recalcPositions(idx)
	return true, nil
}

// mergeNeighbors tries to merge list[idx] with both its previous and
// next neighbor, in that order. Returns the (possibly shifted) index of
// the surviving block.
func (c *Container) mergeNeighbors(idx int) (int, error) {
	if idx > 0 {
		if ok, err := c.mergeWithNext(idx - 1); err != nil {
			return idx, err
		} else if ok {
			idx--
		}
	}
	if _, err := c.mergeWithNext(idx); err != nil {
		return idx, err
	}
	return idx, nil
}
