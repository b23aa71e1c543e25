package mtv

import (
	"blockvec/pkg/blocks"
	"blockvec/pkg/tag"
)

// Clone returns an independent deep copy: every block is cloned through
// its registry's clone semantics (user-managed pointer blocks clone
// per-element via their registered hook), and the clone's blocks fire
// fresh acquired events against its own event handler.
func (c *Container) Clone() *Container {
	out := &Container{registry: c.registry, handler: c.handler, size: c.size}
	out.list = make([]*blockRecord, len(c.list))
	for i, b := range c.list {
		var data blocks.ElementBlock
		if b.data != nil {
			data = b.data.Clone()
		}
		nb := &blockRecord{position: b.position, size: b.size, tag: b.tag, data: data}
		out.list[i] = nb
		out.notifyAcquired(nb)
	}
	return out
}

// Equal is structural: same size and the same block sequence — same
// tags, same sizes, elementwise-equal data.
func (c *Container) Equal(other *Container) bool {
	if c.size != other.size || len(c.list) != len(other.list) {
		return false
	}
	for i, b := range c.list {
		ob := other.list[i]
		if b.tag != ob.tag || b.size != ob.size {
			return false
		}
		if b.tag == tag.Empty {
			continue
		}
		if !b.data.Equal(ob.data) {
			return false
		}
	}
	return true
}
