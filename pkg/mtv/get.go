package mtv

import (
	"fmt"

	"blockvec/pkg/blockerr"
	"blockvec/pkg/tag"
)

// GetType returns the element tag stored at logical position i.
func (c *Container) GetType(i int) (tag.Tag, error) {
	p, err := c.Position(i)
	if err != nil {
		return tag.Empty, err
	}
	if p.Block.End() {
		return tag.Empty, fmt.Errorf("mtv: get_type at %d: %w", i, blockerr.ErrOutOfRange)
	}
	return p.Block.Tag(), nil
}

// IsEmpty reports whether position i holds no value.
func (c *Container) IsEmpty(i int) (bool, error) {
	tg, err := c.GetType(i)
	if err != nil {
		return false, err
	}
	return tg == tag.Empty, nil
}

// GetValue returns the value at position i as T, per the semantics of
// the package-level Get function.
func GetValue[T any](c *Container, i int) (T, error) {
	p, err := c.Position(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return Get[T](p)
}
