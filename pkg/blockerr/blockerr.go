// Package blockerr declares the sentinel errors shared by the block
// registry, the multi-type vector, the flat segment tree, and the
// segment tree.
package blockerr

import "errors"

var (
	// ErrOutOfRange is returned when a logical index or position exceeds
	// the bounds of the container it addresses.
	ErrOutOfRange = errors.New("blockvec: index out of range")

	// ErrInvalidArg is returned when an argument pair is structurally
	// inconsistent: a range whose length disagrees with a declared
	// length, or a (low, high)/(kmin, kmax) pair that is not ordered.
	ErrInvalidArg = errors.New("blockvec: invalid argument")

	// ErrTypeMismatch is returned when a typed accessor is invoked
	// against a block whose type tag does not match.
	ErrTypeMismatch = errors.New("blockvec: type mismatch")

	// ErrGeneral is the catch-all for misuse of registry helpers: a nil
	// block, or a block of the wrong tag passed to a tag-specific
	// operation.
	ErrGeneral = errors.New("blockvec: invalid block operation")
)
