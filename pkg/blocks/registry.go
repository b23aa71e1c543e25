package blocks

import (
	"fmt"

	"blockvec/pkg/blockerr"
	"blockvec/pkg/tag"
)

// UserTag registers a caller-supplied element type under a tag at or
// above tag.UserStart. Match identifies which Go values belong to this
// tag when the registry deduces a tag from a statically-typed value
// (mirroring TagOf for built-ins). New/NewWithValue/NewFromValues
// construct the block; they are the user-type equivalent of the
// built-in factories switched on below. Clone and destroy hooks, for the
// "managed" pointer-block variant, live in the blocks those factories
// build (see NewManagedUserTag); UserTag itself carries no hook fields.
type UserTag struct {
	Tag           tag.Tag
	Match         func(v any) bool
	New           func(n int) ElementBlock
	NewWithValue  func(n int, v any) ElementBlock
	NewFromValues func(vs []any) ElementBlock
}

// Config configures a Registry: the set of user-defined tags on top of
// the fixed built-in set. There is no equivalent knob for built-ins —
// the built-in tag table is fixed at compile time per §6.
type Config struct {
	UserTags []UserTag
}

// Registry is the block-function dispatch table: it deduces tags from
// values and creates blocks of the correct per-tag implementation by
// switching on the tag, falling back to the caller-registered user-tag
// table when the tag isn't built in. Clone/resize/erase/append/equal/
// release then dispatch through the created block's ElementBlock
// methods, not through the Registry.
type Registry struct {
	cfg   Config
	byTag map[tag.Tag]UserTag
}

// NewRegistry builds a Registry from cfg. Registering the same user tag
// twice is a caller bug; the later registration wins.
func NewRegistry(cfg Config) *Registry {
	byTag := make(map[tag.Tag]UserTag, len(cfg.UserTags))
	for _, u := range cfg.UserTags {
		byTag[u.Tag] = u
	}
	return &Registry{cfg: cfg, byTag: byTag}
}

// TagOf maps a statically-typed Go value to its element tag, used by the
// multi-type vector to decide block compatibility on untyped writes.
func (r *Registry) TagOf(v any) (tag.Tag, bool) {
	switch v.(type) {
	case bool:
		return tag.Bool, true
	case int8:
		return tag.Int8, true
	case int16:
		return tag.Int16, true
	case int32:
		return tag.Int32, true
	case int64:
		return tag.Int64, true
	case uint8:
		return tag.Uint8, true
	case uint16:
		return tag.Uint16, true
	case uint32:
		return tag.Uint32, true
	case uint64:
		return tag.Uint64, true
	case float32:
		return tag.Float32, true
	case float64:
		return tag.Float64, true
	case string:
		return tag.String, true
	}
	for _, u := range r.cfg.UserTags {
		if u.Match(v) {
			return u.Tag, true
		}
	}
	return tag.Empty, false
}

// Create builds an empty (default-valued) block of length n for tg.
// tg == tag.Empty is handled by the caller: the empty tag has no
// storage, only a size.
func (r *Registry) Create(tg tag.Tag, n int) (ElementBlock, error) {
	switch tg {
	case TagBool:
		return NewTypedBlock[bool](TagBool, n, TypedBlockHooks[bool]{}), nil
	case TagInt8:
		return NewTypedBlock[int8](TagInt8, n, TypedBlockHooks[int8]{}), nil
	case TagInt16:
		return NewTypedBlock[int16](TagInt16, n, TypedBlockHooks[int16]{}), nil
	case TagInt32:
		return NewTypedBlock[int32](TagInt32, n, TypedBlockHooks[int32]{}), nil
	case TagInt64:
		return NewTypedBlock[int64](TagInt64, n, TypedBlockHooks[int64]{}), nil
	case TagUint8:
		return NewTypedBlock[uint8](TagUint8, n, TypedBlockHooks[uint8]{}), nil
	case TagUint16:
		return NewTypedBlock[uint16](TagUint16, n, TypedBlockHooks[uint16]{}), nil
	case TagUint32:
		return NewTypedBlock[uint32](TagUint32, n, TypedBlockHooks[uint32]{}), nil
	case TagUint64:
		return NewTypedBlock[uint64](TagUint64, n, TypedBlockHooks[uint64]{}), nil
	case TagFloat32:
		return NewTypedBlock[float32](TagFloat32, n, TypedBlockHooks[float32]{}), nil
	case TagFloat64:
		return NewTypedBlock[float64](TagFloat64, n, TypedBlockHooks[float64]{}), nil
	case TagString:
		return NewTypedBlock[string](TagString, n, TypedBlockHooks[string]{}), nil
	default:
		if u, ok := r.byTag[tg]; ok {
			return u.New(n), nil
		}
		return nil, fmt.Errorf("blocks: unregistered tag %v: %w", tg, blockerr.ErrGeneral)
	}
}

// CreateWithValue builds a block of length n, every slot set to v.
func (r *Registry) CreateWithValue(tg tag.Tag, n int, v any) (ElementBlock, error) {
	switch tg {
	case TagBool:
		tv, err := assertValue[bool](v)
		return NewTypedBlockWithValue[bool](TagBool, n, tv, TypedBlockHooks[bool]{}), err
	case TagInt8:
		tv, err := assertValue[int8](v)
		return NewTypedBlockWithValue[int8](TagInt8, n, tv, TypedBlockHooks[int8]{}), err
	case TagInt16:
		tv, err := assertValue[int16](v)
		return NewTypedBlockWithValue[int16](TagInt16, n, tv, TypedBlockHooks[int16]{}), err
	case TagInt32:
		tv, err := assertValue[int32](v)
		return NewTypedBlockWithValue[int32](TagInt32, n, tv, TypedBlockHooks[int32]{}), err
	case TagInt64:
		tv, err := assertValue[int64](v)
		return NewTypedBlockWithValue[int64](TagInt64, n, tv, TypedBlockHooks[int64]{}), err
	case TagUint8:
		tv, err := assertValue[uint8](v)
		return NewTypedBlockWithValue[uint8](TagUint8, n, tv, TypedBlockHooks[uint8]{}), err
	case TagUint16:
		tv, err := assertValue[uint16](v)
		return NewTypedBlockWithValue[uint16](TagUint16, n, tv, TypedBlockHooks[uint16]{}), err
	case TagUint32:
		tv, err := assertValue[uint32](v)
		return NewTypedBlockWithValue[uint32](TagUint32, n, tv, TypedBlockHooks[uint32]{}), err
	case TagUint64:
		tv, err := assertValue[uint64](v)
		return NewTypedBlockWithValue[uint64](TagUint64, n, tv, TypedBlockHooks[uint64]{}), err
	case TagFloat32:
		tv, err := assertValue[float32](v)
		return NewTypedBlockWithValue[float32](TagFloat32, n, tv, TypedBlockHooks[float32]{}), err
	case TagFloat64:
		tv, err := assertValue[float64](v)
		return NewTypedBlockWithValue[float64](TagFloat64, n, tv, TypedBlockHooks[float64]{}), err
	case TagString:
		tv, err := assertValue[string](v)
		return NewTypedBlockWithValue[string](TagString, n, tv, TypedBlockHooks[string]{}), err
	default:
		if u, ok := r.byTag[tg]; ok {
			return u.NewWithValue(n, v), nil
		}
		return nil, fmt.Errorf("blocks: unregistered tag %v: %w", tg, blockerr.ErrGeneral)
	}
}

// CreateFromValues builds a block of tag tg copying vs in order.
func (r *Registry) CreateFromValues(tg tag.Tag, vs []any) (ElementBlock, error) {
	switch tg {
	case TagBool:
		return newFromValues[bool](TagBool, vs)
	case TagInt8:
		return newFromValues[int8](TagInt8, vs)
	case TagInt16:
		return newFromValues[int16](TagInt16, vs)
	case TagInt32:
		return newFromValues[int32](TagInt32, vs)
	case TagInt64:
		return newFromValues[int64](TagInt64, vs)
	case TagUint8:
		return newFromValues[uint8](TagUint8, vs)
	case TagUint16:
		return newFromValues[uint16](TagUint16, vs)
	case TagUint32:
		return newFromValues[uint32](TagUint32, vs)
	case TagUint64:
		return newFromValues[uint64](TagUint64, vs)
	case TagFloat32:
		return newFromValues[float32](TagFloat32, vs)
	case TagFloat64:
		return newFromValues[float64](TagFloat64, vs)
	case TagString:
		return newFromValues[string](TagString, vs)
	default:
		if u, ok := r.byTag[tg]; ok {
			return u.NewFromValues(vs), nil
		}
		return nil, fmt.Errorf("blocks: unregistered tag %v: %w", tg, blockerr.ErrGeneral)
	}
}

func assertValue[T any](v any) (T, error) {
	tv, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("blocks: value of type %T incompatible: %w", v, blockerr.ErrTypeMismatch)
	}
	return tv, nil
}

func newFromValues[T comparable](tg tag.Tag, vs []any) (ElementBlock, error) {
	out := make([]T, len(vs))
	for i, v := range vs {
		tv, err := assertValue[T](v)
		if err != nil {
			return nil, err
		}
		out[i] = tv
	}
	return NewTypedBlockFromValues[T](tg, out, TypedBlockHooks[T]{}), nil
}

// Built-in tag aliases kept local to this file so the switch statements
// above read as the single source of truth for the built-in tag set.
const (
	TagBool    = tag.Bool
	TagInt8    = tag.Int8
	TagInt16   = tag.Int16
	TagInt32   = tag.Int32
	TagInt64   = tag.Int64
	TagUint8   = tag.Uint8
	TagUint16  = tag.Uint16
	TagUint32  = tag.Uint32
	TagUint64  = tag.Uint64
	TagFloat32 = tag.Float32
	TagFloat64 = tag.Float64
	TagString  = tag.String
)
