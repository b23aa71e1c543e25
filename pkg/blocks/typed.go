package blocks

import (
	"fmt"

	"blockvec/pkg/blockerr"
	"blockvec/pkg/tag"
)

// TypedBlockHooks customizes the behavior of a TypedBlock beyond the
// comparable-type defaults. Clone and Destroy give user-registered
// "managed" element types (§4.1's managed variant) a place to deep-copy
// or release owned resources; Equal overrides the default == comparison
// for types where value equality isn't what == gives you (e.g. pointer
// types that should compare by referent).
type TypedBlockHooks[T comparable] struct {
	Clone   func(T) T
	Destroy func(T)
	Equal   func(a, b T) bool
}

// TypedBlock is the dense, ordered storage for one non-empty element
// tag. It backs every built-in scalar tag and any user-registered tag
// whose storage type is comparable.
type TypedBlock[T comparable] struct {
	tg    tag.Tag
	data  []T
	hooks TypedBlockHooks[T]
}

// NewTypedBlock creates a block of length n, every slot set to the zero
// value of T.
func NewTypedBlock[T comparable](tg tag.Tag, n int, hooks TypedBlockHooks[T]) *TypedBlock[T] {
	return &TypedBlock[T]{tg: tg, data: make([]T, n), hooks: fillHooks(hooks)}
}

// NewTypedBlockWithValue creates a block of length n, every slot set to v.
func NewTypedBlockWithValue[T comparable](tg tag.Tag, n int, v T, hooks TypedBlockHooks[T]) *TypedBlock[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = v
	}
	return &TypedBlock[T]{tg: tg, data: data, hooks: fillHooks(hooks)}
}

// NewTypedBlockFromValues creates a block copying vs in order.
func NewTypedBlockFromValues[T comparable](tg tag.Tag, vs []T, hooks TypedBlockHooks[T]) *TypedBlock[T] {
	data := make([]T, len(vs))
	copy(data, vs)
	return &TypedBlock[T]{tg: tg, data: data, hooks: fillHooks(hooks)}
}

func fillHooks[T comparable](h TypedBlockHooks[T]) TypedBlockHooks[T] {
	if h.Clone == nil {
		h.Clone = func(v T) T { return v }
	}
	if h.Destroy == nil {
		h.Destroy = func(T) {}
	}
	if h.Equal == nil {
		h.Equal = func(a, b T) bool { return a == b }
	}
	return h
}

func (b *TypedBlock[T]) Tag() tag.Tag { return b.tg }
func (b *TypedBlock[T]) Len() int     { return len(b.data) }

func (b *TypedBlock[T]) Clone() ElementBlock {
	data := make([]T, len(b.data))
	for i, v := range b.data {
		data[i] = b.hooks.Clone(v)
	}
	return &TypedBlock[T]{tg: b.tg, data: data, hooks: b.hooks}
}

func (b *TypedBlock[T]) Resize(n int) {
	if n <= len(b.data) {
		for _, v := range b.data[n:] {
			b.hooks.Destroy(v)
		}
		b.data = b.data[:n]
		return
	}
	grown := make([]T, n)
	copy(grown, b.data)
	b.data = grown
}

func (b *TypedBlock[T]) SplitOff(pos int) ElementBlock {
	right := append([]T(nil), b.data[pos:]...)
	b.data = b.data[:pos:pos]
	return &TypedBlock[T]{tg: b.tg, data: right, hooks: b.hooks}
}

func (b *TypedBlock[T]) Erase(pos, length int) {
	for _, v := range b.data[pos : pos+length] {
		b.hooks.Destroy(v)
	}
	b.data = append(b.data[:pos], b.data[pos+length:]...)
}

func (b *TypedBlock[T]) value(v any) (T, error) {
	tv, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("blocks: value of type %T incompatible with tag %v: %w", v, b.tg, blockerr.ErrTypeMismatch)
	}
	return tv, nil
}

func (b *TypedBlock[T]) values(vs []any) ([]T, error) {
	out := make([]T, len(vs))
	for i, v := range vs {
		tv, err := b.value(v)
		if err != nil {
			return nil, err
		}
		out[i] = tv
	}
	return out, nil
}

func (b *TypedBlock[T]) AppendValue(v any) error {
	tv, err := b.value(v)
	if err != nil {
		return err
	}
	b.data = append(b.data, tv)
	return nil
}

func (b *TypedBlock[T]) AppendValues(vs []any) error {
	tvs, err := b.values(vs)
	if err != nil {
		return err
	}
	b.data = append(b.data, tvs...)
	return nil
}

func (b *TypedBlock[T]) PrependValue(v any) error {
	tv, err := b.value(v)
	if err != nil {
		return err
	}
	b.data = append([]T{tv}, b.data...)
	return nil
}

func (b *TypedBlock[T]) PrependValues(vs []any) error {
	tvs, err := b.values(vs)
	if err != nil {
		return err
	}
	b.data = append(append([]T{}, tvs...), b.data...)
	return nil
}

func (b *TypedBlock[T]) InsertValues(pos int, vs []any) error {
	tvs, err := b.values(vs)
	if err != nil {
		return err
	}
	grown := make([]T, 0, len(b.data)+len(tvs))
	grown = append(grown, b.data[:pos]...)
	grown = append(grown, tvs...)
	grown = append(grown, b.data[pos:]...)
	b.data = grown
	return nil
}

func (b *TypedBlock[T]) SetValue(pos int, v any) error {
	tv, err := b.value(v)
	if err != nil {
		return err
	}
	b.hooks.Destroy(b.data[pos])
	b.data[pos] = tv
	return nil
}

func (b *TypedBlock[T]) SetValues(pos int, vs []any) error {
	tvs, err := b.values(vs)
	if err != nil {
		return err
	}
	if pos+len(tvs) > len(b.data) {
		return fmt.Errorf("blocks: set_values past block end: %w", blockerr.ErrInvalidArg)
	}
	for i, v := range tvs {
		b.hooks.Destroy(b.data[pos+i])
		b.data[pos+i] = v
	}
	return nil
}

func (b *TypedBlock[T]) GetValue(pos int) (any, error) {
	if pos < 0 || pos >= len(b.data) {
		return nil, fmt.Errorf("blocks: get at %d: %w", pos, blockerr.ErrOutOfRange)
	}
	return b.data[pos], nil
}

func (b *TypedBlock[T]) asTyped(src ElementBlock) (*TypedBlock[T], error) {
	tb, ok := src.(*TypedBlock[T])
	if !ok || tb.tg != b.tg {
		return nil, fmt.Errorf("blocks: splice source tag mismatch: %w", blockerr.ErrTypeMismatch)
	}
	return tb, nil
}

func (b *TypedBlock[T]) AssignValuesFrom(src ElementBlock, begin, length int) error {
	tb, err := b.asTyped(src)
	if err != nil {
		return err
	}
	if begin < 0 || begin+length > len(tb.data) {
		return fmt.Errorf("blocks: assign_values_from range: %w", blockerr.ErrInvalidArg)
	}
	for _, v := range b.data {
		b.hooks.Destroy(v)
	}
	data := make([]T, length)
	for i, v := range tb.data[begin : begin+length] {
		data[i] = tb.hooks.Clone(v)
	}
	b.data = data
	return nil
}

func (b *TypedBlock[T]) AppendValuesFrom(src ElementBlock, begin, length int) error {
	tb, err := b.asTyped(src)
	if err != nil {
		return err
	}
	if begin < 0 || begin+length > len(tb.data) {
		return fmt.Errorf("blocks: append_values_from range: %w", blockerr.ErrInvalidArg)
	}
	for _, v := range tb.data[begin : begin+length] {
		b.data = append(b.data, tb.hooks.Clone(v))
	}
	return nil
}

func (b *TypedBlock[T]) AppendValuesFromMove(src ElementBlock, begin, length int) error {
	tb, err := b.asTyped(src)
	if err != nil {
		return err
	}
	if begin < 0 || begin+length > len(tb.data) {
		return fmt.Errorf("blocks: append_values_from_move range: %w", blockerr.ErrInvalidArg)
	}
	b.data = append(b.data, tb.data[begin:begin+length]...)
	return nil
}

func (b *TypedBlock[T]) Equal(other ElementBlock) bool {
	tb, ok := other.(*TypedBlock[T])
	if !ok || tb.tg != b.tg || len(tb.data) != len(b.data) {
		return false
	}
	for i, v := range b.data {
		if !b.hooks.Equal(v, tb.data[i]) {
			return false
		}
	}
	return true
}

func (b *TypedBlock[T]) Release() {
	for _, v := range b.data {
		b.hooks.Destroy(v)
	}
	b.data = nil
}
