package blocks

import "blockvec/pkg/tag"

// NewManagedUserTag registers a user element tag whose storage type T is
// a pointer (or anything else comparable that owns a resource). destroy
// is invoked on every element the block drops — on Erase, Resize-down,
// overwrite, or whole-block Release — so a managed tag never leaks what
// it owns. clone deep-copies an element on Clone/AssignValuesFrom/
// AppendValuesFrom; pass nil to get the plain-pointer variant described
// in §4.1, which copies only the pointer value.
//
// match identifies which dynamically-typed values belong to this tag
// when the registry deduces a tag from a value handed to Set/Insert.
func NewManagedUserTag[T comparable](tg tag.Tag, match func(v any) bool, destroy func(T), clone func(T) T) UserTag {
	hooks := TypedBlockHooks[T]{Destroy: destroy, Clone: clone}
	return UserTag{
		Tag:   tg,
		Match: match,
		New: func(n int) ElementBlock {
			return NewTypedBlock[T](tg, n, hooks)
		},
		NewWithValue: func(n int, v any) ElementBlock {
			tv, err := assertValue[T](v)
			if err != nil {
				return NewTypedBlock[T](tg, n, hooks)
			}
			return NewTypedBlockWithValue[T](tg, n, tv, hooks)
		},
		NewFromValues: func(vs []any) ElementBlock {
			b, err := newFromValuesWithHooks[T](tg, vs, hooks)
			if err != nil {
				return NewTypedBlock[T](tg, 0, hooks)
			}
			return b
		},
	}
}

func newFromValuesWithHooks[T comparable](tg tag.Tag, vs []any, hooks TypedBlockHooks[T]) (ElementBlock, error) {
	out := make([]T, len(vs))
	for i, v := range vs {
		tv, err := assertValue[T](v)
		if err != nil {
			return nil, err
		}
		out[i] = tv
	}
	return NewTypedBlockFromValues[T](tg, out, hooks), nil
}
