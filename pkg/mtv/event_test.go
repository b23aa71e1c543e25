package mtv

import (
	"testing"

	"blockvec/pkg/blocks"
	"blockvec/pkg/tag"
)

// recordingHandler counts acquire/release events, grounded on
// original_source/multi_type_vector_test_event.cpp's event-counting
// fixture.
type recordingHandler struct {
	acquired []BlockInfo
	released []BlockInfo
}

func (h *recordingHandler) ElementBlockAcquired(info BlockInfo) {
	h.acquired = append(h.acquired, info)
}

func (h *recordingHandler) ElementBlockReleased(info BlockInfo) {
	h.released = append(h.released, info)
}

func TestEventHandlerFiresOnConstruction(t *testing.T) {
	h := &recordingHandler{}
	c := NewSized(Options{Registry: blocks.NewRegistry(blocks.Config{}), Handler: h}, 5)
	if len(h.acquired) != 1 {
		t.Fatalf("acquired = %d, want 1", len(h.acquired))
	}
	if h.acquired[0].Tag != tag.Empty || h.acquired[0].Size != 5 {
		t.Errorf("acquired[0] = %+v", h.acquired[0])
	}

	if _, err := c.Set(2, 3.0); err != nil {
		t.Fatalf("set: %v", err)
	}
	// splitAt(2) fires one acquire for the tail empty piece, and the
	// replaced middle block fires its own acquire: every block
	// creation event fires exactly once, including split pieces.
	if len(h.acquired) < 3 {
		t.Fatalf("acquired = %d, want at least 3 after split+set", len(h.acquired))
	}
}

func TestEventHandlerFiresOnClear(t *testing.T) {
	h := &recordingHandler{}
	reg := blocks.NewRegistry(blocks.Config{})
	c, err := NewFromValues(Options{Registry: reg, Handler: h}, []any{int32(1), int32(2), int32(3)})
	if err != nil {
		t.Fatalf("NewFromValues: %v", err)
	}
	before := len(h.released)
	c.Clear()
	if len(h.released) != before+1 {
		t.Fatalf("released = %d, want %d", len(h.released), before+1)
	}
	if c.Size() != 0 || c.BlockSize() != 0 {
		t.Fatalf("container not cleared: size=%d block_size=%d", c.Size(), c.BlockSize())
	}
}

func TestEventHandlerFiresOnTransferBothSides(t *testing.T) {
	h := &recordingHandler{}
	reg := blocks.NewRegistry(blocks.Config{})
	a := NewSized(Options{Registry: reg, Handler: h}, 4)
	b := NewSized(Options{Registry: reg, Handler: h}, 4)
	if _, err := a.Set(1, int32(7)); err != nil {
		t.Fatalf("set: %v", err)
	}
	relBefore, acqBefore := len(h.released), len(h.acquired)
	if err := a.Transfer(1, 1, b, 1); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if len(h.released) <= relBefore {
		t.Errorf("transfer should fire release events on the source side")
	}
	if len(h.acquired) <= acqBefore {
		t.Errorf("transfer should fire acquire events on the destination side")
	}
	v, err := GetValue[int32](b, 1)
	if err != nil || v != 7 {
		t.Errorf("b[1] = %v, %v, want 7", v, err)
	}
}

func TestManagedUserTagInContainer(t *testing.T) {
	destroyed := 0
	type widget struct{ id int }
	wtag := tag.UserStart + 5
	ut := blocks.NewManagedUserTag[*widget](wtag,
		func(v any) bool { _, ok := v.(*widget); return ok },
		func(v *widget) { destroyed++ },
		func(v *widget) *widget { cp := *v; return &cp })

	reg := blocks.NewRegistry(blocks.Config{UserTags: []blocks.UserTag{ut}})
	c, err := NewFromValues(Options{Registry: reg}, []any{&widget{id: 1}, &widget{id: 2}, &widget{id: 3}})
	if err != nil {
		t.Fatalf("NewFromValues: %v", err)
	}
	if err := c.Erase(1, 1); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if destroyed != 1 {
		t.Fatalf("destroyed = %d, want 1", destroyed)
	}
	c.Clear()
	if destroyed != 3 {
		t.Fatalf("destroyed = %d, want 3 after clear", destroyed)
	}
}

// TestMergeMovesManagedElementsWithoutCloning exercises the boundary
// merge that Erase's split-then-remove leaves behind (container.go's
// mergeWithNext): the two surviving blocks are spliced into one, and
// the absorbed block must hand its managed elements over rather than
// leak them behind a clone.
func TestMergeMovesManagedElementsWithoutCloning(t *testing.T) {
	cloned := 0
	destroyed := 0
	type widget struct{ id int }
	wtag := tag.UserStart + 6
	w3 := &widget{id: 3}
	ut := blocks.NewManagedUserTag[*widget](wtag,
		func(v any) bool { _, ok := v.(*widget); return ok },
		func(v *widget) { destroyed++ },
		func(v *widget) *widget { cloned++; cp := *v; return &cp })

	reg := blocks.NewRegistry(blocks.Config{UserTags: []blocks.UserTag{ut}})
	c, err := NewFromValues(Options{Registry: reg}, []any{&widget{id: 1}, &widget{id: 2}, w3})
	if err != nil {
		t.Fatalf("NewFromValues: %v", err)
	}
	if err := c.Erase(1, 1); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if c.BlockSize() != 1 {
		t.Fatalf("block_size = %d, want 1 (merged back into one block)", c.BlockSize())
	}
	if cloned != 0 {
		t.Fatalf("cloned = %d, want 0: a structural merge must move, not clone", cloned)
	}
	got, err := GetValue[*widget](c, 1)
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if got != w3 {
		t.Fatalf("GetValue returned a different *widget than the one stored; merge must preserve identity")
	}
	c.Clear()
	if destroyed != 3 {
		t.Fatalf("destroyed = %d, want 3: every owned widget (including the one moved across the merge) destroyed exactly once", destroyed)
	}
}
