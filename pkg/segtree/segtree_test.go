package segtree

import (
	"errors"
	"slices"
	"testing"

	"blockvec/pkg/blockerr"
)

func contains(ds []string, want string) bool {
	return slices.Contains(ds, want)
}

// S6: insert (0,10,A),(0,5,B),(5,12,C),(10,24,D),(4,24,E),(0,26,F),
// (12,26,G). Build. search(5) -> {A,C,E,F}; search(10) -> {C,D,E,F};
// search(-1) and search(30) -> {}.
func TestScenarioS6(t *testing.T) {
	tr := New[int, string]()
	segs := []struct {
		low, high int
		data      string
	}{
		{0, 10, "A"}, {0, 5, "B"}, {5, 12, "C"}, {10, 24, "D"},
		{4, 24, "E"}, {0, 26, "F"}, {12, 26, "G"},
	}
	for _, s := range segs {
		if err := tr.Insert(s.low, s.high, s.data); err != nil {
			t.Fatalf("Insert(%d,%d,%s): %v", s.low, s.high, s.data, err)
		}
	}
	tr.BuildTree()

	got, ok := tr.SearchAppend(5)
	if !ok {
		t.Fatalf("search(5) failed")
	}
	for _, want := range []string{"A", "C", "E", "F"} {
		if !contains(got, want) {
			t.Errorf("search(5) = %v, missing %s", got, want)
		}
	}
	if len(got) != 4 {
		t.Errorf("search(5) = %v, want exactly {A,C,E,F}", got)
	}

	got, ok = tr.SearchAppend(10)
	if !ok {
		t.Fatalf("search(10) failed")
	}
	for _, want := range []string{"C", "D", "E", "F"} {
		if !contains(got, want) {
			t.Errorf("search(10) = %v, missing %s", got, want)
		}
	}
	if len(got) != 4 {
		t.Errorf("search(10) = %v, want exactly {C,D,E,F}", got)
	}

	if got, ok = tr.SearchAppend(-1); !ok || len(got) != 0 {
		t.Errorf("search(-1) = %v, ok=%v, want empty", got, ok)
	}
	if got, ok = tr.SearchAppend(30); !ok || len(got) != 0 {
		t.Errorf("search(30) = %v, ok=%v, want empty", got, ok)
	}
}

func TestInsertInvalidRange(t *testing.T) {
	tr := New[int, string]()
	if err := tr.Insert(10, 10, "A"); !errors.Is(err, blockerr.ErrInvalidArg) {
		t.Fatalf("Insert(10,10,..) err = %v, want ErrInvalidArg", err)
	}
	if err := tr.Insert(10, 5, "A"); !errors.Is(err, blockerr.ErrInvalidArg) {
		t.Fatalf("Insert(10,5,..) err = %v, want ErrInvalidArg", err)
	}
}

func TestInsertDuplicateIsNoOp(t *testing.T) {
	tr := New[int, string]()
	if err := tr.Insert(0, 10, "A"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tr.Insert(0, 10, "A"); err != nil {
		t.Fatalf("Insert duplicate: %v", err)
	}
	if tr.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 after duplicate insert", tr.Size())
	}
}

func TestRemove(t *testing.T) {
	tr := New[int, string]()
	tr.Insert(0, 10, "A")
	tr.Insert(5, 15, "B")
	tr.BuildTree()
	tr.Remove("A")
	if tr.IsTreeValid() {
		t.Fatalf("Remove should invalidate the built tree")
	}
	if tr.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 after Remove", tr.Size())
	}
	tr.BuildTree()
	got, ok := tr.SearchAppend(7)
	if !ok || !contains(got, "B") || contains(got, "A") {
		t.Errorf("search(7) = %v, ok=%v, want {B} only", got, ok)
	}
}

func TestSearchWithoutBuildFails(t *testing.T) {
	tr := New[int, string]()
	tr.Insert(0, 10, "A")
	if _, ok := tr.SearchAppend(5); ok {
		t.Fatalf("search before BuildTree should fail")
	}
}

func TestEmptySizeClear(t *testing.T) {
	tr := New[int, string]()
	if !tr.Empty() || tr.Size() != 0 {
		t.Fatalf("new tree should be empty")
	}
	tr.Insert(0, 10, "A")
	if tr.Empty() || tr.Size() != 1 {
		t.Fatalf("Empty/Size after Insert wrong")
	}
	tr.BuildTree()
	tr.Clear()
	if !tr.Empty() || tr.IsTreeValid() {
		t.Fatalf("Clear should empty the tree and invalidate the build")
	}
}

func TestEqualAndCopy(t *testing.T) {
	tr := New[int, string]()
	tr.Insert(0, 10, "A")
	tr.Insert(5, 15, "B")
	cp := tr.Copy()
	if !tr.Equal(cp) {
		t.Fatalf("copy should equal original")
	}
	cp.Insert(20, 30, "C")
	if tr.Equal(cp) {
		t.Fatalf("mutating the copy should not affect Equal against the original")
	}
}

func TestSearchEveryDistinctSegmentAppearsOnce(t *testing.T) {
	// Testable property #8: for every stored segment s and every leaf
	// interval L contained in s, s appears in exactly one ancestor of L.
	// Exercised indirectly: every key strictly inside a segment's range
	// must report that segment exactly once.
	tr := New[int, string]()
	tr.Insert(0, 100, "A")
	tr.Insert(0, 100, "A") // duplicate, must not double-count
	tr.BuildTree()
	got, ok := tr.SearchAppend(50)
	if !ok {
		t.Fatalf("search(50) failed")
	}
	count := 0
	for _, d := range got {
		if d == "A" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("segment A counted %d times at key 50, want 1", count)
	}
}
