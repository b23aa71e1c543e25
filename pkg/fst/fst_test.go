package fst

import "testing"

func mustNew(t *testing.T, kmin, kmax, def int) *Tree[int, int] {
	t.Helper()
	tr, err := New(kmin, kmax, def)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tr
}

func leafKeysValues(t *Tree[int, int]) (keys []int, values []int) {
	for e := t.Begin(); !e.End(); e = e.Next() {
		keys = append(keys, e.Key())
		if !e.IsLast() {
			values = append(values, e.Value())
		}
	}
	return keys, values
}

func requireKeysValues(t *testing.T, tr *Tree[int, int], wantKeys, wantVals []int) {
	t.Helper()
	keys, vals := leafKeysValues(tr)
	if len(keys) != len(wantKeys) {
		t.Fatalf("keys = %v, want %v", keys, wantKeys)
	}
	for i := range keys {
		if keys[i] != wantKeys[i] {
			t.Errorf("keys[%d] = %d, want %d (full: %v vs %v)", i, keys[i], wantKeys[i], keys, wantKeys)
		}
	}
	if len(vals) != len(wantVals) {
		t.Fatalf("values = %v, want %v", vals, wantVals)
	}
	for i := range vals {
		if vals[i] != wantVals[i] {
			t.Errorf("values[%d] = %d, want %d (full: %v vs %v)", i, vals[i], wantVals[i], vals, wantVals)
		}
	}
}

// S4: new(0,100,-1); insert_front(10,20,5); insert_front(30,40,5);
// insert_front(18,22,6) -> leaf keys [0,10,18,22,30,40,100] with values
// [-1,5,6,-1,5,-1].
func TestScenarioS4(t *testing.T) {
	tr := mustNew(t, 0, 100, -1)
	tr.InsertFront(10, 20, 5)
	tr.InsertFront(30, 40, 5)
	tr.InsertFront(18, 22, 6)
	requireKeysValues(t, tr, []int{0, 10, 18, 22, 30, 40, 100}, []int{-1, 5, 6, -1, 5, -1})
}

// S5: state from S4, shift_left(0,5) -> leaf keys shift:
// [0,5,13,17,25,35,100], same value sequence. Tree invalid flag set.
func TestScenarioS5(t *testing.T) {
	tr := mustNew(t, 0, 100, -1)
	tr.InsertFront(10, 20, 5)
	tr.InsertFront(30, 40, 5)
	tr.InsertFront(18, 22, 6)
	tr.BuildTree()
	if !tr.IsTreeValid() {
		t.Fatalf("tree should be valid after BuildTree")
	}
	tr.ShiftLeft(0, 5)
	if tr.IsTreeValid() {
		t.Fatalf("ShiftLeft should invalidate the tree")
	}
	requireKeysValues(t, tr, []int{0, 5, 13, 17, 25, 35, 100}, []int{-1, 5, 6, -1, 5, -1})
}

func TestInsertFrontIdempotent(t *testing.T) {
	tr := mustNew(t, 0, 100, -1)
	tr.InsertFront(10, 20, 5)
	keys1, vals1 := leafKeysValues(tr)
	tr.InsertFront(10, 20, 5)
	keys2, vals2 := leafKeysValues(tr)
	if len(keys1) != len(keys2) || len(vals1) != len(vals2) {
		t.Fatalf("re-insert changed structure: %v/%v vs %v/%v", keys1, vals1, keys2, vals2)
	}
	for i := range keys1 {
		if keys1[i] != keys2[i] {
			t.Fatalf("re-insert changed structure at %d", i)
		}
	}
	for i := range vals1 {
		if vals1[i] != vals2[i] {
			t.Fatalf("re-insert changed structure at %d", i)
		}
	}
}

func TestShiftRightThenLeftRestoresStructure(t *testing.T) {
	tr := mustNew(t, 0, 100, 0)
	tr.InsertFront(20, 40, 5)
	tr.InsertFront(50, 60, 10)
	before, beforeVals := leafKeysValues(tr)

	tr.ShiftRight(80, 10, false)
	tr.ShiftLeft(80, 90)

	after, afterVals := leafKeysValues(tr)
	if len(after) != len(before) {
		t.Fatalf("keys = %v, want %v", after, before)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("keys[%d] = %d, want %d", i, after[i], before[i])
		}
	}
	for i := range beforeVals {
		if beforeVals[i] != afterVals[i] {
			t.Errorf("values[%d] = %d, want %d", i, afterVals[i], beforeVals[i])
		}
	}
}

func TestShiftRightSkipStartNode(t *testing.T) {
	tr := mustNew(t, 0, 1048576, 0)
	tr.InsertFront(3, 7, 5)
	requireKeysValues(t, tr, []int{0, 3, 7, 1048576}, []int{0, 5, 0})

	tr.ShiftRight(3, 2, true)
	requireKeysValues(t, tr, []int{0, 3, 9, 1048576}, []int{0, 5, 0})

	tr.InsertFront(0, 4, 2)
	requireKeysValues(t, tr, []int{0, 4, 9, 1048576}, []int{2, 5, 0})

	tr.ShiftRight(0, 2, true)
	requireKeysValues(t, tr, []int{0, 6, 11, 1048576}, []int{2, 5, 0})
}

func TestShiftLeftInvalidRangesAreNoOps(t *testing.T) {
	tr := mustNew(t, 0, 100, 0)
	tr.InsertFront(20, 40, 5)
	tr.InsertFront(50, 60, 10)
	tr.InsertFront(70, 80, 15)
	tr.BuildTree()

	for _, rng := range [][2]int{{5, 0}, {95, 120}, {105, 120}, {-10, -5}, {-10, 5}} {
		tr.ShiftLeft(rng[0], rng[1])
		if !tr.IsTreeValid() {
			t.Fatalf("ShiftLeft%v should be a no-op, tree invalidated", rng)
		}
	}
}

func TestShiftRightInvalidArgsAreNoOps(t *testing.T) {
	tr := mustNew(t, 0, 100, 0)
	tr.BuildTree()
	tr.ShiftRight(-10, 10, false)
	if !tr.IsTreeValid() {
		t.Fatalf("ShiftRight(-10,...) should be a no-op")
	}
	tr.ShiftRight(100, 10, false)
	if !tr.IsTreeValid() {
		t.Fatalf("ShiftRight(100,...) should be a no-op")
	}
	tr.ShiftRight(0, 0, false)
	if !tr.IsTreeValid() {
		t.Fatalf("ShiftRight(_,0,_) should be a no-op")
	}
}

func TestSearchAgreesWithSearchTree(t *testing.T) {
	tr := mustNew(t, 0, 100, -1)
	tr.InsertFront(10, 20, 5)
	tr.InsertFront(30, 40, 5)
	tr.InsertFront(18, 22, 6)
	tr.BuildTree()

	for k := 0; k < 100; k++ {
		want, wantFound := tr.Search(k)
		got, gotFound := tr.SearchTree(k)
		if wantFound != gotFound {
			t.Fatalf("key %d: Search found=%v, SearchTree found=%v", k, wantFound, gotFound)
		}
		if wantFound && want.Value() != got.Value() {
			t.Errorf("key %d: Search=%d, SearchTree=%d", k, want.Value(), got.Value())
		}
	}
}

func TestSearchOutOfBounds(t *testing.T) {
	tr := mustNew(t, 10, 20, 0)
	if _, found := tr.Search(5); found {
		t.Errorf("Search(5) should report not found for a tree over [10,20)")
	}
	if _, found := tr.Search(20); found {
		t.Errorf("Search(kmax) should report not found (half-open range)")
	}
	if _, found := tr.SearchTree(5); found {
		t.Errorf("SearchTree before BuildTree should report not found")
	}
}

func TestClearResetsToSingleDefaultSegment(t *testing.T) {
	tr := mustNew(t, 0, 50, 7)
	tr.InsertFront(10, 20, 1)
	tr.BuildTree()
	tr.Clear()
	if tr.IsTreeValid() {
		t.Fatalf("Clear should invalidate the tree")
	}
	requireKeysValues(t, tr, []int{0, 50}, []int{7})
}

func TestNewRejectsInvertedBounds(t *testing.T) {
	if _, err := New(10, 10, 0); err == nil {
		t.Fatalf("New(10,10,...) should fail")
	}
	if _, err := New(10, 5, 0); err == nil {
		t.Fatalf("New(10,5,...) should fail")
	}
}
