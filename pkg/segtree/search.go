package segtree

// Search runs a stabbing query for key: every stored interval
// containing key is appended to *result, in path order from the root
// to the leaf. It fails (returns false) if BuildTree has not been run
// since the last Insert/Remove, mirroring the flat segment tree's
// "search without a valid tree returns failure" policy (spec §4.3.4,
// §4.4).
func (t *Tree[K, D]) Search(key K, result *[]D) bool {
	if !t.valid || t.root == nil {
		return false
	}
	n := t.root
	if key < n.low || key >= n.high {
		return true
	}
	for {
		*result = append(*result, n.data...)
		if n.left == nil {
			return true
		}
		if key < n.left.high {
			n = n.left
		} else {
			n = n.right
		}
	}
}

// SearchAppend is Search in iterator-returning form: it allocates and
// returns the result slice instead of appending to a caller-owned one.
func (t *Tree[K, D]) SearchAppend(key K) ([]D, bool) {
	var result []D
	ok := t.Search(key, &result)
	return result, ok
}
