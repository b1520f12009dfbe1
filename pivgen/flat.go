package pivgen

// flatTree reduces every non-root row directly into row 0.
//
// The forest has a single round: rows 1..size-1 all pivot into 0, and the
// peer order is ascending row index. Minimal depth, maximal contention on
// the root — the classic panel-factorization shape.
type flatTree struct{}

// Kind reports Flat.
func (flatTree) Kind() Kind { return Flat }

// Pivot returns 0 for every valid non-root row.
// Complexity: O(1).
func (flatTree) Pivot(size, r int) int {
	if r < 1 || r >= size {
		return None
	}
	return 0
}

// NextPeer walks rows 1..size-1 in ascending order; only row 0 has peers.
// Complexity: O(1).
func (flatTree) NextPeer(size, p, after int) int {
	if p != 0 || size < 2 {
		return None
	}
	if after == None {
		return 1
	}
	if after < 1 || after >= size-1 {
		return None
	}
	return after + 1
}

// PrevPeer walks rows size-1..1 in descending order.
// Complexity: O(1).
func (flatTree) PrevPeer(size, p, before int) int {
	if p != 0 || size < 2 {
		return None
	}
	if before == None {
		return size - 1
	}
	if before < 2 || before >= size {
		return None
	}
	return before - 1
}

// FirstRound is true for every row: a flat tree has exactly one round.
func (flatTree) FirstRound(size, r int) bool {
	return r >= 1 && r < size
}

// Depth is 1 for any non-trivial size.
func (flatTree) Depth(size int) int {
	if size < 2 {
		return 0
	}
	return 1
}
