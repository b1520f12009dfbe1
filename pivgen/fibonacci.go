package pivgen

// fibonacciTree partitions non-root rows into consecutive blocks whose
// lengths follow the Fibonacci sequence F = 1, 1, 2, 3, 5, …; a row r in
// block t (the block covering S(t−1) < r ≤ S(t), with S the prefix sums)
// pivots F(t) rows down, into r − F(t).
//
//	size = 8:   1→0  2→1  3→1  4→2  5→2  6→3  7→4
//
// The elimination distance grows by Fibonacci steps, trading depth against
// contention between the Flat and Binary extremes; useful when the cost of
// an elimination grows sub-linearly with its distance. Peers of a pivot p
// are p+F(t) for every block t whose target range covers p, in ascending
// block (and row) order.
type fibonacciTree struct{}

// Kind reports Fibonacci.
func (fibonacciTree) Kind() Kind { return Fibonacci }

// Pivot locates r's Fibonacci block and subtracts the block's step.
// Complexity: O(log_φ size).
func (fibonacciTree) Pivot(size, r int) int {
	if r < 1 || r >= size {
		return None
	}
	cum, fa, fb := 0, 1, 1
	for {
		if r <= cum+fa {
			return r - fa
		}
		cum += fa
		fa, fb = fb, fa+fb
	}
}

// NextPeer scans blocks in ascending order; block t contributes the peer
// p+F(t) exactly when S(t−1)−F(t) < p ≤ S(t−1).
// Complexity: O(log_φ size).
func (fibonacciTree) NextPeer(size, p, after int) int {
	if p < 0 || p >= size {
		return None
	}
	emit := after == None
	cum, fa, fb := 0, 1, 1
	for cum < size-1 {
		if p > cum-fa && p <= cum && p+fa < size {
			r := p + fa
			if emit {
				return r
			}
			if r == after {
				emit = true
			}
		}
		cum += fa
		fa, fb = fb, fa+fb
	}
	return None
}

// PrevPeer scans the same blocks remembering the predecessor of `before`;
// from None it returns the last (largest) peer.
// Complexity: O(log_φ size).
func (fibonacciTree) PrevPeer(size, p, before int) int {
	if p < 0 || p >= size {
		return None
	}
	prev := None
	cum, fa, fb := 0, 1, 1
	for cum < size-1 {
		if p > cum-fa && p <= cum && p+fa < size {
			r := p + fa
			if before != None && r == before {
				return prev
			}
			prev = r
		}
		cum += fa
		fa, fb = fb, fa+fb
	}
	if before == None {
		return prev
	}
	return None
}

// FirstRound is true only for row 1, the sole member of the first block.
func (fibonacciTree) FirstRound(size, r int) bool {
	return r == 1 && size > 1
}

// Depth counts Fibonacci blocks needed to cover size−1 rows.
func (fibonacciTree) Depth(size int) int {
	d := 0
	cum, fa, fb := 0, 1, 1
	for cum < size-1 {
		cum += fa
		fa, fb = fb, fa+fb
		d++
	}
	return d
}
