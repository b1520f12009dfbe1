package pivgen

import "math/bits"

// binaryTree reduces pairwise with doubling distance: in round j (j ≥ 0),
// rows whose lowest set bit is 2^j are eliminated into the row 2^j below.
//
//	size = 8:   1→0  2→0  3→2  4→0  5→4  6→4  7→6
//
// Peers of a pivot p are p+1, p+2, p+4, … for every power of two strictly
// below lsb(p) (any power when p is the root), in ascending order — which is
// also the time order of the rounds that feed p.
type binaryTree struct{}

// Kind reports Binary.
func (binaryTree) Kind() Kind { return Binary }

// Pivot clears the lowest set bit: r is eliminated into r − lsb(r).
// Complexity: O(1).
func (binaryTree) Pivot(size, r int) int {
	if r < 1 || r >= size {
		return None
	}
	return r - (r & -r)
}

// offsetLimit is the exclusive upper bound on peer offsets of pivot p:
// lsb(p) for interior pivots, the whole level for the root.
func (binaryTree) offsetLimit(size, p int) int {
	if p == 0 {
		return size
	}
	return p & -p
}

// NextPeer advances the peer offset to the next power of two.
// Complexity: O(1).
func (b binaryTree) NextPeer(size, p, after int) int {
	if p < 0 || p >= size {
		return None
	}
	limit := b.offsetLimit(size, p)
	off := 1
	if after != None {
		d := after - p
		if d < 1 || d&(d-1) != 0 {
			return None
		}
		off = d << 1
	}
	if off < limit && p+off < size {
		return p + off
	}
	return None
}

// PrevPeer halves the peer offset; from None it starts at the largest
// in-range power of two.
// Complexity: O(1).
func (b binaryTree) PrevPeer(size, p, before int) int {
	if p < 0 || p >= size {
		return None
	}
	limit := b.offsetLimit(size, p)
	if before == None {
		hi := size - 1 - p
		if hi > limit-1 {
			hi = limit - 1
		}
		if hi < 1 {
			return None
		}
		return p + 1<<(bits.Len(uint(hi))-1)
	}
	d := before - p
	if d < 2 || d&(d-1) != 0 {
		return None
	}
	return p + d>>1
}

// FirstRound is true for odd rows: they carry offset 1, eliminated in
// round 0 before any longer-distance pair.
func (binaryTree) FirstRound(size, r int) bool {
	return r >= 1 && r < size && r&1 == 1
}

// Depth is ⌈log2(size)⌉ rounds.
func (binaryTree) Depth(size int) int {
	if size < 2 {
		return 0
	}
	return bits.Len(uint(size - 1))
}
