package pivgen

// greedyTree eliminates as many rows as possible every round: with s live
// rows, the bottom ⌊s/2⌋ rows fold onto the top of the level, row i pivoting
// into i − ⌈s/2⌉; the live set shrinks to ⌈s/2⌉ and the round repeats.
//
//	size = 8:   round 0: 4→0 5→1 6→2 7→3
//	            round 1: 2→0 3→1
//	            round 2: 1→0
//
// This is the recursive-halving shape, reaching the minimum number of
// sequential rounds for irregular sizes. Peers of a pivot arrive one per
// round, so the deterministic traversal order is descending row index
// (round 0 contributes the farthest peer first).
type greedyTree struct{}

// Kind reports Greedy.
func (greedyTree) Kind() Kind { return Greedy }

// Pivot folds r across shrinking halves until its elimination round is hit.
// Complexity: O(log size).
func (greedyTree) Pivot(size, r int) int {
	if r < 1 || r >= size {
		return None
	}
	s := size
	for s > 1 {
		h := (s + 1) / 2
		if r >= h {
			return r - h
		}
		s = h
	}
	return None
}

// NextPeer replays the rounds in time order (descending peer index) and
// returns the entry following `after`.
// Complexity: O(log size).
func (greedyTree) NextPeer(size, p, after int) int {
	if p < 0 || p >= size {
		return None
	}
	emit := after == None
	s := size
	for s > 1 {
		h := (s + 1) / 2
		if p >= h {
			break // p itself is eliminated this round
		}
		if p < s-h {
			r := p + h
			if emit {
				return r
			}
			if r == after {
				emit = true
			}
		}
		s = h
	}
	return None
}

// PrevPeer replays the same rounds remembering the predecessor of `before`;
// from None it returns the final (smallest) peer.
// Complexity: O(log size).
func (greedyTree) PrevPeer(size, p, before int) int {
	if p < 0 || p >= size {
		return None
	}
	prev := None
	s := size
	for s > 1 {
		h := (s + 1) / 2
		if p >= h {
			break
		}
		if p < s-h {
			r := p + h
			if before != None && r == before {
				return prev
			}
			prev = r
		}
		s = h
	}
	if before == None {
		return prev
	}
	return None
}

// FirstRound is true for the bottom half of the full level.
func (greedyTree) FirstRound(size, r int) bool {
	return r >= (size+1)/2 && r < size
}

// Depth counts halving rounds: ⌈log2(size)⌉.
func (greedyTree) Depth(size int) int {
	d := 0
	for s := size; s > 1; s = (s + 1) / 2 {
		d++
	}
	return d
}
