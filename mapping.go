package qrtree

// Step geometry: maps absolute tile indices to (domain, relative slot)
// pairs and back, for both the fixed assignment and the round-robin
// rotation, and carries the super-row grouping of the global level.
// Everything here is O(1) integer arithmetic.

// cell locates a tile within the step geometry.
type cell struct {
	g     int // participating-domain ordinal; 0 holds the step root
	start int // first absolute tile-row of the domain at this step
	size  int // tile-rows in the domain at this step
	rel   int // relative slot within the domain; 0 is the domain root
}

// span describes the global-level grouping around one super-row.
type span struct {
	fanIn  int // globalSize: super-rows per stage-1 group
	total  int // super-rows at this step
	group  int // the super-row's group ordinal
	inGrp  int // index within the group; 0 is the group root
	grpLen int // size of this group (tail group may be smaller)
	groups int // number of groups == size of the stage-2 level
}

// phaseAt returns the slot rotation for domain d at step k. Rotation only
// applies to full interior domains under round-robin; the head domain must
// keep the step root at slot 0 and a partial tail domain would lose
// bijectivity under a modular shift.
func (t *Tree) phaseAt(k, d, size int) int {
	if !t.roundRobin || d == 0 || size != t.localSize {
		return 0
	}
	ph := t.phase(k, t.localSize) % size
	if ph < 0 {
		ph += size
	}
	return ph
}

// locate maps absolute tile m (k ≤ m < rows) to its step-k cell.
func (t *Tree) locate(k, m int) cell {
	if t.roundRobin {
		s := m - k
		d := s / t.localSize
		start := k + d*t.localSize
		size := t.localSize
		if start+size > t.rows {
			size = t.rows - start
		}
		rel := s - d*t.localSize
		if ph := t.phaseAt(k, d, size); ph != 0 {
			rel = (rel + ph) % size
		}
		return cell{g: d, start: start, size: size, rel: rel}
	}

	d := m / t.localSize
	start := t.bounds[d]
	if start < k {
		start = k
	}
	return cell{
		g:     d - k/t.localSize,
		start: start,
		size:  t.bounds[d+1] - start,
		rel:   m - start,
	}
}

// absOf is the inverse of locate: the absolute tile at relative slot rel of
// participating domain g.
func (t *Tree) absOf(k, g, rel int) int {
	if t.roundRobin {
		start := k + g*t.localSize
		size := t.localSize
		if start+size > t.rows {
			size = t.rows - start
		}
		if ph := t.phaseAt(k, g, size); ph != 0 {
			rel = (rel - ph + size) % size
		}
		return start + rel
	}

	d := k/t.localSize + g
	start := t.bounds[d]
	if start < k {
		start = k
	}
	return start + rel
}

// rootOf returns the absolute tile of domain g's root at step k.
func (t *Tree) rootOf(k, g int) int {
	return t.absOf(k, g, 0)
}

// domains returns the participating domain count at step k.
func (t *Tree) domains(k int) int {
	if t.roundRobin {
		return (t.rows - k + t.localSize - 1) / t.localSize
	}
	return len(t.bounds) - 1 - k/t.localSize
}

// globalGeom computes the grouping around super-row g at step k.
func (t *Tree) globalGeom(k, g int) span {
	fanIn := t.globalSize
	total := t.domains(k)
	q := g / fanIn
	grpLen := total - q*fanIn
	if grpLen > fanIn {
		grpLen = fanIn
	}
	return span{
		fanIn:  fanIn,
		total:  total,
		group:  q,
		inGrp:  g % fanIn,
		grpLen: grpLen,
		groups: (total + fanIn - 1) / fanIn,
	}
}

// globalPivot returns the super-row that domain root g reduces into at
// step k. Stage 1 reduces within a group; group roots then reduce across
// groups at stage 2 with the same generator. Caller guarantees g ≥ 1.
func (t *Tree) globalPivot(k, g int) int {
	sp := t.globalGeom(k, g)
	if sp.inGrp != 0 {
		return sp.group*sp.fanIn + t.global.Pivot(sp.grpLen, sp.inGrp)
	}
	return t.global.Pivot(sp.groups, sp.group) * sp.fanIn
}
