package qrtree

// The four canonical reduction queries. All methods here are pure,
// reentrant and allocation-free; they may be called concurrently from any
// number of goroutines over one Tree.

import (
	"fmt"

	"github.com/katalvlaran/qrtree/pivgen"
)

// Peer traversal visits up to three phases in fixed order: local peers of
// the pivot's domain, then (for domain roots) stage-1 global peers within
// the group, then (for group roots) stage-2 peers across groups. This total
// order is what an external scheduler uses to serialize floating-point
// non-commutative eliminations reproducibly.
const (
	phaseLocal = iota
	phaseStage1
	phaseStage2
)

// PivotOf returns the unique tile that m is eliminated into at step k.
// Fails with ErrOutOfRange when k is not a valid step or m lies outside
// (k, rows). Complexity: O(log localSize).
func (t *Tree) PivotOf(k, m int) (int, error) {
	if err := t.checkStep(k); err != nil {
		return NoTile, err
	}
	if m <= k || m >= t.rows {
		return NoTile, fmt.Errorf("%w: tile %d at step %d", ErrOutOfRange, m, k)
	}

	c := t.locate(k, m)
	if c.rel != 0 {
		return t.absOf(k, c.g, t.local.Pivot(c.size, c.rel)), nil
	}
	// Domain root: eliminated across domains. c.g ≥ 1 here, since the
	// root of domain 0 is tile k itself and was rejected above.
	return t.rootOf(k, t.globalPivot(k, c.g)), nil
}

// KernelKind returns the elimination kernel for tile m at step k:
// KernelDouble exactly where domino overlap makes the first global round
// consume partially-reduced local results, KernelPanel everywhere else.
// Same range rules as PivotOf. Complexity: O(1).
func (t *Tree) KernelKind(k, m int) (Kernel, error) {
	if err := t.checkStep(k); err != nil {
		return KernelPanel, err
	}
	if m <= k || m >= t.rows {
		return KernelPanel, fmt.Errorf("%w: tile %d at step %d", ErrOutOfRange, m, k)
	}
	if !t.domino {
		return KernelPanel, nil
	}

	c := t.locate(k, m)
	if c.rel != 0 {
		return KernelPanel, nil
	}
	sp := t.globalGeom(k, c.g)
	if sp.inGrp != 0 {
		// Stage-1 elimination: first global round a local root reaches.
		if t.global.FirstRound(sp.grpLen, sp.inGrp) {
			return KernelDouble, nil
		}
		return KernelPanel, nil
	}
	// Group roots reduce at stage 2. A singleton group skipped stage 1
	// entirely, so stage 2 is the first round touching its partial result.
	if sp.grpLen == 1 && t.global.FirstRound(sp.groups, sp.group) {
		return KernelDouble, nil
	}
	return KernelPanel, nil
}

// NextPeer returns the next tile reducing into pivot p at step k, strictly
// after `after` in the fixed traversal order; NoTile when exhausted. Pass
// after == NoTile to start the scan. The cursor must be NoTile or a tile
// previously returned for the same (k, p); anything else is ErrOutOfRange.
// Complexity: O(log localSize + log domains).
func (t *Tree) NextPeer(k, p, after int) (int, error) {
	c, sp, phase, cursor, err := t.peerCursor(k, p, after)
	if err != nil {
		return NoTile, err
	}

	if phase == phaseLocal {
		if nx := t.local.NextPeer(c.size, c.rel, cursor); nx != pivgen.None {
			return t.absOf(k, c.g, nx), nil
		}
		if c.rel != 0 {
			return NoTile, nil
		}
		phase, cursor = phaseStage1, pivgen.None
	}
	if phase == phaseStage1 {
		if nx := t.global.NextPeer(sp.grpLen, sp.inGrp, cursor); nx != pivgen.None {
			return t.rootOf(k, sp.group*sp.fanIn+nx), nil
		}
		if sp.inGrp != 0 {
			return NoTile, nil
		}
		cursor = pivgen.None
	}
	if nx := t.global.NextPeer(sp.groups, sp.group, cursor); nx != pivgen.None {
		return t.rootOf(k, nx*sp.fanIn), nil
	}
	return NoTile, nil
}

// PrevPeer is the exact inverse traversal of NextPeer: starting from
// before == NoTile it yields the peers of p in reverse order.
// Complexity: O(log localSize + log domains).
func (t *Tree) PrevPeer(k, p, before int) (int, error) {
	c, sp, phase, cursor, err := t.peerCursor(k, p, before)
	if err != nil {
		return NoTile, err
	}
	if before == NoTile {
		// Start from the tail of the order: stage 2 for group roots,
		// stage 1 for other domain roots, local for everything else.
		switch {
		case c.rel != 0:
			phase = phaseLocal
		case sp.inGrp != 0:
			phase = phaseStage1
		default:
			phase = phaseStage2
		}
	}

	if phase == phaseStage2 {
		if pv := t.global.PrevPeer(sp.groups, sp.group, cursor); pv != pivgen.None {
			return t.rootOf(k, pv*sp.fanIn), nil
		}
		phase, cursor = phaseStage1, pivgen.None
	}
	if phase == phaseStage1 {
		if pv := t.global.PrevPeer(sp.grpLen, sp.inGrp, cursor); pv != pivgen.None {
			return t.rootOf(k, sp.group*sp.fanIn+pv), nil
		}
		cursor = pivgen.None
	}
	if pv := t.local.PrevPeer(c.size, c.rel, cursor); pv != pivgen.None {
		return t.absOf(k, c.g, pv), nil
	}
	return NoTile, nil
}

// peerCursor validates (k, p, cursor) and translates the absolute cursor
// tile into its traversal phase and relative position. A NoTile cursor maps
// to the head of the order (phaseLocal, no position).
func (t *Tree) peerCursor(k, p, cursor int) (cell, span, int, int, error) {
	if err := t.checkStep(k); err != nil {
		return cell{}, span{}, 0, 0, err
	}
	if p < k || p >= t.rows {
		return cell{}, span{}, 0, 0, fmt.Errorf("%w: pivot %d at step %d", ErrOutOfRange, p, k)
	}

	c := t.locate(k, p)
	sp := t.globalGeom(k, c.g)
	if cursor == NoTile {
		return c, sp, phaseLocal, pivgen.None, nil
	}

	piv, err := t.PivotOf(k, cursor)
	if err != nil || piv != p {
		return cell{}, span{}, 0, 0, fmt.Errorf("%w: cursor %d is not a peer of %d at step %d", ErrOutOfRange, cursor, p, k)
	}
	ca := t.locate(k, cursor)
	switch {
	case ca.rel != 0:
		return c, sp, phaseLocal, ca.rel, nil
	case ca.g%sp.fanIn != 0:
		return c, sp, phaseStage1, ca.g % sp.fanIn, nil
	default:
		return c, sp, phaseStage2, ca.g / sp.fanIn, nil
	}
}

// Depth returns the critical-path length of step k: the maximum number of
// pivot hops from any tile to the step root. A diagnostic, O(tiles·log)
// walk — not intended for task-generation hot paths.
func (t *Tree) Depth(k int) (int, error) {
	if err := t.checkStep(k); err != nil {
		return 0, err
	}
	maxHops := 0
	for m := k + 1; m < t.rows; m++ {
		hops := 0
		for cur := m; cur != k; hops++ {
			cur, _ = t.PivotOf(k, cur)
		}
		if hops > maxHops {
			maxHops = hops
		}
	}
	return maxHops, nil
}
