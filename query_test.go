package qrtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qrtree"
	"github.com/katalvlaran/qrtree/pivgen"
)

// collectPeers walks NextPeer to exhaustion for one (step, pivot) pair.
func collectPeers(t *testing.T, tree *qrtree.Tree, k, p int) []int {
	t.Helper()
	var out []int
	cur, err := tree.NextPeer(k, p, qrtree.NoTile)
	for ; cur != qrtree.NoTile; cur, err = tree.NextPeer(k, p, cur) {
		require.NoError(t, err)
		out = append(out, cur)
		require.LessOrEqual(t, len(out), tree.Rows(), "runaway traversal for pivot %d", p)
	}
	require.NoError(t, err)
	return out
}

// collectPeersReverse walks PrevPeer from the end of the order.
func collectPeersReverse(t *testing.T, tree *qrtree.Tree, k, p int) []int {
	t.Helper()
	var out []int
	cur, err := tree.PrevPeer(k, p, qrtree.NoTile)
	for ; cur != qrtree.NoTile; cur, err = tree.PrevPeer(k, p, cur) {
		require.NoError(t, err)
		out = append(out, cur)
		require.LessOrEqual(t, len(out), tree.Rows(), "runaway reverse traversal for pivot %d", p)
	}
	require.NoError(t, err)
	return out
}

// QuerySuite exercises the four canonical queries on pinned geometries.
type QuerySuite struct {
	suite.Suite
}

// TestBinaryEightSingleDomain pins the one-domain binary scenario: eight
// tile-rows, binary local tree spanning all of them, step 0.
func (s *QuerySuite) TestBinaryEightSingleDomain() {
	tree, err := qrtree.New(8, 8,
		qrtree.WithLocalTree(pivgen.Binary, 8),
		qrtree.WithGlobalTree(pivgen.Flat, 0),
	)
	require.NoError(s.T(), err)
	defer tree.Destroy()

	want := map[int]int{1: 0, 2: 0, 3: 2, 4: 0, 5: 4, 6: 4, 7: 6}
	for m, p := range want {
		got, err := tree.PivotOf(0, m)
		require.NoError(s.T(), err)
		require.Equal(s.T(), p, got, "tile %d", m)

		kern, err := tree.KernelKind(0, m)
		require.NoError(s.T(), err)
		require.Equal(s.T(), qrtree.KernelPanel, kern, "tile %d", m)
	}

	depth, err := tree.Depth(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, depth)

	require.Equal(s.T(), []int{1, 2, 4}, collectPeers(s.T(), tree, 0, 0))
	require.Equal(s.T(), []int{5, 6}, collectPeers(s.T(), tree, 0, 4))
}

// TestFlatLocalBinaryGlobal pins a four-domain geometry: flat pairs within
// domains of two rows, binary tree across the four domain roots.
func (s *QuerySuite) TestFlatLocalBinaryGlobal() {
	tree, err := qrtree.New(8, 8,
		qrtree.WithLocalTree(pivgen.Flat, 2),
		qrtree.WithGlobalTree(pivgen.Binary, 0),
	)
	require.NoError(s.T(), err)
	defer tree.Destroy()

	want := map[int]int{
		1: 0, 3: 2, 5: 4, 7: 6, // local pairs
		2: 0, 4: 0, 6: 4, // binary over roots 0,2,4,6
	}
	for m, p := range want {
		got, err := tree.PivotOf(0, m)
		require.NoError(s.T(), err)
		require.Equal(s.T(), p, got, "tile %d", m)
	}

	// Local peer first, then global peers in binary order.
	require.Equal(s.T(), []int{1, 2, 4}, collectPeers(s.T(), tree, 0, 0))
	require.Equal(s.T(), []int{5, 6}, collectPeers(s.T(), tree, 0, 4))
	require.Equal(s.T(), []int{3}, collectPeers(s.T(), tree, 0, 2))
}

// TestStepProgression advances the same geometry to step 1: the head domain
// shrinks to the bare root and the global tree spans roots 1,2,4,6.
func (s *QuerySuite) TestStepProgression() {
	tree, err := qrtree.New(8, 8,
		qrtree.WithLocalTree(pivgen.Flat, 2),
		qrtree.WithGlobalTree(pivgen.Binary, 0),
	)
	require.NoError(s.T(), err)
	defer tree.Destroy()

	want := map[int]int{2: 1, 3: 2, 4: 1, 5: 4, 6: 4, 7: 6}
	for m, p := range want {
		got, err := tree.PivotOf(1, m)
		require.NoError(s.T(), err)
		require.Equal(s.T(), p, got, "tile %d", m)
	}
	require.Equal(s.T(), []int{2, 4}, collectPeers(s.T(), tree, 1, 1))

	n, err := tree.Domains(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, n)
}

// TestGlobalGrouping verifies two-stage global reduction when the fan-in
// bound is smaller than the domain count: six single-row domains in groups
// of three, flat within groups and flat across group roots.
func (s *QuerySuite) TestGlobalGrouping() {
	tree, err := qrtree.New(6, 6,
		qrtree.WithLocalTree(pivgen.Flat, 1),
		qrtree.WithGlobalTree(pivgen.Flat, 3),
	)
	require.NoError(s.T(), err)
	defer tree.Destroy()

	// Super-rows are the tiles themselves. Stage 1: 1,2→0 and 4,5→3.
	// Stage 2: group root 3→0.
	want := map[int]int{1: 0, 2: 0, 3: 0, 4: 3, 5: 3}
	for m, p := range want {
		got, err := tree.PivotOf(0, m)
		require.NoError(s.T(), err)
		require.Equal(s.T(), p, got, "tile %d", m)
	}
	// Stage-1 peers of the step root precede its stage-2 peer.
	require.Equal(s.T(), []int{1, 2, 3}, collectPeers(s.T(), tree, 0, 0))
	require.Equal(s.T(), []int{4, 5}, collectPeers(s.T(), tree, 0, 3))
}

// TestOutOfRange verifies assert-level errors for invalid steps, tiles and
// traversal cursors.
func (s *QuerySuite) TestOutOfRange() {
	tree, err := qrtree.New(8, 4, qrtree.WithLocalTree(pivgen.Binary, 8))
	require.NoError(s.T(), err)
	defer tree.Destroy()

	_, err = tree.PivotOf(-1, 1)
	require.ErrorIs(s.T(), err, qrtree.ErrOutOfRange)
	_, err = tree.PivotOf(4, 5) // steps = min(8,4) = 4
	require.ErrorIs(s.T(), err, qrtree.ErrOutOfRange)
	_, err = tree.PivotOf(2, 2) // m must exceed k
	require.ErrorIs(s.T(), err, qrtree.ErrOutOfRange)
	_, err = tree.PivotOf(0, 8) // beyond the tile extent
	require.ErrorIs(s.T(), err, qrtree.ErrOutOfRange)
	_, err = tree.KernelKind(0, 0)
	require.ErrorIs(s.T(), err, qrtree.ErrOutOfRange)
	_, err = tree.NextPeer(0, 8, qrtree.NoTile)
	require.ErrorIs(s.T(), err, qrtree.ErrOutOfRange)

	// Tile 3 pivots into 2, so it is not a valid cursor under pivot 0.
	_, err = tree.NextPeer(0, 0, 3)
	require.ErrorIs(s.T(), err, qrtree.ErrOutOfRange)
	_, err = tree.PrevPeer(0, 0, 3)
	require.ErrorIs(s.T(), err, qrtree.ErrOutOfRange)
}

// TestDominoMarking verifies that exactly the first-global-round domain
// roots report the double kernel, and only under domino.
func (s *QuerySuite) TestDominoMarking() {
	build := func(domino bool) *qrtree.Tree {
		opts := []qrtree.Option{
			qrtree.WithLocalTree(pivgen.Flat, 2),
			qrtree.WithGlobalTree(pivgen.Binary, 0),
		}
		if domino {
			opts = append(opts, qrtree.WithDomino())
		}
		tree, err := qrtree.New(8, 8, opts...)
		require.NoError(s.T(), err)
		return tree
	}

	plain := build(false)
	defer plain.Destroy()
	for m := 1; m < 8; m++ {
		kern, err := plain.KernelKind(0, m)
		require.NoError(s.T(), err)
		require.Equal(s.T(), qrtree.KernelPanel, kern, "tile %d without domino", m)
	}

	overlapped := build(true)
	defer overlapped.Destroy()
	// Domain roots 2 and 6 sit at odd super-row offsets — the binary global
	// tree's first round. Root 4 reduces in round two; 1,3,5,7 are local.
	wantDouble := map[int]bool{2: true, 6: true}
	for m := 1; m < 8; m++ {
		kern, err := overlapped.KernelKind(0, m)
		require.NoError(s.T(), err)
		if wantDouble[m] {
			require.Equal(s.T(), qrtree.KernelDouble, kern, "tile %d", m)
		} else {
			require.Equal(s.T(), qrtree.KernelPanel, kern, "tile %d", m)
		}
	}
}

// TestDominoFanInOne verifies domino marking when the global tree has no
// in-group stage: with fan-in 1 the cross-group round is the first global
// round, so every flat global elimination is double.
func (s *QuerySuite) TestDominoFanInOne() {
	tree, err := qrtree.New(6, 6,
		qrtree.WithLocalTree(pivgen.Flat, 2),
		qrtree.WithGlobalTree(pivgen.Flat, 1),
		qrtree.WithDomino(),
	)
	require.NoError(s.T(), err)
	defer tree.Destroy()

	wantDouble := map[int]bool{2: true, 4: true}
	for m := 1; m < 6; m++ {
		kern, err := tree.KernelKind(0, m)
		require.NoError(s.T(), err)
		if wantDouble[m] {
			require.Equal(s.T(), qrtree.KernelDouble, kern, "tile %d", m)
		} else {
			require.Equal(s.T(), qrtree.KernelPanel, kern, "tile %d", m)
		}
	}
}

// TestRoundRobinRotation verifies that the default phase moves domain roots
// between steps while the forest stays valid.
func (s *QuerySuite) TestRoundRobinRotation() {
	tree, err := qrtree.New(8, 8,
		qrtree.WithLocalTree(pivgen.Flat, 2),
		qrtree.WithGlobalTree(pivgen.Binary, 0),
		qrtree.WithRoundRobin(),
	)
	require.NoError(s.T(), err)
	defer tree.Destroy()

	// Step 0, phase 0: domains {0,1}{2,3}{4,5}{6,7}, roots 0,2,4,6.
	p, err := tree.PivotOf(0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, p)

	// Step 1, phase 1: domains {1,2}{3,4}{5,6}{7}; interior roots rotate to
	// the second slot, so tile 3 now reduces upward into root 4.
	p, err = tree.PivotOf(1, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, p)
	p, err = tree.PivotOf(1, 4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, p)
	p, err = tree.PivotOf(1, 7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, p)
}

// TestCustomPhase verifies the rotation strategy is consulted instead of
// the default formula.
func (s *QuerySuite) TestCustomPhase() {
	fixed, err := qrtree.New(8, 8,
		qrtree.WithLocalTree(pivgen.Flat, 2),
		qrtree.WithGlobalTree(pivgen.Binary, 0),
		qrtree.WithRoundRobin(),
		qrtree.WithPhase(func(step, localSize int) int { return 0 }),
	)
	require.NoError(s.T(), err)
	defer fixed.Destroy()

	// Zero phase keeps the shifted partition but never rotates roots: the
	// root of domain {3,4} stays at tile 3, which reduces into step root 1.
	p, err := fixed.PivotOf(1, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, p)
	p, err = fixed.PivotOf(1, 4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, p)
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QuerySuite))
}
