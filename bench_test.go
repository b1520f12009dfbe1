package qrtree_test

import (
	"testing"

	"github.com/katalvlaran/qrtree"
	"github.com/katalvlaran/qrtree/pivgen"
)

// BenchmarkPivotOf measures the point query on a tall geometry:
// 4096 tile-rows in domains of 32, greedy local and fibonacci global trees.
// Complexity: O(log localSize) per call, no allocations.
func BenchmarkPivotOf(b *testing.B) {
	tree, err := qrtree.New(4096, 4096,
		qrtree.WithLocalTree(pivgen.Greedy, 32),
		qrtree.WithGlobalTree(pivgen.Fibonacci, 0),
	)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	defer tree.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.PivotOf(7, 8+i%4000); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPeerTraversal measures a full NextPeer walk over the step root,
// the widest pivot of the forest.
func BenchmarkPeerTraversal(b *testing.B) {
	tree, err := qrtree.New(4096, 4096,
		qrtree.WithLocalTree(pivgen.Binary, 64),
		qrtree.WithGlobalTree(pivgen.Greedy, 8),
	)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	defer tree.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for m, err := tree.NextPeer(0, 0, qrtree.NoTile); m != qrtree.NoTile; m, err = tree.NextPeer(0, 0, m) {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkKernelKind measures kernel selection under domino marking.
func BenchmarkKernelKind(b *testing.B) {
	tree, err := qrtree.New(4096, 4096,
		qrtree.WithLocalTree(pivgen.Greedy, 32),
		qrtree.WithGlobalTree(pivgen.Binary, 16),
		qrtree.WithDomino(),
	)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	defer tree.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.KernelKind(3, 4+i%4000); err != nil {
			b.Fatal(err)
		}
	}
}
