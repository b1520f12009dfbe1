// Package qrtree resolves the reduction trees of tile-based,
// communication-avoiding QR/LQ factorizations: for every factorization step
// it decides which tile eliminates which other tile, in what order, through
// which kernel — without ever materializing the dependency graph.
//
// What:
//
//   - Tree is an immutable descriptor built once per factorization from the
//     tile-grid extents and the tree configuration (local/global kinds and
//     sizes, domain grid, domino, round-robin).
//   - PivotOf(k, m) returns the unique tile that m is eliminated into at
//     step k; chains of pivots always terminate at the step's root tile k.
//   - NextPeer / PrevPeer enumerate, in a fixed deterministic order, every
//     tile reducing into a given pivot. The order is part of the contract:
//     Householder updates are not associative in floating point, and an
//     external dataflow scheduler serializes them in exactly this order.
//   - KernelKind(k, m) selects the elimination kernel: KernelPanel for
//     ordinary eliminations, KernelDouble where domino overlap makes a
//     cross-domain elimination consume partially-reduced local results.
//
// Why:
//
//   - Matrices with tens of thousands of tiles cannot afford an explicit
//     task graph; every query here is O(1) or O(log n) integer arithmetic
//     over a handful of precomputed offsets.
//   - The split between a cheap within-domain ("local") tree and a
//     cross-domain ("global") tree is what bounds communication volume,
//     while the tree kinds trade critical-path depth against pivot
//     contention.
//
// Hierarchy:
//
//	tile rows ──grouped by localSize──▶ domains ──roots become super-rows──▶
//	global groups of globalSize ──group roots──▶ step root (tile k)
//
// Within a domain the local tree (pivgen kind) reduces every row into the
// domain root; domain roots then reduce across domains with the global
// kind, in groups bounded by globalSize. With round-robin enabled the
// domain partition rotates with the step so no physical tile is the
// bottleneck root of every step.
//
// Concurrency:
//
//   - A Tree is read-shared: all queries are pure, allocation-free and safe
//     for unsynchronized concurrent use. Destroy is the single exception
//     and must only run once all queries have completed.
//
// Errors:
//
//   - Construction: ErrInvalidRows, ErrInvalidCols, ErrInvalidLocalSize,
//     ErrInvalidGlobalSize, ErrInvalidDomainGrid, ErrDomainGridTooLarge,
//     ErrDominoKind, ErrNilPhase (first invalid field wins, no partial
//     state).
//   - Queries: ErrOutOfRange (driver bug, assert-level), ErrDestroyed.
//
// Quick example (one domain, binary local tree over 8 tile-rows, step 0):
//
//	t, _ := qrtree.New(8, 8, qrtree.WithLocalTree(pivgen.Binary, 8))
//	p, _ := t.PivotOf(0, 6) // p == 4
//
// The pivgen subpackage holds the four single-level tree shapes; cmd/qrtree
// is a small inspector binary over the same configuration surface.
package qrtree
