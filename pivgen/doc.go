// Package pivgen provides single-level pivot generators for tiled QR/LQ
// reduction trees: given a contiguous block of tile-rows, a generator
// answers which row eliminates which other row, and in what order.
//
// What:
//
//   - A Generator describes an elimination forest over a relative index
//     space 0..size-1 whose unique root is index 0.
//   - Pivot(size, r) returns the row index r is eliminated into.
//   - NextPeer / PrevPeer walk, in a fixed deterministic order, every row
//     that eliminates into a given pivot. The two walks are exact inverses.
//   - FirstRound reports whether a row is eliminated in the very first
//     reduction round of the forest (needed by overlapped "domino"
//     scheduling one level up).
//   - Depth returns the number of sequential reduction rounds.
//
// Why:
//
//   - Tiled QR factorizations eliminate tens of thousands of rows per panel;
//     the dependency forest must be answered point-wise, in O(1) or
//     O(log size) arithmetic, without ever being materialized.
//   - Householder eliminations are not associative in floating point, so the
//     peer traversal order is part of the contract: it is what a dataflow
//     scheduler uses to serialize updates into a shared pivot reproducibly.
//
// Kinds:
//
//   - Flat       — every row reduces straight into the root. One round,
//     maximal width, maximal root contention. Depth: 1.
//   - Binary     — pairwise reduction with doubling distance.
//     Depth: ⌈log2(size)⌉.
//   - Greedy     — halve the live set every round (recursive halving), the
//     fewest rounds for irregular sizes. Depth: ⌈log2(size)⌉.
//   - Fibonacci  — elimination blocks grow by Fibonacci steps, a middle
//     ground between Flat and Binary when the cost of an elimination grows
//     sub-linearly with distance. Depth: O(log_φ(size)).
//
// All generators are stateless value types: selecting one via New performs
// the only kind dispatch; every query after that is branch-free on the kind.
// Queries never allocate and are safe for unsynchronized concurrent use.
//
// Errors:
//
//   - ErrUnknownKind: New or ParseKind received an unrecognized tree kind.
//
// Out-of-contract query arguments (pivot of the root, peers of a row that
// pivots nothing, foreign cursors) yield None rather than panicking; the
// caller owns index validation.
package pivgen
