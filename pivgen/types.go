// Package pivgen: kind enumeration, the Generator contract and sentinel
// errors shared by all reduction-tree shapes.
package pivgen

import (
	"errors"
	"fmt"
	"strings"
)

// None is the sentinel index returned when no row satisfies a query:
// the root has no pivot, a traversal is exhausted, or a cursor is foreign.
const None = -1

// ErrUnknownKind indicates an unrecognized reduction-tree kind.
var ErrUnknownKind = errors.New("pivgen: unknown reduction tree kind")

// Kind selects the shape of a single-level reduction tree.
type Kind int

const (
	// Flat reduces every row directly into the root.
	Flat Kind = iota
	// Binary reduces pairwise with doubling distance per round.
	Binary
	// Greedy halves the set of live rows every round.
	Greedy
	// Fibonacci grows elimination blocks by Fibonacci steps.
	Fibonacci
)

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Flat:
		return "flat"
	case Binary:
		return "binary"
	case Greedy:
		return "greedy"
	case Fibonacci:
		return "fibonacci"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a configuration string (flat|binary|greedy|fibonacci,
// case-insensitive) into a Kind. Unrecognized names yield ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat":
		return Flat, nil
	case "binary":
		return Binary, nil
	case "greedy":
		return Greedy, nil
	case "fibonacci":
		return Fibonacci, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Generator answers structural queries about one elimination forest over a
// relative index space 0..size-1 with root 0. Implementations are stateless;
// size is passed per call because domain sizes vary across factorization
// steps (partial head and tail domains).
//
// Contracts shared by every implementation:
//
//   - Pivot(size, r) is defined for 1 ≤ r < size and returns a value in
//     0..size-1; repeated application reaches 0 without cycles.
//   - NextPeer(size, p, after) with after==None returns the first row that
//     pivots into p; with after set to a previously returned row it returns
//     the following one; None when exhausted.
//   - PrevPeer is the exact inverse walk: starting from None it yields the
//     peers of p in reverse NextPeer order.
//   - The traversal order is total, deterministic, and identical across
//     calls, goroutines and process runs.
//   - FirstRound(size, r) reports whether r's elimination belongs to the
//     first reduction round of the forest.
//   - Depth(size) is the number of sequential reduction rounds (0 when
//     size == 1).
type Generator interface {
	Kind() Kind
	Pivot(size, r int) int
	NextPeer(size, p, after int) int
	PrevPeer(size, p, before int) int
	FirstRound(size, r int) bool
	Depth(size int) int
}

// New returns the stateless generator for the requested kind. This is the
// single point of kind dispatch; queries on the returned Generator never
// branch on the kind again.
func New(kind Kind) (Generator, error) {
	switch kind {
	case Flat:
		return flatTree{}, nil
	case Binary:
		return binaryTree{}, nil
	case Greedy:
		return greedyTree{}, nil
	case Fibonacci:
		return fibonacciTree{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
