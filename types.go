package qrtree

// Public value types shared by the resolver API.

import "github.com/katalvlaran/qrtree/pivgen"

// NoTile is the sentinel tile index: no pivot exists, a peer traversal is
// exhausted, or a query failed. Aliases pivgen.None so relative and
// absolute index spaces share one sentinel.
const NoTile = pivgen.None

// Kernel selects the numerical elimination kernel the driver must invoke.
type Kernel int

const (
	// KernelPanel eliminates one triangular tile against another — the
	// ordinary case for local eliminations and fully-reduced global ones.
	KernelPanel Kernel = iota
	// KernelDouble combines two partially-reduced triangular tiles; required
	// wherever domino overlap lets a cross-domain elimination start before
	// its inputs' local trees have fully collapsed. More expensive per call
	// than KernelPanel.
	KernelDouble
)

// String returns the canonical lower-case kernel name.
func (k Kernel) String() string {
	switch k {
	case KernelPanel:
		return "panel"
	case KernelDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Phase is a round-robin rotation strategy: it returns the slot rotation
// applied within full interior domains at factorization step `step`, given
// the domain size. The returned value is reduced modulo the domain size, so
// any total function of the step is acceptable. The query layer treats the
// strategy as opaque; swapping the formula never touches query code.
type Phase func(step, localSize int) int

// DefaultPhase rotates the domain root by one slot per step.
func DefaultPhase(step, localSize int) int {
	return step % localSize
}
