package qrtree

// Functional configuration for tree construction. Defaults are a single
// source of truth below; every WithX constructor is validated inside New
// (staged, first invalid field wins) rather than panicking, so a driver can
// surface configuration failures as ordinary factorization errors.

import "github.com/katalvlaran/qrtree/pivgen"

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultLocalKind shapes the within-domain tree when WithLocalTree is
	// absent. Greedy reaches the minimum round count for irregular sizes.
	DefaultLocalKind = pivgen.Greedy

	// DefaultGlobalKind shapes the cross-domain tree when WithGlobalTree is
	// absent. Fibonacci balances depth against long-distance traffic.
	DefaultGlobalKind = pivgen.Fibonacci

	// DefaultLocalSize groups this many consecutive tile-rows per domain.
	DefaultLocalSize = 4

	// autoGlobalSize makes the global tree span all domain roots in a
	// single instance (resolved to the domain count during New).
	autoGlobalSize = 0
)

// config collects construction parameters before validation. Fields stay
// unexported; the public surface is Option constructors only.
type config struct {
	gridRows, gridCols    int
	localKind, globalKind pivgen.Kind
	localSize, globalSize int
	domino, roundRobin    bool
	phase                 Phase
}

// defaultConfig mirrors the DEFAULTS block above.
func defaultConfig() config {
	return config{
		gridRows:   1,
		gridCols:   1,
		localKind:  DefaultLocalKind,
		globalKind: DefaultGlobalKind,
		localSize:  DefaultLocalSize,
		globalSize: autoGlobalSize,
		phase:      DefaultPhase,
	}
}

// Option customizes tree construction; apply via New.
type Option func(*config)

// WithLocalTree selects the within-domain tree shape and the number of
// consecutive tile-rows grouped into one domain. size need not divide the
// row count; the tail domain is simply smaller.
func WithLocalTree(kind pivgen.Kind, size int) Option {
	return func(c *config) {
		c.localKind = kind
		c.localSize = size
	}
}

// WithGlobalTree selects the cross-domain tree shape and the fan-in bound
// of one global-tree instance: super-rows reduce in consecutive groups of
// size, then group roots reduce across groups with the same kind. A size
// covering all domains degenerates to a single global instance.
func WithGlobalTree(kind pivgen.Kind, size int) Option {
	return func(c *config) {
		c.globalKind = kind
		c.globalSize = size
	}
}

// WithDomainGrid declares the process-domain grid the tile distribution
// runs on. Used for validation (a partition finer than the tile grid is
// meaningless) and for the precomputed boundary offsets; never for
// arithmetic on tile data.
func WithDomainGrid(rows, cols int) Option {
	return func(c *config) {
		c.gridRows = rows
		c.gridCols = cols
	}
}

// WithDomino lets the global tree's first reduction round consume
// partially-reduced local results instead of waiting for full local
// collapse. Shortens the critical path; the affected eliminations report
// KernelDouble. Requires a Flat or Binary global tree.
func WithDomino() Option {
	return func(c *config) { c.domino = true }
}

// WithRoundRobin rotates the tile-to-domain assignment with the
// factorization step so the same physical tile is not the bottleneck root
// of every step. The rotation formula is the Phase strategy (DefaultPhase
// unless WithPhase overrides it).
func WithRoundRobin() Option {
	return func(c *config) { c.roundRobin = true }
}

// WithPhase swaps the round-robin rotation formula. Only consulted when
// round-robin is enabled; a nil strategy fails construction.
func WithPhase(fn Phase) Option {
	return func(c *config) { c.phase = fn }
}
