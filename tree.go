package qrtree

import (
	"fmt"

	"github.com/katalvlaran/qrtree/pivgen"
)

// Tree is the immutable reduction-tree descriptor for one factorization.
// Built once by New, read-shared by any number of concurrent queries,
// released by Destroy. All fields are frozen after construction; queries
// are pure arithmetic over them.
type Tree struct {
	rows, cols int
	steps      int

	gridRows, gridCols int

	localKind  pivgen.Kind
	globalKind pivgen.Kind
	localSize  int
	globalSize int
	domino     bool
	roundRobin bool
	phase      Phase

	// Generators are dispatched once here; queries never branch on kind.
	local  pivgen.Generator
	global pivgen.Generator

	// bounds[d] is the first tile-row of fixed-assignment domain d;
	// bounds[len-1] == rows. O(domain count) memory, not O(rows).
	bounds []int

	destroyed bool
}

// New validates the geometry and builds an immutable tree descriptor.
// Validation is staged and the first invalid field wins; on failure no
// partial state is retained. Construction allocates O(domain count)
// auxiliary memory; queries allocate nothing.
func New(rows, cols int, opts ...Option) (*Tree, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: tile-grid extents.
	if rows < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRows, rows)
	}
	if cols < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCols, cols)
	}

	// Stage 2: tree sizes.
	if cfg.localSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLocalSize, cfg.localSize)
	}
	if cfg.globalSize < autoGlobalSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGlobalSize, cfg.globalSize)
	}

	// Stage 3: domain grid. A grid with more domains than tiles along the
	// reduced dimension cannot carry a meaningful per-domain partition.
	if cfg.gridRows < 1 || cfg.gridCols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDomainGrid, cfg.gridRows, cfg.gridCols)
	}
	if minDim := min(rows, cols); cfg.gridRows*cfg.gridCols > minDim {
		return nil, fmt.Errorf("%w: %d×%d over %d tiles", ErrDomainGridTooLarge, cfg.gridRows, cfg.gridCols, minDim)
	}

	// Stage 4: kinds (single dispatch point, see pivgen.New).
	local, err := pivgen.New(cfg.localKind)
	if err != nil {
		return nil, fmt.Errorf("qrtree: local tree: %w", err)
	}
	global, err := pivgen.New(cfg.globalKind)
	if err != nil {
		return nil, fmt.Errorf("qrtree: global tree: %w", err)
	}

	// Stage 5: feature compatibility.
	if cfg.domino && cfg.globalKind != pivgen.Flat && cfg.globalKind != pivgen.Binary {
		return nil, fmt.Errorf("%w: got %s", ErrDominoKind, cfg.globalKind)
	}
	if cfg.roundRobin && cfg.phase == nil {
		return nil, ErrNilPhase
	}

	nDomains := (rows + cfg.localSize - 1) / cfg.localSize
	globalSize := cfg.globalSize
	if globalSize == autoGlobalSize {
		globalSize = nDomains
	}

	bounds := make([]int, nDomains+1)
	for d := 0; d < nDomains; d++ {
		bounds[d] = d * cfg.localSize
	}
	bounds[nDomains] = rows

	return &Tree{
		rows:       rows,
		cols:       cols,
		steps:      min(rows, cols),
		gridRows:   cfg.gridRows,
		gridCols:   cfg.gridCols,
		localKind:  cfg.localKind,
		globalKind: cfg.globalKind,
		localSize:  cfg.localSize,
		globalSize: globalSize,
		domino:     cfg.domino,
		roundRobin: cfg.roundRobin,
		phase:      cfg.phase,
		local:      local,
		global:     global,
		bounds:     bounds,
	}, nil
}

// Destroy releases the auxiliary arrays built during construction and
// poisons the descriptor: subsequent queries return ErrDestroyed. Idempotent.
// The caller must ensure no queries are in flight; Destroy is the only
// writer a Tree ever sees after New.
func (t *Tree) Destroy() {
	t.destroyed = true
	t.bounds = nil
}

// Rows returns the tile-row extent being reduced.
func (t *Tree) Rows() int { return t.rows }

// Cols returns the tile-column extent.
func (t *Tree) Cols() int { return t.cols }

// Steps returns the number of factorization steps, min(rows, cols).
func (t *Tree) Steps() int { return t.steps }

// LocalKind returns the within-domain tree shape.
func (t *Tree) LocalKind() pivgen.Kind { return t.localKind }

// GlobalKind returns the cross-domain tree shape.
func (t *Tree) GlobalKind() pivgen.Kind { return t.globalKind }

// LocalSize returns the number of tile-rows grouped into one domain.
func (t *Tree) LocalSize() int { return t.localSize }

// GlobalSize returns the fan-in bound of one global-tree instance.
func (t *Tree) GlobalSize() int { return t.globalSize }

// Domino reports whether overlapped local/global reduction is enabled.
func (t *Tree) Domino() bool { return t.domino }

// RoundRobin reports whether the domain assignment rotates with the step.
func (t *Tree) RoundRobin() bool { return t.roundRobin }

// Domains returns the number of domains participating at step k.
func (t *Tree) Domains(k int) (int, error) {
	if err := t.checkStep(k); err != nil {
		return 0, err
	}
	return t.domains(k), nil
}

// checkStep guards every query: destroyed descriptor first, then step range.
func (t *Tree) checkStep(k int) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if k < 0 || k >= t.steps {
		return fmt.Errorf("%w: step %d of %d", ErrOutOfRange, k, t.steps)
	}
	return nil
}
