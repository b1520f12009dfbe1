package qrtree

import "errors"

// Sentinel errors for tree construction and queries. Construction errors
// identify the first invalid field; query errors are assert-level (a bug in
// the calling driver, not a recoverable condition).
var (
	// ErrInvalidRows indicates the tile-row extent is below 1.
	ErrInvalidRows = errors.New("qrtree: rows must be at least 1")
	// ErrInvalidCols indicates the tile-column extent is below 1.
	ErrInvalidCols = errors.New("qrtree: cols must be at least 1")
	// ErrInvalidLocalSize indicates a non-positive local tree size.
	ErrInvalidLocalSize = errors.New("qrtree: local tree size must be at least 1")
	// ErrInvalidGlobalSize indicates a non-positive global tree size.
	ErrInvalidGlobalSize = errors.New("qrtree: global tree size must be at least 1")
	// ErrInvalidDomainGrid indicates a domain grid dimension below 1.
	ErrInvalidDomainGrid = errors.New("qrtree: domain grid dimensions must be at least 1")
	// ErrDomainGridTooLarge indicates more domains than tiles to partition.
	ErrDomainGridTooLarge = errors.New("qrtree: domain grid product exceeds the tile grid")
	// ErrDominoKind indicates domino overlap with an incompatible global tree.
	ErrDominoKind = errors.New("qrtree: domino requires a flat or binary global tree")
	// ErrNilPhase indicates round-robin was enabled with a nil phase strategy.
	ErrNilPhase = errors.New("qrtree: round-robin phase strategy must be non-nil")
	// ErrOutOfRange indicates a step or tile index outside the valid domain.
	ErrOutOfRange = errors.New("qrtree: step or tile index out of range")
	// ErrDestroyed indicates a query on a destroyed tree descriptor.
	ErrDestroyed = errors.New("qrtree: tree descriptor already destroyed")
)
