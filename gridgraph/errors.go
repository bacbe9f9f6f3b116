package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
//
// Every grid validation failure also matches ErrInvalidGrid via errors.Is,
// so callers can branch on "malformed input" without listing each cause.
var (
	// ErrInvalidGrid is the umbrella for all grid validation failures.
	ErrInvalidGrid = errors.New("gridgraph: invalid grid")
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrNaNCost indicates a cell whose cost is NaN.
	ErrNaNCost = errors.New("gridgraph: cell cost is NaN")
	// ErrBadThreshold indicates an ImpassableThreshold that is not a positive number.
	ErrBadThreshold = errors.New("gridgraph: ImpassableThreshold must be positive")
	// ErrOutOfBounds indicates a cell outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNotAdjacent indicates two consecutive path cells are not neighbors.
	ErrNotAdjacent = errors.New("gridgraph: consecutive path cells are not adjacent")
)

// invalid tags err as a grid validation failure while keeping its own identity.
type invalid struct{ err error }

func (e invalid) Error() string { return e.err.Error() }

func (e invalid) Unwrap() []error { return []error{ErrInvalidGrid, e.err} }
