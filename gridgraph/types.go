package gridgraph

import "errors"

// Sentinel errors for gridgraph construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrBadDimensions indicates Random was asked for a non-positive size.
	ErrBadDimensions = errors.New("gridgraph: rows and cols must be positive")

	// ErrBadWallDensity indicates a wall density outside [0, 1).
	ErrBadWallDensity = errors.New("gridgraph: wall density must be in [0, 1)")
)

// Connectivity selects which neighbours a cell is adjacent to.
type Connectivity int

const (
	// Conn4 connects each cell to its N, E, S, W neighbours at cost 10.
	Conn4 Connectivity = iota

	// Conn8 additionally connects NE, SE, SW, NW neighbours at cost 14,
	// matching the MovingAI octile convention.
	Conn8
)

const (
	straightCost = 10
	diagonalCost = 14
)

type offset struct {
	dx, dy int
	cost   uint32
}

var offsets4 = []offset{
	{1, 0, straightCost}, {-1, 0, straightCost},
	{0, 1, straightCost}, {0, -1, straightCost},
}

var offsets8 = append(append([]offset{}, offsets4...),
	offset{1, 1, diagonalCost}, offset{1, -1, diagonalCost},
	offset{-1, 1, diagonalCost}, offset{-1, -1, diagonalCost},
)
