package movingai

import "errors"

// Sentinel errors returned by LoadMap and LoadScen. Construction-time
// failures are reported with a human-readable wrapped message, matching the
// error model of the rest of the core: recoverable failures belong to the
// external collaborators, never to the algorithmic packages.
var (
	// ErrCannotOpenMap indicates the .map file could not be opened for reading.
	ErrCannotOpenMap = errors.New("movingai: cannot open map file")

	// ErrInvalidMapHeader indicates the four-line octile header was malformed.
	ErrInvalidMapHeader = errors.New("movingai: invalid map header")

	// ErrInvalidMapSize indicates a non-positive width or height.
	ErrInvalidMapSize = errors.New("movingai: width and height must be positive")

	// ErrMapRowTooShort indicates a map row shorter than the declared width.
	ErrMapRowTooShort = errors.New("movingai: map row shorter than declared width")

	// ErrCannotOpenScen indicates the .scen file could not be opened for reading.
	ErrCannotOpenScen = errors.New("movingai: cannot open scen file")
)

// MapData is the parsed contents of a .map file.
type MapData struct {
	Width, Height int

	// Passable is row-major: Passable[y][x] is true iff the cell at (x, y)
	// is traversable.
	Passable [][]bool
}

// ScenCase is a single line of a .scen file: a start/goal pair on a named
// map, with the bucket it was grouped under and its reference optimal cost.
type ScenCase struct {
	Bucket  int
	MapName string
	MapW    int
	MapH    int
	SX, SY  int
	GX, GY  int
	Opt     float64
}
