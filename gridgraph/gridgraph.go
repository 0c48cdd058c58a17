package gridgraph

import (
	"iter"
	"math/rand"

	"pathlab/core"
)

// Grid is a passability grid exposed as a core.Graph. It is immutable once
// built.
type Grid struct {
	width, height int
	free          []bool // row-major, free[y*width+x]
	conn          Connectivity
	offsets       []offset
}

// New builds a Grid from a rectangular passability matrix: passable[y][x] true
// means the cell is traversable. Returns ErrEmptyGrid if passable has no
// rows or no columns, ErrNonRectangular if row lengths differ.
func New(passable [][]bool, conn Connectivity) (*Grid, error) {
	if len(passable) == 0 || len(passable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(passable), len(passable[0])
	for _, row := range passable {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	free := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			free[y*w+x] = passable[y][x]
		}
	}

	return &Grid{width: w, height: h, free: free, conn: conn, offsets: offsetsFor(conn)}, nil
}

func offsetsFor(conn Connectivity) []offset {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// RandomOption configures Random.
type RandomOption func(*randomConfig)

type randomConfig struct {
	conn        Connectivity
	wallDensity float64
	rng         *rand.Rand
}

// WithConnectivity selects 4- or 8-connectivity for Random. The default is
// Conn8.
func WithConnectivity(conn Connectivity) RandomOption {
	return func(c *randomConfig) { c.conn = conn }
}

// WithWallDensity sets the fraction of cells that are impassable, in
// [0, 1). The default is 0 (an all-free grid). Panics if density is out of
// range, matching the fail-fast option-constructor convention.
func WithWallDensity(density float64) RandomOption {
	if density < 0 || density >= 1 {
		panic(ErrBadWallDensity.Error())
	}
	return func(c *randomConfig) { c.wallDensity = density }
}

// WithSeed seeds Random's RNG for a reproducible grid. The default seed is
// 0, which is itself deterministic but identical across calls unless
// overridden.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// Random builds a rows x cols grid with independently-sampled walls at the
// configured density. The source cell (0,0) and the destination cell
// (rows-1, cols-1) are always forced free so the grid has a chance of being
// solvable; nothing else about reachability is guaranteed.
func Random(rows, cols int, opts ...RandomOption) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}
	cfg := randomConfig{conn: Conn8, wallDensity: 0, rng: rand.New(rand.NewSource(0))}
	for _, opt := range opts {
		opt(&cfg)
	}

	passable := make([][]bool, rows)
	for y := 0; y < rows; y++ {
		passable[y] = make([]bool, cols)
		for x := 0; x < cols; x++ {
			passable[y][x] = cfg.rng.Float64() >= cfg.wallDensity
		}
	}
	passable[0][0] = true
	passable[rows-1][cols-1] = true

	return New(passable, cfg.conn)
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// ID maps a cell coordinate to its NodeId. Panics if (x, y) is out of
// bounds.
func (g *Grid) ID(x, y int) core.NodeId {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic("gridgraph: coordinate out of bounds")
	}
	return core.NodeId(y*g.width + x)
}

// Coord maps a NodeId back to its (x, y) coordinate.
func (g *Grid) Coord(u core.NodeId) (x, y int) {
	x = int(u) % g.width
	y = int(u) / g.width
	return x, y
}

// Passable reports whether (x, y) lies within the grid and is traversable.
func (g *Grid) Passable(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.free[y*g.width+x]
}

// NumNodes returns width*height.
func (g *Grid) NumNodes() int { return g.width * g.height }

// Edges yields u's passable neighbours under the grid's connectivity, with
// weight 10 for an orthogonal step and 14 for a diagonal one. An impassable
// u yields no edges.
func (g *Grid) Edges(u core.NodeId) iter.Seq2[core.NodeId, core.Cost32] {
	return func(yield func(core.NodeId, core.Cost32) bool) {
		x, y := g.Coord(u)
		if !g.Passable(x, y) {
			return
		}
		for _, o := range g.offsets {
			nx, ny := x+o.dx, y+o.dy
			if !g.Passable(nx, ny) {
				continue
			}
			if !yield(g.ID(nx, ny), core.Cost32(o.cost)) {
				return
			}
		}
	}
}
