package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathlab/core"
	"pathlab/gridgraph"
)

func allFree(rows, cols int) [][]bool {
	g := make([][]bool, rows)
	for y := range g {
		g[y] = make([]bool, cols)
		for x := range g[y] {
			g[y][x] = true
		}
	}
	return g
}

func TestNew_RejectsEmptyGrid(t *testing.T) {
	_, err := gridgraph.New(nil, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.New([][]bool{{}}, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestNew_RejectsNonRectangular(t *testing.T) {
	_, err := gridgraph.New([][]bool{{true, true}, {true}}, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestNew_IDCoordRoundTrip(t *testing.T) {
	g, err := gridgraph.New(allFree(3, 4), gridgraph.Conn4)
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			id := g.ID(x, y)
			gx, gy := g.Coord(id)
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)
		}
	}
}

func TestEdges_Conn4CornerHasTwoNeighbours(t *testing.T) {
	g, err := gridgraph.New(allFree(3, 3), gridgraph.Conn4)
	require.NoError(t, err)

	count := 0
	for range g.Edges(g.ID(0, 0)) {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestEdges_Conn8CornerHasThreeNeighbours(t *testing.T) {
	g, err := gridgraph.New(allFree(3, 3), gridgraph.Conn8)
	require.NoError(t, err)

	var costs []core.Cost32
	for _, w := range g.Edges(g.ID(0, 0)) {
		costs = append(costs, w)
	}
	assert.Len(t, costs, 3)

	straight, diagonal := 0, 0
	for _, w := range costs {
		switch w {
		case 10:
			straight++
		case 14:
			diagonal++
		}
	}
	assert.Equal(t, 2, straight)
	assert.Equal(t, 1, diagonal)
}

func TestEdges_ImpassableCellHasNoEdges(t *testing.T) {
	passable := allFree(3, 3)
	passable[1][1] = false
	g, err := gridgraph.New(passable, gridgraph.Conn4)
	require.NoError(t, err)

	count := 0
	for range g.Edges(g.ID(1, 1)) {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestEdges_NeverYieldsIntoAWall(t *testing.T) {
	passable := allFree(3, 3)
	passable[0][1] = false // wall directly east of (0,0)
	g, err := gridgraph.New(passable, gridgraph.Conn4)
	require.NoError(t, err)

	for v := range g.Edges(g.ID(0, 0)) {
		assert.NotEqual(t, g.ID(1, 0), v)
	}
}

func TestRandom_RejectsBadDimensions(t *testing.T) {
	_, err := gridgraph.Random(0, 5)
	assert.ErrorIs(t, err, gridgraph.ErrBadDimensions)
}

func TestRandom_WallDensityOptionPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { gridgraph.WithWallDensity(1.5) })
	assert.Panics(t, func() { gridgraph.WithWallDensity(-0.1) })
}

func TestRandom_ForcesSourceAndDestinationFree(t *testing.T) {
	g, err := gridgraph.Random(5, 5, gridgraph.WithSeed(1), gridgraph.WithWallDensity(0.9))
	require.NoError(t, err)
	assert.True(t, g.Passable(0, 0))
	assert.True(t, g.Passable(4, 4))
}

func TestRandom_DeterministicUnderSameSeed(t *testing.T) {
	g1, err := gridgraph.Random(6, 6, gridgraph.WithSeed(42), gridgraph.WithWallDensity(0.3))
	require.NoError(t, err)
	g2, err := gridgraph.Random(6, 6, gridgraph.WithSeed(42), gridgraph.WithWallDensity(0.3))
	require.NoError(t, err)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			assert.Equal(t, g1.Passable(x, y), g2.Passable(x, y))
		}
	}
}

func TestRandom_ZeroWallDensityIsAllFree(t *testing.T) {
	g, err := gridgraph.Random(4, 4, gridgraph.WithWallDensity(0))
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.True(t, g.Passable(x, y))
		}
	}
}
