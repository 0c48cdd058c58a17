package movingai_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathlab/movingai"
)

func TestLoadScen_ParsesCasesWithOpt(t *testing.T) {
	path := writeFile(t, "a.scen", "version 1\n0\tmaze.map\t32\t32\t1\t2\t30\t29\t41.41421\n")

	cases, err := movingai.LoadScen(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	c := cases[0]
	assert.Equal(t, 0, c.Bucket)
	assert.Equal(t, "maze.map", c.MapName)
	assert.Equal(t, 32, c.MapW)
	assert.Equal(t, 32, c.MapH)
	assert.Equal(t, 1, c.SX)
	assert.Equal(t, 2, c.SY)
	assert.Equal(t, 30, c.GX)
	assert.Equal(t, 29, c.GY)
	assert.InDelta(t, 41.41421, c.Opt, 1e-6)
}

func TestLoadScen_OptDefaultsToZeroWhenAbsent(t *testing.T) {
	path := writeFile(t, "b.scen", "0 maze.map 10 10 0 0 9 9\n")

	cases, err := movingai.LoadScen(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, float64(0), cases[0].Opt)
}

func TestLoadScen_WithoutVersionLineStillParses(t *testing.T) {
	path := writeFile(t, "c.scen", "0 maze.map 10 10 0 0 9 9 5.0\n1 maze.map 10 10 1 1 8 8 3.0\n")

	cases, err := movingai.LoadScen(path)
	require.NoError(t, err)
	assert.Len(t, cases, 2)
}

func TestLoadScen_SkipsMalformedLines(t *testing.T) {
	path := writeFile(t, "d.scen", "version 1\nthis line is garbage\n0 maze.map 10 10 0 0 9 9 5.0\n")

	cases, err := movingai.LoadScen(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "maze.map", cases[0].MapName)
}

func TestLoadScen_SkipsBlankLines(t *testing.T) {
	path := writeFile(t, "e.scen", "version 1\n\n0 maze.map 10 10 0 0 9 9 5.0\n\n")

	cases, err := movingai.LoadScen(path)
	require.NoError(t, err)
	assert.Len(t, cases, 1)
}

func TestLoadScen_MissingFileReturnsWrappedError(t *testing.T) {
	_, err := movingai.LoadScen(filepath.Join(t.TempDir(), "missing.scen"))
	assert.ErrorIs(t, err, movingai.ErrCannotOpenScen)
}
