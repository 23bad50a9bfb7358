package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classbreak/grid"
)

func TestPatches_Connectivity(t *testing.T) {
	b, err := grid.NewBand([][]float64{
		{1, 2, 1},
		{2, 1, 2},
		{0, 0, 1},
	}, grid.WithNoData(0))
	require.NoError(t, err)

	// Orthogonally every 1 and every 2 is isolated.
	c4 := b.PatchCounts(grid.Conn4)
	assert.Equal(t, 4, c4[1])
	assert.Equal(t, 3, c4[2])
	_, ok := c4[0]
	assert.False(t, ok, "no-data cells form no patch")

	// Diagonals join all ones through the centre and all twos through (1,0).
	c8 := b.PatchCounts(grid.Conn8)
	assert.Equal(t, 1, c8[1])
	assert.Equal(t, 1, c8[2])
}

func TestPatches_Cells(t *testing.T) {
	b, err := grid.NewBand([][]float64{
		{3, 3},
		{4, 3},
	}, grid.DefaultBandOptions())
	require.NoError(t, err)

	ps := b.Patches(grid.Conn4)
	require.Len(t, ps, 2)
	assert.Equal(t, 3.0, ps[0].Value)
	assert.ElementsMatch(t, []int{0, 1, 3}, ps[0].Cells)
	assert.Equal(t, 4.0, ps[1].Value)
	assert.Equal(t, []int{2}, ps[1].Cells)

	x, y := b.Coordinate(ps[1].Cells[0])
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)
}
