package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoproute/builder"
	"github.com/katalvlaran/stoproute/dijkstra"
)

func TestGridRoutes_Shape(t *testing.T) {
	routes, err := builder.GridRoutes(3, 4, 0.5)
	require.NoError(t, err)
	require.Len(t, routes, 7)

	assert.Equal(t, "row-0", routes[0].ID)
	assert.Equal(t, []string{"0,0", "0,1", "0,2", "0,3"}, routes[0].Chain())
	assert.InDelta(t, 1.5, *routes[0].DistanceKM, 1e-12)
	assert.Equal(t, []string{"0,3", "1,3", "2,3"}, routes[6].Chain())

	g := builder.BuildGraph(routes)
	assert.Equal(t, 12, g.StopCount())
	assert.Equal(t, 3*3+4*2, g.HopCount())

	w, ok := g.Weight(builder.GridID(1, 1), builder.GridID(1, 2))
	require.True(t, ok)
	assert.InDelta(t, 0.5, w, 1e-12)
}

func TestGridRoutes_ManhattanDistance(t *testing.T) {
	routes, err := builder.GridRoutes(5, 5, 1)
	require.NoError(t, err)
	g := builder.BuildGraph(routes)

	d, path := dijkstra.ShortestPath(g, builder.GridID(0, 0), builder.GridID(4, 3))
	assert.InDelta(t, 7.0, d, 1e-9)
	assert.Len(t, path, 8)
}

func TestGridRoutes_Degenerate(t *testing.T) {
	routes, err := builder.GridRoutes(1, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, routes)

	routes, err = builder.GridRoutes(1, 3, 2)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"0,0", "0,1", "0,2"}, routes[0].Chain())

	for _, tc := range []struct {
		rows, cols int
		km         float64
	}{{0, 3, 1}, {3, -1, 1}, {2, 2, -0.5}} {
		_, err := builder.GridRoutes(tc.rows, tc.cols, tc.km)
		assert.ErrorIs(t, err, builder.ErrGridSize)
	}
}

func TestGridRoutes_BlockLengthRounding(t *testing.T) {
	routes, err := builder.GridRoutes(1, 4, 0.1)
	require.NoError(t, err)
	g := builder.BuildGraph(routes)

	for c := 0; c < 3; c++ {
		w, ok := g.Weight(builder.GridID(0, c), builder.GridID(0, c+1))
		require.True(t, ok)
		assert.InDelta(t, 0.1, w, 1e-12)
	}
}
