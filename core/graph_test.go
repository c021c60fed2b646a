package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoproute/core"
)

func TestAddHop_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddStop(""), core.ErrEmptyStopID)
	assert.ErrorIs(t, g.AddHop("", "B", 1), core.ErrEmptyStopID)
	assert.ErrorIs(t, g.AddHop("A", "", 1), core.ErrEmptyStopID)
	assert.ErrorIs(t, g.AddHop("A", "B", -0.5), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddHop("A", "B", math.NaN()), core.ErrBadWeight)

	// Rejected hops leave no trace.
	assert.Equal(t, 0, g.StopCount())
}

func TestAddHop_SymmetricAndMin(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddHop("A", "B", 3))
	require.NoError(t, g.AddHop("B", "A", 1.5)) // reversed pair, smaller weight
	require.NoError(t, g.AddHop("A", "B", 7))   // larger weight is ignored

	ab, ok := g.Weight("A", "B")
	require.True(t, ok)
	ba, ok := g.Weight("B", "A")
	require.True(t, ok)
	assert.Equal(t, 1.5, ab)
	assert.Equal(t, ab, ba)
	assert.Equal(t, 1, g.HopCount())
}

func TestAddHop_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddHop("A", "A", 2))

	w, ok := g.Weight("A", "A")
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, 1, g.HopCount())
	assert.Equal(t, []core.Hop{{From: "A", To: "A", Weight: 2}}, g.Hops())
}

func TestNeighbors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddHop("B", "C", 2))
	require.NoError(t, g.AddHop("B", "A", 1))
	require.NoError(t, g.AddStop("Z"))

	hops, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []core.Hop{
		{From: "B", To: "A", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, hops)

	hops, err = g.Neighbors("Z")
	require.NoError(t, err)
	assert.Empty(t, hops)

	_, err = g.Neighbors("missing")
	assert.True(t, errors.Is(err, core.ErrStopNotFound))
}

func TestStopsAndHopsSorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddHop("C", "A", 4))
	require.NoError(t, g.AddHop("B", "A", 1))
	require.NoError(t, g.AddStop("D"))

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Stops())
	assert.Equal(t, 4, g.StopCount())
	assert.Equal(t, []core.Hop{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 4},
	}, g.Hops())
}

func TestAdjacency_IsCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddHop("A", "B", 1))

	adj := g.Adjacency()
	assert.Equal(t, map[string]map[string]float64{
		"A": {"B": 1},
		"B": {"A": 1},
	}, adj)

	adj["A"]["B"] = 99
	w, _ := g.Weight("A", "B")
	assert.Equal(t, 1.0, w)
}

func TestNilGraph(t *testing.T) {
	var g *core.Graph
	assert.False(t, g.HasStop("A"))
	assert.Nil(t, g.Stops())
	assert.Nil(t, g.Hops())
	assert.Equal(t, 0, g.StopCount())
	assert.Equal(t, 0, g.HopCount())
	_, ok := g.Weight("A", "B")
	assert.False(t, ok)
	_, err := g.Neighbors("A")
	assert.ErrorIs(t, err, core.ErrStopNotFound)
}
