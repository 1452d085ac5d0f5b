package converters_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/converters"
	"github.com/katalvlaran/lvtopo/core"
)

func TestToGonum_RoundTrip(t *testing.T) {
	g, err := builder.Generate(builder.RouterBarabasiAlbertParams{
		N: 40, HS: 100, LS: 10, Placement: builder.PlacementRandom,
		M: 2, BWDist: builder.BandwidthConst, BWMin: 1, BWMax: 1,
	}, builder.WithSeed(3))
	require.NoError(t, err)

	u, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, 40, u.Nodes().Len())
	assert.Equal(t, g.EdgeCount(), u.Edges().Len())
	assert.Len(t, topo.ConnectedComponents(u), 1)

	back, err := converters.FromGonumWithPositions(u, func(id int64) orb.Point {
		nd, _ := g.NodeAt(int(id))
		return nd.Position()
	})
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), back.NodeCount())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
	assert.Equal(t, g.DegreeSum(), back.DegreeSum())
	for i := 0; i < g.NodeCount(); i++ {
		a, _ := g.Neighbors(i)
		b, _ := back.Neighbors(i)
		assert.Equal(t, a, b, "node %d", i)
	}
}

func TestToWeightedGonum_ShortestPath(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.SetPosition(1, orb.Point{3, 4}))
	require.NoError(t, g.SetPosition(2, orb.Point{6, 8}))
	_, err = g.Connect(0, 1)
	require.NoError(t, err)
	_, err = g.Connect(1, 2)
	require.NoError(t, err)

	u, err := converters.ToWeightedGonum(g, nil)
	require.NoError(t, err)
	sp := path.DijkstraFrom(simple.Node(0), u)
	assert.InDelta(t, 10, sp.WeightTo(2), 1e-12)
}

func TestFromGonum_Errors(t *testing.T) {
	_, err := converters.FromGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
	_, err = converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	u := simple.NewUndirectedGraph()
	u.AddNode(simple.Node(0))
	u.AddNode(simple.Node(5))
	_, err = converters.FromGonum(u)
	assert.ErrorIs(t, err, converters.ErrSparseIDs)

	empty := simple.NewUndirectedGraph()
	_, err = converters.FromGonum(empty)
	assert.ErrorIs(t, err, core.ErrBadNodeCount)
}
