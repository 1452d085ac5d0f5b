// Package builder_test contains functional tests for the BarabasiAlbert
// constructor: degree bookkeeping, simple-graph guarantees, seed clique,
// growth order, replay and error contracts.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/core"
)

// buildBA places n nodes on a 100×100 plane and interconnects them with m.
func buildBA(t *testing.T, n, m int, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil, opts,
		builder.PlaceNodes(builder.PlacementRandom, 100, 10),
		builder.BarabasiAlbert(m),
	)
	require.NoError(t, err)

	return g
}

// edgePairs returns (From,To) of every edge in ID order.
func edgePairs(g *core.Graph) [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, [2]int{e.From, e.To})
	}

	return out
}

func TestBarabasiAlbert_DegreeSumAndEdgeCount(t *testing.T) {
	t.Parallel()

	cases := []struct{ n, m int }{
		{2, 1}, {10, 1}, {10, 2}, {50, 3}, {200, 4}, {6, 5},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("n=%d/m=%d", tc.n, tc.m), func(t *testing.T) {
			t.Parallel()
			g := buildBA(t, tc.n, tc.m, builder.WithSeed(int64(tc.n*31+tc.m)))

			wantE := tc.m*(tc.m+1)/2 + (tc.n-tc.m-1)*tc.m
			assert.Equal(t, wantE, g.EdgeCount())
			assert.Equal(t, 2*g.EdgeCount(), g.DegreeSum())

			for _, nd := range g.Nodes() {
				assert.Equal(t, nd.OutDegree(), nd.InDegree(), "node %d", nd.ID)
				assert.GreaterOrEqual(t, nd.OutDegree(), tc.m, "node %d", nd.ID)
			}
		})
	}
}

func TestBarabasiAlbert_SimpleGraph(t *testing.T) {
	t.Parallel()

	g := buildBA(t, 300, 3, builder.WithSeed(11))
	seen := make(map[[2]int]bool, g.EdgeCount())
	for _, p := range edgePairs(g) {
		require.NotEqual(t, p[0], p[1], "self-loop at %d", p[0])
		a, b := min(p[0], p[1]), max(p[0], p[1])
		require.False(t, seen[[2]int{a, b}], "duplicate link %d-%d", a, b)
		seen[[2]int{a, b}] = true

		assert.True(t, g.AdjacencyContains(p[0], p[1]))
		assert.True(t, g.AdjacencyContains(p[1], p[0]))
	}

	// Degree counters agree with the adjacency index.
	for i := 0; i < g.NodeCount(); i++ {
		nb, err := g.Neighbors(i)
		require.NoError(t, err)
		nd, err := g.NodeAt(i)
		require.NoError(t, err)
		assert.Equal(t, len(nb), nd.OutDegree(), "node %d", i)
	}
}

func TestBarabasiAlbert_SeedCliqueOnly(t *testing.T) {
	t.Parallel()

	var stats builder.InterconnectStats
	g := buildBA(t, 4, 3, builder.WithSeed(1),
		builder.WithInterconnectObserver(func(s builder.InterconnectStats) { stats = s }))

	assert.Equal(t, 6, g.EdgeCount())
	for _, nd := range g.Nodes() {
		assert.Equal(t, 3, nd.OutDegree())
		assert.Equal(t, 3, nd.InDegree())
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, edgePairs(g))
	assert.Equal(t, 6, stats.SeedEdges)
	assert.Zero(t, stats.GrowthEdges)
	assert.Zero(t, stats.Draws, "N == m+1 needs no draws")
	assert.Equal(t, 12, stats.DegreeSum)
}

func TestBarabasiAlbert_TenNodesTwoEdges(t *testing.T) {
	t.Parallel()

	g := buildBA(t, 10, 2, builder.WithSeed(2024))
	assert.Equal(t, 17, g.EdgeCount())
	assert.Equal(t, 34, g.DegreeSum())
}

func TestBarabasiAlbert_GrowthTargetsEarlierNodes(t *testing.T) {
	t.Parallel()

	const m = 3
	g := buildBA(t, 120, m, builder.WithSeed(99))
	seed := m * (m + 1) / 2
	for id, p := range edgePairs(g) {
		if id < seed {
			assert.LessOrEqual(t, p[1], m, "seed edge %d", id)
			continue
		}
		assert.Greater(t, p[0], m, "growth edge %d source", id)
		assert.Less(t, p[1], p[0], "growth edge %d must target an earlier node", id)
	}
}

func TestBarabasiAlbert_ReplayIsDeterministic(t *testing.T) {
	t.Parallel()

	rec := builder.NewRecordingSource(rand.New(rand.NewSource(77)))
	first := buildBA(t, 80, 2, builder.WithSeed(5), builder.WithRand(rec))

	replay := builder.NewReplaySource(rec.Draws())
	second := buildBA(t, 80, 2, builder.WithSeed(5), builder.WithRand(replay))

	assert.Equal(t, edgePairs(first), edgePairs(second))
	assert.Zero(t, replay.Remaining())
	assert.NoError(t, replay.Err())

	// Same seed without overrides is reproducible too.
	a := buildBA(t, 80, 2, builder.WithSeed(5))
	b := buildBA(t, 80, 2, builder.WithSeed(5))
	assert.Equal(t, edgePairs(a), edgePairs(b))
}

// With nodes 0..2 as the clique, node 3 sees degrees [2,2,2,0] (Σ=6).
func TestBarabasiAlbert_ScriptedDraws(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		draws     []float64
		wantPairs [][2]int
		check     func(t *testing.T, s builder.InterconnectStats)
	}{
		{
			name:      "duplicate rejected then redrawn",
			draws:     []float64{0.1, 0.1, 0.9},
			wantPairs: [][2]int{{3, 0}, {3, 2}},
			check: func(t *testing.T, s builder.InterconnectStats) {
				assert.Equal(t, 3, s.Draws)
				assert.Equal(t, 1, s.DuplicateRejects)
			},
		},
		{
			name:      "boundary draw maps to lower index",
			draws:     []float64{1.0 / 3.0, 0.5},
			wantPairs: [][2]int{{3, 0}, {3, 1}},
			check: func(t *testing.T, s builder.InterconnectStats) {
				assert.Equal(t, 2, s.Draws)
			},
		},
		{
			name:      "overshoot falls back to last weighted node",
			draws:     []float64{1.5, 0.0},
			wantPairs: [][2]int{{3, 2}, {3, 0}},
			check: func(t *testing.T, s builder.InterconnectStats) {
				assert.Equal(t, 1, s.FallbackPicks)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var stats builder.InterconnectStats
			g := buildBA(t, 4, 2, builder.WithSeed(1),
				builder.WithRand(builder.NewReplaySource(tc.draws)),
				builder.WithInterconnectObserver(func(s builder.InterconnectStats) { stats = s }))

			assert.Equal(t, tc.wantPairs, edgePairs(g)[3:])
			assert.Equal(t, 3, stats.SeedEdges)
			assert.Equal(t, 2, stats.GrowthEdges)
			assert.Equal(t, 10, stats.DegreeSum)
			tc.check(t, stats)

			nd, err := g.NodeAt(3)
			require.NoError(t, err)
			assert.Equal(t, 2, nd.OutDegree())
		})
	}
}

func TestBarabasiAlbert_Errors(t *testing.T) {
	t.Parallel()

	place := builder.PlaceNodes(builder.PlacementRandom, 100, 10)
	cases := []struct {
		name string
		n    int
		opts []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"m zero", 5, []builder.BuilderOption{builder.WithSeed(1)},
			[]builder.Constructor{place, builder.BarabasiAlbert(0)}, builder.ErrTooFewVertices},
		{"n equals m", 3, []builder.BuilderOption{builder.WithSeed(1)},
			[]builder.Constructor{place, builder.BarabasiAlbert(3)}, builder.ErrTooFewVertices},
		{"no attachment source", 5, nil,
			[]builder.Constructor{builder.BarabasiAlbert(2)}, builder.ErrNeedRandSource},
		{"replay exhausted", 6, []builder.BuilderOption{builder.WithSeed(1), builder.WithRand(builder.NewReplaySource([]float64{0.1}))},
			[]builder.Constructor{place, builder.BarabasiAlbert(2)}, builder.ErrSourceExhausted},
		{"draw budget spent", 4, []builder.BuilderOption{
			builder.WithSeed(1),
			builder.WithRand(builder.NewReplaySource([]float64{0.1, 0.1, 0.1, 0.1})),
			builder.WithMaxDrawAttempts(3),
		}, []builder.Constructor{place, builder.BarabasiAlbert(2)}, builder.ErrConstructFailed},
		{"already wired", 6, []builder.BuilderOption{builder.WithSeed(1)},
			[]builder.Constructor{place, builder.BarabasiAlbert(2), builder.BarabasiAlbert(2)}, builder.ErrConstructFailed},
		{"nil constructor", 4, nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"no nodes", 0, nil, nil, builder.ErrTooFewVertices},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, tc.opts, tc.cons...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g, "no partial graph on failure")
		})
	}
}

func TestInterconnect(t *testing.T) {
	t.Parallel()

	_, err := builder.Interconnect(nil, 2, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	g, err := core.NewGraph(20)
	require.NoError(t, err)
	stats, err := builder.Interconnect(g, 2, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.SeedEdges)
	assert.Equal(t, 34, stats.GrowthEdges)
	assert.Equal(t, 2*g.EdgeCount(), stats.DegreeSum)
	assert.GreaterOrEqual(t, stats.Draws, stats.GrowthEdges)
}

// TestInterconnect_RollbackOnFailure checks that a failed run leaves a
// caller-owned graph untouched and ready for another attempt.
func TestInterconnect_RollbackOnFailure(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph(6)
	require.NoError(t, err)

	// One draw covers the first growth edge of node 3; the second runs dry.
	observed := false
	_, err = builder.Interconnect(g, 2,
		builder.WithRand(builder.NewReplaySource([]float64{0.1})),
		builder.WithInterconnectObserver(func(builder.InterconnectStats) { observed = true }))
	require.ErrorIs(t, err, builder.ErrSourceExhausted)
	assert.False(t, observed)

	assert.Zero(t, g.EdgeCount())
	assert.Zero(t, g.DegreeSum())
	for i := 0; i < g.NodeCount(); i++ {
		nb, nerr := g.Neighbors(i)
		require.NoError(t, nerr)
		assert.Empty(t, nb, "node %d", i)
		n, _ := g.NodeAt(i)
		assert.Zero(t, n.InDegree(), "node %d", i)
	}

	stats, err := builder.Interconnect(g, 2, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 3+3*2, g.EdgeCount())
	assert.Equal(t, 2*g.EdgeCount(), g.DegreeSum())
	assert.Equal(t, g.DegreeSum(), stats.DegreeSum)
}
