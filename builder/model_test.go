package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvtopo/builder"
)

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, builder.DefaultParams().Validate())

	mutate := func(fn func(p *builder.RouterBarabasiAlbertParams)) builder.RouterBarabasiAlbertParams {
		p := builder.DefaultParams()
		fn(&p)
		return p
	}
	bad := map[string]builder.RouterBarabasiAlbertParams{
		"n not above m":      mutate(func(p *builder.RouterBarabasiAlbertParams) { p.N, p.M = 3, 3 }),
		"m zero":             mutate(func(p *builder.RouterBarabasiAlbertParams) { p.M = 0 }),
		"hs zero":            mutate(func(p *builder.RouterBarabasiAlbertParams) { p.HS = 0 }),
		"ls zero":            mutate(func(p *builder.RouterBarabasiAlbertParams) { p.LS = 0 }),
		"unknown placement":  mutate(func(p *builder.RouterBarabasiAlbertParams) { p.Placement = 5 }),
		"unknown bandwidth":  mutate(func(p *builder.RouterBarabasiAlbertParams) { p.BWDist = 0 }),
		"negative bw min":    mutate(func(p *builder.RouterBarabasiAlbertParams) { p.BWMin = -1 }),
		"bw max below min":   mutate(func(p *builder.RouterBarabasiAlbertParams) { p.BWMin, p.BWMax = 10, 5 }),
		"plane too small":    mutate(func(p *builder.RouterBarabasiAlbertParams) { p.HS = 10 }),
		"ht side not a mult": mutate(func(p *builder.RouterBarabasiAlbertParams) { p.Placement, p.LS = builder.PlacementHeavyTailed, 300 }),
	}
	for name, p := range bad {
		err := p.Validate()
		assert.ErrorIs(t, err, builder.ErrInvalidParams, name)
	}
}

// TestParams_ValidateWidePlane covers planes whose squared side does not fit in int.
func TestParams_ValidateWidePlane(t *testing.T) {
	t.Parallel()

	p := builder.DefaultParams()
	p.HS = 1 << 32
	require.NoError(t, p.Validate())

	p.Placement, p.LS = builder.PlacementHeavyTailed, 1<<16
	require.NoError(t, p.Validate())

	// exact fit and one past it
	p = builder.DefaultParams()
	p.N, p.HS = 100, 10
	require.NoError(t, p.Validate())
	p.N = 101
	assert.ErrorIs(t, p.Validate(), builder.ErrInvalidParams)
}

func TestGenerate_WidePlane(t *testing.T) {
	t.Parallel()

	for _, kind := range []builder.PlacementType{builder.PlacementRandom, builder.PlacementHeavyTailed} {
		p := builder.DefaultParams()
		p.N, p.HS, p.LS, p.Placement = 60, 1<<32, 1<<16, kind

		g, err := builder.Generate(p, builder.WithSeed(9))
		require.NoError(t, err, kind.String())
		for _, nd := range g.Nodes() {
			pos := nd.Position()
			assert.GreaterOrEqual(t, pos.X(), 0.0)
			assert.Less(t, pos.X(), float64(p.HS))
			assert.GreaterOrEqual(t, pos.Y(), 0.0)
			assert.Less(t, pos.Y(), float64(p.HS))
		}
	}
}

func TestParams_String(t *testing.T) {
	t.Parallel()

	p := builder.RouterBarabasiAlbertParams{
		N: 10, HS: 100, LS: 10, Placement: builder.PlacementHeavyTailed,
		M: 2, BWDist: builder.BandwidthUniform, BWMin: 10, BWMax: 1024.5,
	}
	assert.Equal(t, "Model ( 2 ): 10 100 10 2 2 2 10 1024.5", p.String())
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	p := builder.DefaultParams()
	p.N, p.M = 150, 3
	p.Placement, p.LS = builder.PlacementHeavyTailed, 50
	p.BWDist = builder.BandwidthHeavyTailed

	obs, logs := observer.New(zap.InfoLevel)
	g1, err := builder.Generate(p, builder.WithSeed(12), builder.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	g2, err := builder.Generate(p, builder.WithSeed(12))
	require.NoError(t, err)

	assert.Equal(t, 150, g1.NodeCount())
	assert.Equal(t, 6+146*3, g1.EdgeCount())
	assert.Equal(t, edgePairs(g1), edgePairs(g2))
	for i, e := range g1.Edges() {
		assert.Equal(t, e.Conf.Bandwidth, g2.Edges()[i].Conf.Bandwidth)
		assert.Equal(t, e.Length, g2.Edges()[i].Length)
	}

	// One line per phase plus the two Generate lines.
	assert.GreaterOrEqual(t, logs.Len(), 5)
	assert.Equal(t, 1, logs.FilterMessage("interconnecting nodes").Len())
	assert.Equal(t, 1, logs.FilterMessage("placing nodes").Len())

	_, err = builder.Generate(builder.RouterBarabasiAlbertParams{}, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidParams)

	_, err = builder.Generate(p)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}
