package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/builder"
)

// ExampleGenerate builds a 50-router topology with two links per joining node.
func ExampleGenerate() {
	p := builder.DefaultParams()
	p.N, p.HS = 50, 100

	g, err := builder.Generate(p, builder.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NodeCount(), g.EdgeCount(), g.DegreeSum() == 2*g.EdgeCount())
	// Output: 50 97 true
}

// ExampleBuildGraph composes the phases by hand.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(4, nil, []builder.BuilderOption{builder.WithSeed(1)},
		builder.PlaceNodes(builder.PlacementRandom, 10, 1),
		builder.BarabasiAlbert(3),
		builder.AssignBandwidth(builder.BandwidthConst, 100, 100),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e, _ := g.EdgeAt(0)
	fmt.Println(g.EdgeCount(), e.From, e.To, e.Conf.Bandwidth, e.Conf.Kind)
	// Output: 6 0 1 100 router
}
