package core_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvtopo/core"
)

// ExampleGraph shows the full bookkeeping for one undirected link.
func ExampleGraph() {
	g, _ := core.NewGraph(2)
	_ = g.SetPosition(0, orb.Point{0, 0})
	_ = g.SetPosition(1, orb.Point{6, 8})

	e, _ := g.AddEdge(1, 0)
	_ = g.RegisterAdjacency(1, 0)
	_ = g.RegisterAdjacency(0, 1)

	fmt.Println(e.ID, e.Length, g.AdjacencyContains(0, 1))
	// Output: 0 10 true
}
