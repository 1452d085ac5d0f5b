package dijkstra_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvtopo/core"
	"github.com/katalvlaran/lvtopo/dijkstra"
)

// ExampleDijkstra routes across three collinear routers. The direct link
// and the two-hop route tie at length 4; the first relaxation is kept.
func ExampleDijkstra() {
	g, _ := core.NewGraph(3)
	_ = g.SetPosition(0, orb.Point{0, 0})
	_ = g.SetPosition(1, orb.Point{2, 0})
	_ = g.SetPosition(2, orb.Point{4, 0})
	_, _ = g.Connect(0, 1)
	_, _ = g.Connect(1, 2)
	_, _ = g.Connect(0, 2)

	dist, prev, _ := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	fmt.Println(dist[2], dijkstra.PathTo(prev, 0, 2))
	// Output: 4 [0 2]
}
