package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/bfs"
	"github.com/katalvlaran/lvtopo/core"
)

// ExampleBFS finds the fewest-hop route in a small router mesh.
// Two routes exist from 0 to 5: 0–1–2–5 and 0–3–5.
func ExampleBFS() {
	g, _ := core.NewGraph(6)
	for _, l := range [][2]int{{0, 1}, {1, 2}, {2, 5}, {0, 3}, {3, 5}, {3, 4}} {
		_, _ = g.Connect(l[0], l[1])
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(5)
	fmt.Println(res.Order)
	fmt.Println(path, res.Eccentricity())
	// Output:
	// [0 1 3 2 4 5]
	// [0 3 5] 2
}
