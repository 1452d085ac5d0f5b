// Package dijkstra provides Dijkstra's shortest-path algorithm over router
// topologies built by lvtopo/builder.
//
// Overview:
//
//   - Computes the minimum-cost route from one source router to every
//     reachable router in O((V + E) log V).
//   - Link cost defaults to the geometric Length stored on each core.Edge;
//     HopWeight and custom WithEdgeWeight functions cover other metrics.
//   - Supports optional path reconstruction (WithReturnPath + PathTo),
//     distance caps (WithMaxDistance) and impassable links (WithInfEdgeThreshold).
//
// Determinism:
//
//   - Incidence lists follow edge-ID order; equal-distance ties resolve by
//     heap order, which is fixed for a given graph.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(hub), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	route := dijkstra.PathTo(prev, hub, 17)
package dijkstra
