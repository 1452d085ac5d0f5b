// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only snapshot of catalog sizes and degree bookkeeping.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is an immutable-by-convention snapshot of a Graph.
type GraphStats struct {
	NodeCount      int // number of nodes
	EdgeCount      int // number of edges in the catalog
	AdjacencyCount int // number of registered one-way adjacencies
	OutDegreeSum   int // Σ out-degree
	InDegreeSum    int // Σ in-degree
	MaxOutDegree   int // largest out-degree
	IsolatedNodes  int // nodes with out-degree 0
}

// Stats produces a deterministic snapshot of counts and degree sums.
//
// Implementation:
//   - Stage 1: Acquire muNodes.RLock, scan degrees, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge and adjacency counts, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//   - For a consistently interconnected undirected graph:
//     OutDegreeSum == InDegreeSum == AdjacencyCount == 2*EdgeCount.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	var stats GraphStats

	// First phase: degrees under muNodes.
	g.muNodes.RLock()
	stats.NodeCount = len(g.nodes)
	for _, n := range g.nodes {
		stats.OutDegreeSum += n.outDegree
		stats.InDegreeSum += n.inDegree
		if n.outDegree > stats.MaxOutDegree {
			stats.MaxOutDegree = n.outDegree
		}
		if n.outDegree == 0 {
			stats.IsolatedNodes++
		}
	}
	g.muNodes.RUnlock()

	// Second phase: catalog sizes under muEdgeAdj.
	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, row := range g.adjacency {
		stats.AdjacencyCount += len(row)
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
