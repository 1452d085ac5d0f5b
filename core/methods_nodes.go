// File: methods_nodes.go
// Role: Node queries and placement: NodeCount/NodeAt/Nodes/SetPosition/DegreeSum.
// Determinism:
//   - Nodes() returns nodes in index order.
// Concurrency:
//   - Reads under muNodes read lock; SetPosition under muNodes write lock.
//   - Degree counters live on *Node and are mutated by the single owner of the
//     interconnection phase; they are not guarded by muNodes.

package core

import (
	"fmt"

	"github.com/paulmach/orb"
)

// NodeCount returns the fixed number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// NodeAt returns the node with index i.
// Returns ErrNodeNotFound if i is outside [0, NodeCount()).
// Complexity: O(1).
func (g *Graph) NodeAt(i int) (*Node, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	if i < 0 || i >= len(g.nodes) {
		return nil, fmt.Errorf("%w: index %d", ErrNodeNotFound, i)
	}

	return g.nodes[i], nil
}

// Nodes returns a snapshot slice of all nodes in index order.
// The slice is fresh; the *Node values are shared with the graph.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// SetPosition places node i at p.
// Returns ErrNodeNotFound for an unknown index.
// Complexity: O(1).
func (g *Graph) SetPosition(i int, p orb.Point) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if i < 0 || i >= len(g.nodes) {
		return fmt.Errorf("%w: index %d", ErrNodeNotFound, i)
	}
	g.nodes[i].Pos = p

	return nil
}

// DegreeSum returns the sum of out-degrees across all nodes.
// For a fully interconnected graph this equals 2 × EdgeCount().
// Complexity: O(V).
func (g *Graph) DegreeSum() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	sum := 0
	for _, n := range g.nodes {
		sum += n.outDegree
	}

	return sum
}

// validNode reports whether i indexes an existing node.
// Caller must not hold muNodes for writing.
func (g *Graph) validNode(i int) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return i >= 0 && i < len(g.nodes)
}
