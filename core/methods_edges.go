// File: methods_edges.go
// Role: Edge lifecycle & adjacency index: AddEdge/EdgeAt/Edges/EdgeCount/SetEdgeConf/TruncateEdges,
//       AdjacencyContains/RegisterAdjacency/Neighbors.
// Determinism:
//   - Edge IDs are catalog positions; Edges() returns them in ID order.
//   - Neighbors() returns indices sorted ascending.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// Notes:
//   - AddEdge never touches the adjacency index. Callers register both
//     directions explicitly with RegisterAdjacency; duplicate prevention is
//     the caller's job (AdjacencyContains before AddEdge).

package core

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb/planar"
)

// AddEdge appends a new edge from→to to the catalog and returns it.
// Length is computed from the current endpoint positions.
//
// Returns ErrNodeNotFound for unknown endpoints and ErrLoopNotAllowed when
// from == to.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) (*Edge, error) {
	// 1) Validate endpoints and resolve their positions.
	src, err := g.NodeAt(from)
	if err != nil {
		return nil, fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}
	dst, err := g.NodeAt(to)
	if err != nil {
		return nil, fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}
	if from == to {
		return nil, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}

	g.muNodes.RLock()
	length := planar.Distance(src.Pos, dst.Pos)
	g.muNodes.RUnlock()

	// 2) Append under lock; the ID is the catalog position.
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e := &Edge{ID: len(g.edges), From: from, To: to, Length: length}
	g.edges = append(g.edges, e)

	return e, nil
}

// EdgeAt returns the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) EdgeAt(id int) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return nil, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns a snapshot slice of all edges in ID order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges in the catalog.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// SetEdgeConf attaches conf to edge id, replacing any previous payload.
// Returns ErrEdgeNotFound or ErrNilEdgeConf.
// Complexity: O(1).
func (g *Graph) SetEdgeConf(id int, conf *EdgeConf) error {
	if conf == nil {
		return ErrNilEdgeConf
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if id < 0 || id >= len(g.edges) {
		return fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}
	g.edges[id].Conf = conf

	return nil
}

// AdjacencyContains reports whether (i,k) has been registered.
// Unknown indices report false.
// Complexity: O(1).
func (g *Graph) AdjacencyContains(i, k int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if i < 0 || i >= len(g.adjacency) {
		return false
	}
	_, ok := g.adjacency[i][k]

	return ok
}

// RegisterAdjacency records the one-way adjacency i→k. Undirected links
// are registered twice, once per direction. Re-registering is a no-op.
// Returns ErrNodeNotFound for unknown indices.
// Complexity: O(1).
func (g *Graph) RegisterAdjacency(i, k int) error {
	if !g.validNode(i) || !g.validNode(k) {
		return fmt.Errorf("RegisterAdjacency(%d,%d): %w", i, k, ErrNodeNotFound)
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.adjacency[i][k] = struct{}{}

	return nil
}

// Neighbors returns the registered neighbors of i, sorted ascending.
// Returns ErrNodeNotFound for an unknown index.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(i int) ([]int, error) {
	if !g.validNode(i) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrNodeNotFound)
	}
	g.muEdgeAdj.RLock()
	out := make([]int, 0, len(g.adjacency[i]))
	for k := range g.adjacency[i] {
		out = append(out, k)
	}
	g.muEdgeAdj.RUnlock()

	sort.Ints(out)

	return out, nil
}

// Connect adds the undirected link from–to in one step: it appends the
// edge, registers both adjacency directions and bumps the in/out degree of
// both endpoints by one. Growth code that defers degree updates uses
// AddEdge and RegisterAdjacency directly instead.
// Returns ErrEdgeExists if the pair is already linked.
// Complexity: O(1) amortized.
func (g *Graph) Connect(from, to int) (*Edge, error) {
	if g.AdjacencyContains(from, to) {
		return nil, fmt.Errorf("Connect(%d,%d): %w", from, to, ErrEdgeExists)
	}
	e, err := g.AddEdge(from, to)
	if err != nil {
		return nil, err
	}
	if err = g.RegisterAdjacency(from, to); err != nil {
		return nil, err
	}
	if err = g.RegisterAdjacency(to, from); err != nil {
		return nil, err
	}

	g.muNodes.Lock()
	for _, id := range [2]int{from, to} {
		n := g.nodes[id]
		n.inDegree++
		n.outDegree++
	}
	g.muNodes.Unlock()

	return e, nil
}

// TruncateEdges drops every edge with ID ≥ k together with both adjacency
// directions it occupies. Node degrees are left untouched; callers that
// bumped degrees restore them themselves.
// Returns ErrEdgeNotFound if k is outside [0, EdgeCount()].
// Complexity: O(E - k).
func (g *Graph) TruncateEdges(k int) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if k < 0 || k > len(g.edges) {
		return fmt.Errorf("TruncateEdges(%d): %w", k, ErrEdgeNotFound)
	}
	for _, e := range g.edges[k:] {
		delete(g.adjacency[e.From], e.To)
		delete(g.adjacency[e.To], e.From)
	}
	clear(g.edges[k:])
	g.edges = g.edges[:k]

	return nil
}
