package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtopo/core"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("analysis: graph is nil")
	// ErrInvariantViolation is returned when a structural invariant does not hold.
	ErrInvariantViolation = errors.New("analysis: invariant violation")
)

// Verify checks that g is a simple undirected graph whose bookkeeping is
// consistent:
//   - no edge joins a node to itself;
//   - no unordered pair is linked twice;
//   - every link is registered in both adjacency directions and nothing else is;
//   - every node's out-degree equals its neighbor count;
//   - Σ out-degree == 2·|E|.
//
// The first violation found is returned, wrapped around ErrInvariantViolation.
func Verify(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	edges := g.Edges()
	seen := make(map[[2]int]int, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			return fmt.Errorf("%w: edge %d is a self-loop at %d", ErrInvariantViolation, e.ID, e.From)
		}
		key := [2]int{min(e.From, e.To), max(e.From, e.To)}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%w: edges %d and %d both link %d–%d", ErrInvariantViolation, prev, e.ID, key[0], key[1])
		}
		seen[key] = e.ID
		if !g.AdjacencyContains(e.From, e.To) || !g.AdjacencyContains(e.To, e.From) {
			return fmt.Errorf("%w: edge %d (%d–%d) missing from adjacency", ErrInvariantViolation, e.ID, e.From, e.To)
		}
	}

	if st := g.Stats(); st.AdjacencyCount != 2*len(edges) {
		return fmt.Errorf("%w: %d adjacency entries for %d links", ErrInvariantViolation, st.AdjacencyCount, len(edges))
	}

	for _, nd := range g.Nodes() {
		nbrs, err := g.Neighbors(nd.ID)
		if err != nil {
			return fmt.Errorf("analysis: %w", err)
		}
		if nd.OutDegree() != len(nbrs) {
			return fmt.Errorf("%w: node %d out-degree %d but %d neighbors", ErrInvariantViolation, nd.ID, nd.OutDegree(), len(nbrs))
		}
	}

	if sum, want := g.DegreeSum(), 2*len(edges); sum != want {
		return fmt.Errorf("%w: degree sum %d != 2·|E| = %d", ErrInvariantViolation, sum, want)
	}

	return nil
}
