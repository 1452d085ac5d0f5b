package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvtopo/core"
)

var (
	// ErrNilGraph is returned for nil inputs.
	ErrNilGraph = errors.New("converters: graph is nil")
	// ErrSparseIDs is returned when gonum node IDs are not exactly 0..n-1.
	ErrSparseIDs = errors.New("converters: node IDs must be dense 0..n-1")
)

// ToGonum copies the node set and links of g into a gonum simple graph.
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	u := simple.NewUndirectedGraph()
	for i := 0; i < g.NodeCount(); i++ {
		u.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		u.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
	}

	return u, nil
}

// ToWeightedGonum copies g into a weighted gonum graph, weighting each link
// with weight(e); nil weight uses Edge.Length. Absent links weigh +Inf and
// self-weight is 0, matching gonum's path package expectations.
func ToWeightedGonum(g *core.Graph, weight func(*core.Edge) float64) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if weight == nil {
		weight = func(e *core.Edge) float64 { return e.Length }
	}
	u := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.NodeCount(); i++ {
		u.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		u.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: weight(e)})
	}

	return u, nil
}

// FromGonum rebuilds a core.Graph from u. Nodes sit at the origin.
func FromGonum(u graph.Undirected) (*core.Graph, error) {
	return FromGonumWithPositions(u, nil)
}

// FromGonumWithPositions rebuilds a core.Graph from u, placing node id at
// pos(id) before links are created so Edge.Length reflects the geometry.
// A nil pos leaves every node at the origin.
func FromGonumWithPositions(u graph.Undirected, pos func(id int64) orb.Point) (*core.Graph, error) {
	if u == nil {
		return nil, ErrNilGraph
	}
	nodes := graph.NodesOf(u.Nodes())
	ids := make([]int64, 0, len(nodes))
	for _, nd := range nodes {
		ids = append(ids, nd.ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		if id != int64(i) {
			return nil, fmt.Errorf("%w: position %d holds id %d", ErrSparseIDs, i, id)
		}
	}

	g, err := core.NewGraph(len(ids))
	if err != nil {
		return nil, fmt.Errorf("converters: %w", err)
	}
	if pos != nil {
		for _, id := range ids {
			if err = g.SetPosition(int(id), pos(id)); err != nil {
				return nil, fmt.Errorf("converters: %w", err)
			}
		}
	}

	// Links in (lower, higher) order, both sorted, so edge IDs are stable.
	for _, a := range ids {
		nbrs := graph.NodesOf(u.From(a))
		bs := make([]int64, 0, len(nbrs))
		for _, nb := range nbrs {
			if b := nb.ID(); b > a {
				bs = append(bs, b)
			}
		}
		sort.Slice(bs, func(i, j int) bool { return bs[i] < bs[j] })
		for _, b := range bs {
			if _, err = g.Connect(int(a), int(b)); err != nil {
				return nil, fmt.Errorf("converters: link %d–%d: %w", a, b, err)
			}
		}
	}

	return g, nil
}
