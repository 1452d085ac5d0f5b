// Package core defines the router-level topology container: a fixed set of
// Node values addressed by dense indices, a growing Edge catalog and an
// adjacency index answering "is (i,k) already connected?" in O(1).
//
// All core APIs use separate sync.RWMutex locks internally (muNodes for the
// node set, muEdgeAdj for edges and adjacency).
//
// Errors:
//
//	ErrBadNodeCount   - graph requested with fewer than one node.
//	ErrNodeNotFound   - node index outside [0, NodeCount()).
//	ErrEdgeNotFound   - edge ID outside the catalog.
//	ErrLoopNotAllowed - edge whose endpoints coincide.
//	ErrNilEdgeConf    - nil configuration payload.
//	ErrEdgeExists     - Connect on an already linked pair.
package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeCount indicates NewGraph was asked for fewer than one node.
	ErrBadNodeCount = errors.New("core: node count must be positive")

	// ErrNodeNotFound indicates an operation referenced a non-existent node index.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilEdgeConf indicates a nil configuration payload was attached to an edge.
	ErrNilEdgeConf = errors.New("core: edge configuration is nil")

	// ErrEdgeExists indicates Connect was asked to link an already linked pair.
	ErrEdgeExists = errors.New("core: nodes already linked")
)

// Node is a router in the topology.
//
// ID equals the node's index in its Graph and never changes. In-degree and
// out-degree are mutated only by the interconnection phase; the out-degree is
// the weight used for preferential attachment.
type Node struct {
	// ID is the dense index of this node, 0..N-1.
	ID int

	// Pos is the node's location in the plane, set by the placement phase.
	Pos orb.Point

	inDegree  int
	outDegree int
}

// InDegree returns the node's in-degree.
func (n *Node) InDegree() int { return n.inDegree }

// OutDegree returns the node's out-degree.
func (n *Node) OutDegree() int { return n.outDegree }

// SetInDegree overwrites the node's in-degree.
func (n *Node) SetInDegree(d int) { n.inDegree = d }

// SetOutDegree overwrites the node's out-degree.
func (n *Node) SetOutDegree(d int) { n.outDegree = d }

// Position returns the node's plane coordinates.
func (n *Node) Position() orb.Point { return n.Pos }

// EdgeKind classifies the role of an edge in the topology.
type EdgeKind int

const (
	// EdgeKindUnset marks an edge whose configuration has not been assigned.
	EdgeKindUnset EdgeKind = iota
	// EdgeKindRouter marks a router-to-router link.
	EdgeKindRouter
)

// String renders the kind for logs and reports.
func (k EdgeKind) String() string {
	switch k {
	case EdgeKindRouter:
		return "router"
	default:
		return "unset"
	}
}

// EdgeConf is the per-edge payload attached after interconnection.
type EdgeConf struct {
	// Bandwidth is the link capacity in the generator's bandwidth unit.
	Bandwidth float64

	// Kind classifies the link.
	Kind EdgeKind
}

// Edge is an unordered link between two nodes.
//
// From and To are node indices; From is the node that initiated the link
// (the joining node during growth). Length is the planar distance between
// the endpoints at creation time and is immutable afterwards. Conf is nil
// until a bandwidth pass attaches one.
type Edge struct {
	// ID is the edge's position in the catalog (0,1,2,...).
	ID int

	// From is the initiating endpoint.
	From int

	// To is the target endpoint.
	To int

	// Length is the Euclidean distance between the endpoints.
	Length float64

	// Conf is the configuration payload (bandwidth, kind).
	Conf *EdgeConf
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacity pre-sizes the edge catalog for k edges.
// Non-positive values are ignored.
func WithEdgeCapacity(k int) GraphOption {
	return func(g *Graph) {
		if k > 0 {
			g.edges = make([]*Edge, 0, k)
		}
	}
}

// Graph is the in-memory router topology.
//
// The node set is fixed at construction. Edges are appended by AddEdge; the
// adjacency index is maintained separately through RegisterAdjacency so the
// caller controls exactly when a link becomes visible to membership queries.
// muNodes protects nodes; muEdgeAdj protects edges and adjacency.
type Graph struct {
	muNodes   sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Storage
	nodes []*Node // index → Node
	edges []*Edge // edge ID → Edge

	// adjacency[i][k] = struct{}{} iff (i,k) was registered.
	adjacency []map[int]struct{}
}

// NewGraph creates a Graph holding n nodes with IDs 0..n-1, all at the origin
// with zero degree, and no edges.
// Returns ErrBadNodeCount if n < 1.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 1 {
		return nil, ErrBadNodeCount
	}
	g := &Graph{
		nodes:     make([]*Node, n),
		adjacency: make([]map[int]struct{}, n),
	}
	for i := 0; i < n; i++ {
		g.nodes[i] = &Node{ID: i}
		g.adjacency[i] = make(map[int]struct{})
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	if g.edges == nil {
		g.edges = make([]*Edge, 0)
	}

	return g, nil
}
