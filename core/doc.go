// Package core provides a thread-safe in-memory container for router-level
// topologies with a minimal API surface.
//
// The Graph G = (V,E) has a fixed node set created up front:
//
//   - Nodes are addressed by dense indices 0..N-1 (Node.ID == index).
//   - Each Node carries a plane position (orb.Point) and in/out degree counters.
//   - Edges are unordered links appended to a catalog; Edge.ID is the
//     catalog position, Edge.Length the planar distance between endpoints.
//   - The adjacency index answers AdjacencyContains(i,k) in O(1) and is
//     populated only through RegisterAdjacency, one direction per call.
//   - Separate sync.RWMutex for nodes (muNodes) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)   // O(n)
//
//	// Nodes
//	NodeCount() int                                         // O(1)
//	NodeAt(i int) (*Node, error)                            // O(1)
//	Nodes() []*Node                                         // O(V)
//	SetPosition(i int, p orb.Point) error                   // O(1)
//	DegreeSum() int                                         // O(V)
//
//	// Edges & adjacency
//	AddEdge(from, to int) (*Edge, error)                    // O(1)†
//	EdgeAt(id int) (*Edge, error)                           // O(1)
//	Edges() []*Edge                                         // O(E)
//	EdgeCount() int                                         // O(1)
//	SetEdgeConf(id int, conf *EdgeConf) error               // O(1)
//	AdjacencyContains(i, k int) bool                        // O(1)
//	RegisterAdjacency(i, k int) error                       // O(1)
//	Neighbors(i int) ([]int, error)                         // O(d·log d)
//	Connect(from, to int) (*Edge, error)                    // O(1)†, edge + both directions + degrees
//	TruncateEdges(k int) error                              // O(E-k), drops edges ≥ k and their adjacency
//
//	// Diagnostics
//	Stats() *GraphStats                                     // O(V)
//
// † amortized slice append.
//
// Degree counters are plain fields on *Node; the interconnection phase is
// their single writer and must not run concurrently with other mutators.
//
// Example:
//
//	g, _ := core.NewGraph(3)
//	e, _ := g.AddEdge(1, 0)
//	_ = g.RegisterAdjacency(1, 0)
//	_ = g.RegisterAdjacency(0, 1)
//	fmt.Println(e.ID, g.AdjacencyContains(0, 1)) // 0 true
package core
