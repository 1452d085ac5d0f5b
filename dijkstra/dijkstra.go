// Package dijkstra implements Dijkstra's shortest-path algorithm on router topologies.
//
// Notes on implementation choices:
//
//   - Incidence lists are built once from the edge catalog (O(E)); negative
//     or NaN weights fail fast at that point.
//   - Any link with weight ≥ InfEdgeThreshold is an impassable “wall”.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - “Lazy” decrease-key: duplicates are pushed into the heap and stale entries ignored.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopo/core"
)

// Dijkstra computes shortest distances from Options.Source to all other
// nodes of g.
//
// Returns:
//
//   - dist: map from node index to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u;
//     unreachable nodes and the source map to -1.
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be set (ErrEmptySource).
//  3. Source must be a node of g (ErrVertexNotFound).
//  4. No link weight may be negative or NaN (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[int]float64, map[int]int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.Source == noSource {
		return nil, nil, ErrEmptySource
	}
	n := g.NodeCount()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d of %d", ErrVertexNotFound, cfg.Source, n)
	}

	// 3) Incidence lists with fail-fast weight scan
	adj := make([][]arc, n)
	for _, e := range g.Edges() {
		w := cfg.EdgeWeight(e)
		if w < 0 || math.IsNaN(w) {
			return nil, nil, fmt.Errorf("%w: edge %d (%d–%d) weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, w)
		}
		adj[e.From] = append(adj[e.From], arc{to: e.To, w: w})
		adj[e.To] = append(adj[e.To], arc{to: e.From, w: w})
	}

	// 4) Run
	r := &runner{
		options: cfg,
		adj:     adj,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	// 5) Materialize maps
	dist := make(map[int]float64, n)
	for v, d := range r.dist {
		dist[v] = d
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[int]int, n)
	for v, p := range r.prev {
		prev[v] = p
	}

	return dist, prev, nil
}

// PathTo rebuilds the node sequence source → dest from a predecessor map.
// Returns nil if dest was not reached or if the chain from dest never
// arrives at source (prev came from a different source).
func PathTo(prev map[int]int, source, dest int) []int {
	path := []int{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok || p == noSource || len(path) > len(prev) {
			return nil
		}
		cur = p
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// arc is one direction of an undirected link in the incidence lists.
type arc struct {
	to int
	w  float64
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options
	adj     [][]arc
	dist    []float64 // best distance from Source
	prev    []int     // predecessor on the shortest path, noSource if none
	visited []bool    // distance finalized
	pq      nodePQ
}

// init sets every distance to +Inf and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = noSource
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinalized node and relaxes
// its links until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve distances to every neighbor of the finalized node u.
func (r *runner) relax(u int) {
	for _, a := range r.adj[u] {
		if a.w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + a.w
		if newDist > r.options.MaxDistance || newDist >= r.dist[a.to] {
			continue
		}
		r.dist[a.to] = newDist
		r.prev[a.to] = u
		heap.Push(&r.pq, &nodeItem{id: a.to, dist: newDist})
	}
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
