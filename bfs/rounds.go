package bfs

// Broadcast view of a BFS result: depth d is the flooding round in which a
// router first hears a message injected at the start node.

// Layers returns the number of nodes first reached in each round;
// Layers()[0] is 1 (the start node) and len(Layers())-1 equals
// Eccentricity(). Returns nil for an empty result.
// Complexity: O(V).
func (r *BFSResult) Layers() []int {
	if len(r.Order) == 0 {
		return nil
	}
	layers := make([]int, r.Eccentricity()+1)
	for _, d := range r.Depth {
		layers[d]++
	}

	return layers
}

// CoverRound returns the first round after which at least frac of total
// routers have been reached, or -1 if the search never gets there
// (disconnected topology, MaxDepth cut-off, frac > 1).
// frac ≤ 0 yields round 0.
// Complexity: O(V).
func (r *BFSResult) CoverRound(frac float64, total int) int {
	if frac <= 0 {
		return 0
	}
	informed := 0
	for round, c := range r.Layers() {
		informed += c
		if float64(informed) >= frac*float64(total) {
			return round
		}
	}

	return -1
}
