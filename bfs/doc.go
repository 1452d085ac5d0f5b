// Package bfs provides breadth-first hop search over a router topology
// (core.Graph), returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → hops from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual links via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Reads a result as a broadcast wave: Layers counts routers first
//     reached per flooding round, CoverRound finds the round by which a
//     given share of routers has heard the message.
//
// Determinism
//
//	core.Graph.Neighbors returns node IDs sorted ascending and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Links|)
//
//   - Time:   O(V + E·log d)   (neighbor lists are sorted per node)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, hub,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//	path, err := res.PathTo(42)
//	half := res.CoverRound(0.5, g.NodeCount())
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any node.
//   - ErrUnreachable          from PathTo for nodes never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
