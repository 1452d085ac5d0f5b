// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on router topologies.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes. By default the cost of a link is its geometric
// Length (planar distance between its endpoints); WithEdgeWeight swaps in
// any other non-negative metric such as hop count or inverse bandwidth.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |links|
//	– Space: O(V + E)
//	   • O(V + E) for the incidence lists built up front.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:           index of the starting node (required).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are skipped.
//	– InfEdgeThreshold: links with weight >= this threshold are treated as impassable.
//	– EdgeWeight:       link cost function; defaults to Edge.Length.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source was set.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source index is out of range.
//	– ErrNegativeWeight  if a negative or NaN link weight is detected.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvtopo/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source node was configured.
	ErrEmptySource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source index is outside the graph.
	ErrVertexNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative (or NaN) link weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all links (including zero-weight ones) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// noSource marks an unset Options.Source.
const noSource = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node index (must be set and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore. Default +Inf.
// InfEdgeThreshold – treat links with weight ≥ this threshold as impassable. Default +Inf.
// EdgeWeight       – link cost; defaults to the geometric Length.
type Options struct {
	Source           int
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	EdgeWeight       func(e *core.Edge) float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node index. Must be called.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Panics on negative or NaN values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which links
// are considered non-traversable. Panics unless threshold > 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithEdgeWeight replaces the link cost function. Nil is ignored.
func WithEdgeWeight(fn func(e *core.Edge) float64) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeWeight = fn
		}
	}
}

// LengthWeight is the default link cost: the planar distance between endpoints.
func LengthWeight(e *core.Edge) float64 { return e.Length }

// HopWeight counts every link as 1, turning Dijkstra into hop distance.
func HopWeight(_ *core.Edge) float64 { return 1 }

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:           unset.
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no links treated as impassable).
//   - EdgeWeight:       LengthWeight.
func DefaultOptions() Options {
	return Options{
		Source:           noSource,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		EdgeWeight:       LengthWeight,
	}
}
