// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_barabasi_albert.go - implementation of the BarabasiAlbert(m) constructor.
//
// Canonical model (router-level Barabási–Albert, incremental growth):
//   - Seed: nodes 0..m form a clique; every pair (i,j), i<j, gets one edge.
//   - Growth: nodes m+1..N-1 join in index order; each attaches m edges to
//     distinct, already-joined nodes drawn with probability out-degree/Σ.
//   - A joining node's own degrees are bumped by m in one step after its
//     m edges are placed; it is never a valid target for its own edges.
//
// Contract:
//   - m ≥ 1 and N > m (else ErrTooFewVertices); rng required (else ErrNeedRandSource).
//   - g must not carry edges yet (else ErrConstructFailed).
//   - On failure every edge, adjacency entry and degree bump made by the run
//     is rolled back; g is left exactly as it was passed in.
//   - No self-loops, no duplicate links: rejected draws are redrawn.
//   - Σ out-degree == degreeSum at every selection and == 2·|E| at the end.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(m²) seed + O(N·m·N) worst-case inverse-CDF walks.
//   - Space: O(N) for the degree snapshot.
//
// Determinism:
//   - Stable join order (i asc) and stable walk order (k asc).
//   - Identical draw sequences (rejected draws included) ⇒ identical edge sets.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtopo/core"
)

// InterconnectStats reports counters of one interconnection run.
type InterconnectStats struct {
	SeedEdges        int // edges of the initial clique
	GrowthEdges      int // edges added by joining nodes
	Draws            int // uniform draws consumed, rejected ones included
	SelfRejects      int // draws that landed on the joining node itself
	DuplicateRejects int // draws that landed on an existing neighbor
	FallbackPicks    int // walks that ended without a breaking index
	DegreeSum        int // final Σ out-degree
}

// attachState is the per-run mutable state of the interconnection phase.
// It lives for exactly one call and is owned by that call.
type attachState struct {
	g         *core.Graph
	nodes     []*core.Node
	degrees   []float64 // out-degree snapshot used by the weighted walk
	degreeSum int       // Σ out-degree over joined nodes
	log       *zap.Logger
	stats     InterconnectStats
}

// BarabasiAlbert returns a Constructor that wires the already-placed nodes
// of g by preferential attachment with m edges per joining node.
func BarabasiAlbert(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		_, err := interconnect(g, m, cfg)
		return err
	}
}

// Interconnect is a thin helper: resolve cfg and run BarabasiAlbert(m)
// against an existing g, returning the run counters.
func Interconnect(g *core.Graph, m int, opts ...BuilderOption) (InterconnectStats, error) {
	cfg := newBuilderConfig(opts...)
	if g == nil {
		return InterconnectStats{}, fmt.Errorf("%s: nil graph: %w", MethodBarabasiAlbert, ErrConstructFailed)
	}

	return interconnect(g, m, cfg)
}

// interconnect validates, builds the seed clique, runs the growth loop and
// checks the final degree-sum invariant.
func interconnect(g *core.Graph, m int, cfg builderConfig) (InterconnectStats, error) {
	// 1) Validate parameters early (zero side-effects on invalid input).
	if err := validateMin(MethodBarabasiAlbert, "m", m, MinEdgesPerNode); err != nil {
		return InterconnectStats{}, err
	}
	n := g.NodeCount()
	if n <= m {
		return InterconnectStats{}, fmt.Errorf("%s: n=%d must exceed m=%d: %w",
			MethodBarabasiAlbert, n, m, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return InterconnectStats{}, fmt.Errorf("%s: %w", MethodBarabasiAlbert, ErrNeedRandSource)
	}
	if c := g.EdgeCount(); c != 0 {
		return InterconnectStats{}, fmt.Errorf("%s: graph already has %d edges: %w",
			MethodBarabasiAlbert, c, ErrConstructFailed)
	}

	st := &attachState{
		g:     g,
		nodes: g.Nodes(),
		log:   cfg.logger.Named("ba"),
	}
	st.log.Info("interconnecting nodes", zap.Int("nodes", n), zap.Int("m", m))

	// 2) Seed, grow and check; undo everything on failure.
	saved := snapshotDegrees(st.nodes)
	if err := st.run(m, cfg); err != nil {
		if rbErr := st.rollback(saved); rbErr != nil {
			return InterconnectStats{}, fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		st.log.Warn("interconnect rolled back", zap.Error(err))

		return InterconnectStats{}, err
	}

	st.stats.DegreeSum = st.degreeSum
	st.log.Info("done interconnecting",
		zap.Int("edges", g.EdgeCount()),
		zap.Int("draws", st.stats.Draws),
		zap.Int("duplicate_rejects", st.stats.DuplicateRejects))
	cfg.observer(st.stats)

	return st.stats, nil
}

// run builds the seed clique over nodes 0..m, grows nodes m+1..n-1 and
// checks Σ out-degree == 2·|E|.
func (st *attachState) run(m int, cfg builderConfig) error {
	if err := st.seedClique(m); err != nil {
		return err
	}
	if err := st.grow(m, cfg); err != nil {
		return err
	}
	if want := 2 * st.g.EdgeCount(); st.degreeSum != want {
		return fmt.Errorf("%s: degree sum %d != 2·|E| = %d: %w",
			MethodBarabasiAlbert, st.degreeSum, want, ErrConstructFailed)
	}

	return nil
}

// degreePair holds one node's (in, out) degree.
type degreePair [2]int

// snapshotDegrees copies the current degrees of nodes.
func snapshotDegrees(nodes []*core.Node) []degreePair {
	out := make([]degreePair, len(nodes))
	for i, nd := range nodes {
		out[i] = degreePair{nd.InDegree(), nd.OutDegree()}
	}

	return out
}

// rollback drops every edge added by the run and restores saved degrees.
// The run only starts on an edgeless graph, so truncating to 0 is exact.
func (st *attachState) rollback(saved []degreePair) error {
	for i, nd := range st.nodes {
		nd.SetInDegree(saved[i][0])
		nd.SetOutDegree(saved[i][1])
	}
	st.degreeSum = 0
	if err := st.g.TruncateEdges(0); err != nil {
		return fmt.Errorf("%s: %w", MethodBarabasiAlbert, err)
	}

	return nil
}

// seedClique connects every pair of nodes 0..m and initializes the snapshot.
func (st *attachState) seedClique(m int) error {
	st.degreeSum = 0
	for i := 0; i <= m; i++ {
		for j := i + 1; j <= m; j++ {
			if err := st.link(i, j); err != nil {
				return err
			}
			bumpDegree(st.nodes[i], 1)
			bumpDegree(st.nodes[j], 1)
			st.degreeSum += 2
			st.stats.SeedEdges++
		}
	}

	// Snapshot mirrors every node's out-degree; not-yet-joined nodes are 0.
	st.degrees = make([]float64, len(st.nodes))
	for i, node := range st.nodes {
		st.degrees[i] = float64(node.OutDegree())
	}

	return nil
}

// grow attaches every node beyond the seed clique with m edges.
func (st *attachState) grow(m int, cfg builderConfig) error {
	for i := m + 1; i < len(st.nodes); i++ {
		for added := 0; added < m; added++ {
			k, err := st.pick(i, added, cfg)
			if err != nil {
				return err
			}
			if err = st.link(i, k); err != nil {
				return err
			}
			bumpDegree(st.nodes[k], 1)
			st.degreeSum++
			st.degrees[k]++
			st.stats.GrowthEdges++
		}

		// Node i joins with out-degree m in one step.
		bumpDegree(st.nodes[i], m)
		st.degreeSum += m
		st.degrees[i] += float64(m)

		if i%progressEvery == 0 {
			st.log.Debug("growth progress", zap.Int("node", i), zap.Int("degree_sum", st.degreeSum))
		}
	}

	return nil
}

// pick draws until it finds a target k for source i that is neither i
// itself nor already linked to i.
func (st *attachState) pick(i, added int, cfg builderConfig) (int, error) {
	// Joined nodes are 0..i-1 and `added` of them are already taken.
	if i-added <= 0 {
		return -1, fmt.Errorf("%s: node %d has no free targets: %w", MethodBarabasiAlbert, i, ErrConstructFailed)
	}

	for attempt := 0; attempt < cfg.maxDrawAttempts; attempt++ {
		p := cfg.rng.Float64()
		st.stats.Draws++
		if err := sourceErr(cfg.rng); err != nil {
			return -1, fmt.Errorf("%s: node %d: %w", MethodBarabasiAlbert, i, err)
		}

		k := st.walk(p)
		if k == i {
			st.stats.SelfRejects++
			continue
		}
		// No multiple links between two nodes.
		if st.g.AdjacencyContains(i, k) {
			st.stats.DuplicateRejects++
			continue
		}

		return k, nil
	}

	return -1, fmt.Errorf("%s: node %d: no target after %d draws: %w",
		MethodBarabasiAlbert, i, cfg.maxDrawAttempts, ErrConstructFailed)
}

// walk maps a uniform p to the first index whose cumulative weight reaches p.
// If rounding leaves the walk without a breaking index, the last index with
// a positive weight is returned.
func (st *attachState) walk(p float64) int {
	sum := float64(st.degreeSum)
	last := 0.0
	fallback := -1
	for k, d := range st.degrees {
		if d > 0 {
			fallback = k
		}
		last += d / sum
		if p <= last {
			return k
		}
	}
	st.stats.FallbackPicks++

	return fallback
}

// link creates edge i→k and registers it in both adjacency directions.
func (st *attachState) link(i, k int) error {
	if _, err := st.g.AddEdge(i, k); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodBarabasiAlbert, i, k, err)
	}
	if err := st.g.RegisterAdjacency(i, k); err != nil {
		return fmt.Errorf("%s: RegisterAdjacency(%d,%d): %w", MethodBarabasiAlbert, i, k, err)
	}
	if err := st.g.RegisterAdjacency(k, i); err != nil {
		return fmt.Errorf("%s: RegisterAdjacency(%d,%d): %w", MethodBarabasiAlbert, k, i, err)
	}

	return nil
}

// bumpDegree increments both degree counters of node by d.
func bumpDegree(node *core.Node, d int) {
	node.SetInDegree(node.InDegree() + d)
	node.SetOutDegree(node.OutDegree() + d)
}
