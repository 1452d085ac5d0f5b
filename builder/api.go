// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - No partial graphs: any constructor error discards g and returns nil.
//
// AI-Hints (practical):
//   - Compose PlaceNodes → BarabasiAlbert → AssignBandwidth; Generate does exactly that.
//   - Use WithSeed(...) to freeze every stochastic path.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph of n nodes with graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with the context
// "BuildGraph: %w" and nil is returned in place of the graph.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: n=%d: %w: %w", MethodBuildGraph, n, ErrTooFewVertices, err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			// g is dropped here; a half-built topology is never returned.
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}
