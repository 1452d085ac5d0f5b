// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng             = nil          (attachment draws need WithSeed/WithRand/WithSource)
//   • src             = nil          (placement/bandwidth need WithSeed/WithSource)
//   • logger          = zap.NewNop()
//   • maxDrawAttempts = defaultMaxDrawAttempts
//   • observer        = no-op

package builder

import (
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Uniform draws in [0,1) for the preferential attachment walk.
	rng UniformSource
	// Bit source for gonum distributions (placement, bandwidth).
	src rand.Source
	// Structured logger; never nil after resolution.
	logger *zap.Logger
	// Upper bound on rejected+accepted draws spent on a single edge.
	maxDrawAttempts int
	// Receives interconnection counters after a successful run.
	observer func(InterconnectStats)
}

// defaultMaxDrawAttempts bounds the reject-and-redraw loop per edge.
const defaultMaxDrawAttempts = 1 << 20

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:             nil,
		src:             nil,
		logger:          zap.NewNop(),
		maxDrawAttempts: defaultMaxDrawAttempts,
		observer:        func(InterconnectStats) {},
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// intn returns a uniform integer in [0,n) from the configured bit source.
// Caller guarantees cfg.src != nil and n > 0.
func (c builderConfig) intn(n int) int {
	return rand.New(c.src).Intn(n)
}
