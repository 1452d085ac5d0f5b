// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed, WithSource or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible generation: one seeded stream feeds
//     placement, attachment draws and bandwidth in that order.
//   • WithRand overrides ONLY the attachment draw; combine with
//     NewRecordingSource/NewReplaySource to replay a run draw-for-draw.

package builder

import (
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithSeed creates one seeded PCG stream shared by every stochastic phase.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		src := rand.NewSource(uint64(seed))
		c.src = src
		c.rng = rand.New(src)
	}
}

// WithSource uses src for every stochastic phase. Panics on nil.
func WithSource(src rand.Source) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.src = src
		c.rng = rand.New(src)
	}
}

// WithRand sets the uniform source used by the preferential attachment draw.
// Placement and bandwidth keep their own source. Panics on nil.
func WithRand(r UniformSource) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithLogger attaches a structured logger. Panics on nil; pass zap.NewNop()
// to silence output explicitly.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithMaxDrawAttempts bounds the reject-and-redraw loop spent on one edge
// (and on one node position during placement). Panics if n <= 0.
func WithMaxDrawAttempts(n int) BuilderOption {
	if n <= 0 {
		panic("builder: WithMaxDrawAttempts(n<=0)")
	}
	return func(c *builderConfig) {
		c.maxDrawAttempts = n
	}
}

// WithInterconnectObserver registers fn to receive interconnection counters
// once the attachment phase completes successfully. Nil is ignored.
func WithInterconnectObserver(fn func(InterconnectStats)) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.observer = fn
		}
	}
}
