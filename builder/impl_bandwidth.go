// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_bandwidth.go - implementation of the AssignBandwidth constructor.
//
// Contract:
//   - Every edge, in edge-ID order, gets exactly one EdgeConf with
//     Kind = EdgeKindRouter and a bandwidth drawn from the chosen law.
//   - 0 ≤ bwMin ≤ bwMax (else ErrOptionViolation); unknown law ⇒ ErrUnsupportedBandwidth.
//   - Stochastic laws require cfg.src (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(|E|). Space: O(1) beyond the configs.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtopo/core"
)

// AssignBandwidth returns a Constructor that sets a router EdgeConf with a
// bandwidth drawn from dist on every edge of g.
func AssignBandwidth(dist BandwidthDist, bwMin, bwMax float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		fn, err := NewBandwidthFn(dist, bwMin, bwMax)
		if err != nil {
			return err
		}
		if dist != BandwidthConst && cfg.src == nil {
			return fmt.Errorf("%s: %w", MethodAssignBandwidth, ErrNeedRandSource)
		}

		cfg.logger.Named("bandwidth").Info("assigning bandwidth",
			zap.Stringer("dist", dist),
			zap.Float64("min", bwMin),
			zap.Float64("max", bwMax),
			zap.Int("edges", g.EdgeCount()))

		return applyBandwidth(g, cfg, fn)
	}
}

// AssignBandwidthFn returns a Constructor applying a caller-supplied law.
// A nil fn is reported as ErrOptionViolation.
func AssignBandwidthFn(fn BandwidthFn) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if fn == nil {
			return fmt.Errorf("%s: nil BandwidthFn: %w", MethodAssignBandwidth, ErrOptionViolation)
		}

		return applyBandwidth(g, cfg, fn)
	}
}

// applyBandwidth walks edges in ID order and attaches one config per edge.
func applyBandwidth(g *core.Graph, cfg builderConfig, fn BandwidthFn) error {
	for id := 0; id < g.EdgeCount(); id++ {
		conf := &core.EdgeConf{Bandwidth: fn(cfg.src), Kind: core.EdgeKindRouter}
		if err := g.SetEdgeConf(id, conf); err != nil {
			return fmt.Errorf("%s: SetEdgeConf(%d): %w", MethodAssignBandwidth, id, err)
		}
	}

	return nil
}
