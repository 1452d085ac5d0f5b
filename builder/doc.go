// Package builder generates router-level topologies by preferential
// attachment. It composes small Constructor steps over a core.Graph,
// configured through functional options, so every phase stays testable
// on its own and the whole run stays reproducible from one seed.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        create n nodes and apply constructors in order.
//     – Generate:          validate RouterBarabasiAlbertParams and run the full model.
//   - Constructors:
//     – PlaceNodes:        unique integer positions, random or heavy-tailed.
//     – BarabasiAlbert:    seed clique over 0..m, then m edges per joining node.
//     – AssignBandwidth:   one router EdgeConf per edge from a BandwidthDist.
//     – AssignBandwidthFn: same with a caller-supplied BandwidthFn.
//   - Configuration primitives:
//     – WithSeed, WithSource: one seeded stream for every stochastic phase.
//     – WithRand:          override only the attachment draw (see RecordingSource, ReplaySource).
//     – WithLogger, WithMaxDrawAttempts, WithInterconnectObserver.
//   - Bandwidth laws (BandwidthFn implementations, gonum distuv):
//     – ConstantBandwidthFn, UniformBandwidthFn, ExponentialBandwidthFn, HeavyTailedBandwidthFn.
//
// Guarantees:
//
//   - No self-loops and no duplicate links; Σ out-degree == 2·|E| after interconnection.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (errors.Is) for invalid build parameters; a failed
//     build never returns a partial graph.
//   - Same params, same seed, same options ⇒ identical topology.
//
// Example:
//
//	g, err := builder.Generate(builder.DefaultParams(), builder.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	fmt.Println(g.NodeCount(), g.EdgeCount())
package builder
