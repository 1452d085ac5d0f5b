// Package lvtopo generates router-level Internet topologies with the
// Barabási–Albert preferential attachment model and lets you inspect them.
//
// What is in the box:
//
//   - core/       – fixed-size router graph: positions, degree counters,
//     edge catalog, adjacency index, RW locks.
//   - builder/    – the generation pipeline: PlaceNodes → BarabasiAlbert →
//     AssignBandwidth, composed by BuildGraph or Generate from one seed.
//   - bfs/        – hop traversal with hooks, depth limits and cancellation.
//   - dijkstra/   – geometric (or hop, or custom) shortest paths.
//   - converters/ – gonum/graph interop.
//   - analysis/   – invariant checks and summary reports.
//   - cmd/lvtopo  – the command line front end (cobra + viper + zap).
//
// Quick start:
//
//	g, err := builder.Generate(builder.DefaultParams(), builder.WithSeed(1))
//	if err != nil {
//		log.Fatal(err)
//	}
//	report, _ := analysis.Summarize(g)
//	_ = report.WriteText(os.Stdout)
package lvtopo
