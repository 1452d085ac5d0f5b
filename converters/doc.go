// Package converters provides two-way adapters between core.Graph and
// gonum/graph, so router topologies can be handed to gonum's algorithm
// suite (components, paths, centrality) and read back.
//
//   - ToGonum:         core.Graph → *simple.UndirectedGraph (node ID = router index).
//   - ToWeightedGonum: same, weighted by a per-link function (Length by default).
//   - FromGonum:       graph.Undirected → core.Graph; node IDs must be dense 0..n-1.
package converters
