// Package analysis verifies structural invariants of generated router
// topologies and condenses them into a Report.
//
// Verify fails with ErrInvariantViolation when a graph carries a self-loop,
// a duplicate link, an asymmetric adjacency entry, or a degree sum that
// differs from 2·|E|. Summarize reports counts, degree statistics, a
// power-law exponent estimate, component count, the broadcast wave from
// the hub (per-round reach and half-cover round) and hub-centered geometric
// distances. It leans on gonum (stat, topo) through
// lvtopo/converters and on the bfs and dijkstra packages.
package analysis
