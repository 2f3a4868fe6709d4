// Package core defines the Graph adjacency store and its basic metrics:
// degrees, edge counts, and the first Zagreb index.
//
// What:
//
//   - Graph is a simple undirected graph over a fixed vertex set [0, n).
//   - Mutation happens only through AddEdge; insertion of an existing edge
//     is an idempotent no-op, and there is no deletion or resize operation.
//   - Read-only queries (Degree, MinDegree, MaxDegree, FirstZagrebIndex,
//     Neighbors, AdjacencySets) never mutate state.
//
// Why:
//
//   - The first Zagreb index Σ deg(v)² is the defining numeric invariant
//     consumed by every heuristic in the connectivity and hamilton packages.
//   - A fixed vertex universe keeps every operation total: degenerate inputs
//     (n = 0) yield documented defaults instead of failures.
//
// Concurrency:
//
//   - Graph carries no internal synchronization. Serialize mutation
//     externally; once construction is complete, read-only queries may be
//     shared freely across goroutines.
//
// Errors:
//
//   - ErrInvalidVertex: a supplied vertex id is outside [0, n).
//   - ErrSelfLoop: AddEdge(u, u) was attempted.
//
// These are the only two error kinds in the whole library core; every other
// operation is a total function over a validly constructed Graph.
package core
