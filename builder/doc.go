// Package builder provides deterministic factories for the canonical
// topologies exercised by the classifier and theorem packages: complete
// graphs, cycles, paths, stars, wheels, complete bipartite graphs, the
// Petersen graph, and seeded sparse random graphs.
//
// Design contract (strict):
//
//   - Every factory validates its parameters early and returns sentinel
//     errors (ErrTooFewVertices, ErrInvalidProbability); it never panics.
//   - Edges are emitted in a stable, documented order, so the same inputs
//     always produce identical graphs.
//   - Stochastic factories take an explicit seed; determinism holds per
//     (n, p, seed).
//
// The factories exist so tests, benchmarks, examples and the CLI construct
// fixtures through one audited code path instead of ad-hoc edge loops.
package builder
