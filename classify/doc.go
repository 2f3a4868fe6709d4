// Package classify provides structural fingerprint predicates over a
// core.Graph: complete, cycle, path, star, and Petersen detection.
//
// What:
//
//   - Each predicate is a deterministic, read-only boolean over the current
//     adjacency store, used both standalone and as a fast-path shortcut by
//     the connectivity and hamilton packages.
//
// Known approximations (intentional, documented rather than fixed):
//
//   - IsCycle and IsPath match on the global degree-sequence signature only
//     and do not verify single-component structure: a disjoint union of
//     smaller cycles (or paths) whose degree sequence and edge count match
//     will be misclassified. Callers needing a certainty of connectedness
//     should combine these with connectivity.IsConnected.
//   - IsPetersen is a necessary-condition fingerprint (order, size,
//     3-regularity, girth ≥ 5 via triangle/quadrilateral scans), not an
//     isomorphism test: any girth-≥5 3-regular graph on 10 vertices and
//     15 edges matches.
package classify
