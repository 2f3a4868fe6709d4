// Package analysis bundles the library's invariants into a single
// serializable report.
//
// What:
//
//   - Result: every headline invariant of a graph — order, size, first
//     Zagreb index, degree extremes, Hamiltonicity estimates, greedy
//     independence number and the Zagreb upper bound — with stable
//     snake_case JSON tags.
//   - Analyze: one pass over a core.Graph producing a Result under the
//     chosen connectivity mode.
//   - Result.EfficiencyRatio: the index as a percentage of its upper
//     bound, a density figure of merit.
//   - WriteFile / ReadFile: indented-JSON persistence for reports.
//
// Complexity: dominated by the Hamiltonicity checks; everything else in
// Analyze is O(V + E).
package analysis
