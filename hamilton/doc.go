// Package hamilton estimates Hamiltonicity, traceability, the
// independence number, and a Zagreb-index upper bound for a core.Graph.
//
// The number-theoretic criteria follow "The First Zagreb Index and Some
// Hamiltonian Properties of Graphs" (Rao Li, 2024): a graph whose first
// Zagreb index clears a threshold built from its order, size, minimum
// and maximum degree is Hamiltonian (Theorem 1) or traceable
// (Theorem 2); the independence number bounds the index from above
// (Theorem 3).
//
// What:
//
//   - IsLikelyHamiltonian: shape shortcuts (complete, cycle, star,
//     Petersen), then 2-connectivity, Dirac's condition, then Theorem 1.
//   - IsLikelyTraceable: shape shortcuts, 1-connectivity, the Dirac-like
//     (n-1)/2 condition, then Theorem 2 for n ≥ 9.
//   - IndependenceNumber: greedy minimum-remaining-degree approximation
//     of the NP-hard exact value. Always a valid independent set, so the
//     result is a lower bound on β(G).
//   - ZagrebUpperBound: Theorem 3 evaluated with the greedy β.
//
// Caveats:
//
//   - "Likely" is literal. The theorems give sufficient conditions only:
//     a false return means the criteria were inconclusive, not that the
//     graph lacks the property. Sparse Hamiltonian graphs routinely fall
//     below the thresholds.
//   - The greedy β never exceeds the true independence number, and
//     ZagrebUpperBound grows as β shrinks, so the computed bound stays a
//     valid upper bound on the index.
//
// Complexity:
//
//   - IndependenceNumber: O(V²) with the adjacency-set scan.
//   - IsLikelyHamiltonian / IsLikelyTraceable: dominated by the chosen
//     connectivity mode; the threshold arithmetic itself is O(V).
package hamilton
