package hamilton

import "github.com/katalvlaran/zagreb/core"

// IndependenceNumber returns a greedy lower-bound approximation of the
// independence number β(G): the size of a largest set of pairwise
// non-adjacent vertices. Exact computation is NP-hard.
//
// The greedy rule picks, among the vertices still in play, one with the
// fewest remaining neighbors (lowest vertex id on ties), adds it to the
// set, and discards it together with its neighbors. The result is always
// a maximal independent set, hence β(G) ≥ IndependenceNumber(g).
//
// Complexity: O(V²) over adjacency sets.
func IndependenceNumber(g *core.Graph) int {
	n := g.VertexCount()
	if n == 0 {
		return 0
	}

	adj := g.AdjacencySets()
	remaining := make([]bool, n)
	for v := range remaining {
		remaining[v] = true
	}
	left := n

	size := 0
	for left > 0 {
		best, bestDeg := -1, 0
		for v := 0; v < n; v++ {
			if !remaining[v] {
				continue
			}
			d := 0
			for u := range adj[v] {
				if remaining[u] {
					d++
				}
			}
			if best < 0 || d < bestDeg {
				best, bestDeg = v, d
			}
		}

		size++
		remaining[best] = false
		left--
		for u := range adj[best] {
			if remaining[u] {
				remaining[u] = false
				left--
			}
		}
	}
	return size
}
