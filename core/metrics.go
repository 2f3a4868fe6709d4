// Package core: degree statistics and the first Zagreb index.
//
// All metrics are pure scans over the adjacency store and return documented
// defaults (zero) on the empty graph, so they never fail.
package core

// VertexCount returns the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.m }

// MinDegree returns the minimum vertex degree, or 0 for the empty graph.
// Complexity: O(V).
func (g *Graph) MinDegree() int {
	if g.n == 0 {
		return 0
	}
	min := len(g.adj[0])
	for v := 1; v < g.n; v++ {
		if d := len(g.adj[v]); d < min {
			min = d
		}
	}

	return min
}

// MaxDegree returns the maximum vertex degree, or 0 for the empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	max := 0
	for v := 0; v < g.n; v++ {
		if d := len(g.adj[v]); d > max {
			max = d
		}
	}

	return max
}

// FirstZagrebIndex returns Σ deg(v)² over all vertices — the graph's
// defining numeric invariant, consumed by every heuristic in the
// connectivity and hamilton packages.
// Complexity: O(V).
func (g *Graph) FirstZagrebIndex() int {
	sum := 0
	for v := 0; v < g.n; v++ {
		d := len(g.adj[v])
		sum += d * d
	}

	return sum
}

// AverageDegree returns 2·E/V, or 0 for the empty graph.
// Complexity: O(1).
func (g *Graph) AverageDegree() float64 {
	if g.n == 0 {
		return 0
	}

	return 2 * float64(g.m) / float64(g.n)
}
