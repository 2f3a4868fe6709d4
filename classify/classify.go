package classify

import "github.com/katalvlaran/zagreb/core"

// degreeOf reads Degree for an id known to be in range.
func degreeOf(g *core.Graph, v int) int {
	d, _ := g.Degree(v)
	return d
}

// IsComplete reports whether g is the complete graph K_n: every vertex has
// degree n-1 and the edge count equals n(n-1)/2.
// Graphs with n ≤ 1 are trivially complete.
// Complexity: O(V).
func IsComplete(g *core.Graph) bool {
	n := g.VertexCount()
	if n <= 1 {
		return true
	}
	for v := 0; v < n; v++ {
		if degreeOf(g, v) != n-1 {
			return false
		}
	}

	// Cross-check the maintained edge count against the closed form.
	return g.EdgeCount() == n*(n-1)/2
}

// IsCycle reports whether g carries the degree signature of the cycle C_n:
// every vertex has degree exactly 2 and the edge count equals the vertex
// count. See the package doc for the disjoint-union caveat.
// Complexity: O(V).
func IsCycle(g *core.Graph) bool {
	return g.MinDegree() == 2 && g.MaxDegree() == 2 && g.EdgeCount() == g.VertexCount()
}

// IsPath reports whether g carries the degree signature of the path P_n:
// n-1 edges, exactly two vertices of degree 1, and n-2 vertices of degree 2.
// See the package doc for the disjoint-union caveat.
// Complexity: O(V).
func IsPath(g *core.Graph) bool {
	n := g.VertexCount()
	if g.EdgeCount() != n-1 {
		return false
	}
	ones, twos := 0, 0
	for v := 0; v < n; v++ {
		switch degreeOf(g, v) {
		case 1:
			ones++
		case 2:
			twos++
		}
	}

	return ones == 2 && twos == n-2
}

// IsStar reports whether g is the star S_{n-1}: exactly one center of
// degree n-1 and n-1 leaves of degree 1. False for n ≤ 1.
// Complexity: O(V).
func IsStar(g *core.Graph) bool {
	n := g.VertexCount()
	if n <= 1 {
		return false
	}
	leaves, centers := 0, 0
	for v := 0; v < n; v++ {
		d := degreeOf(g, v)
		if d == 1 {
			leaves++
		}
		if d == n-1 {
			centers++
		}
	}

	return leaves == n-1 && centers == 1
}
