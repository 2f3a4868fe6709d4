// Dual-mode k-connectivity: one entry point, two named strategies.
package connectivity

import (
	"github.com/katalvlaran/zagreb/classify"
	"github.com/katalvlaran/zagreb/core"
)

// IsKConnected reports whether g is k-vertex-connected, dispatching to the
// strategy named by mode. Complete graphs are answered directly — they are
// (n-1)-connected but not n-connected — bypassing both algorithms.
func IsKConnected(g *core.Graph, k int, mode Mode) bool {
	if classify.IsComplete(g) {
		return k <= g.VertexCount()-1
	}
	if mode == ModeExact {
		return IsKConnectedExact(g, k)
	}

	return IsKConnectedApprox(g, k)
}

// IsKConnectedApprox is the heuristic checker: necessary conditions first,
// classifier shortcuts for known shapes, then an edge-density threshold
// and finally a Zagreb-index ratio rule. Both rules are empirical — they
// trade certainty for speed and may disagree with ModeExact on some
// graphs, which is intentional.
// Complexity: O(V) beyond the classifier scans.
func IsKConnectedApprox(g *core.Graph, k int) bool {
	n := g.VertexCount()
	if k > n-1 {
		return false
	}
	// Necessary condition: every vertex needs at least k neighbors.
	if g.MinDegree() < k {
		return false
	}
	if k == 1 {
		return IsConnected(g)
	}

	// Hard-coded answers for the recognized shapes.
	if classify.IsComplete(g) {
		return k <= n-1
	}
	if classify.IsCycle(g) {
		return k <= 2
	}
	if classify.IsPath(g) {
		return k <= 1
	}
	if classify.IsStar(g) {
		return k <= 1
	}

	// Density rule: graphs with at least (n-1)k/2 + 1 edges are usually
	// k-connected.
	if g.EdgeCount() >= (n-1)*k/2+1 {
		return true
	}

	// Zagreb ratio rule: a high index relative to the edge count suggests
	// the degree mass is spread widely enough for k-connectivity.
	z1 := g.FirstZagrebIndex()

	return float64(z1)/float64(g.EdgeCount()) >= float64(k)*g.AverageDegree()
}

// IsKConnectedExact is the Menger's-theorem checker: after the same
// necessary conditions and shape shortcuts, it verifies that every
// unordered vertex pair admits at least k internally vertex-disjoint
// paths. Reserved for small and medium graphs.
// Complexity: O(V²) DisjointPaths invocations.
func IsKConnectedExact(g *core.Graph, k int) bool {
	n := g.VertexCount()
	if k > n-1 {
		return false
	}
	if g.MinDegree() < k {
		return false
	}
	if classify.IsComplete(g) {
		return k <= n-1
	}
	if k == 1 {
		return IsConnected(g)
	}
	if classify.IsCycle(g) {
		return k <= 2
	}

	for s := 0; s < n; s++ {
		for t := s + 1; t < n; t++ {
			if DisjointPaths(g, s, t) < k {
				return false
			}
		}
	}

	return true
}
