package hamilton

import (
	"math"

	"github.com/katalvlaran/zagreb/classify"
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
)

// IsLikelyHamiltonian reports whether g satisfies a sufficient condition
// for containing a Hamiltonian cycle. The mode selects how the required
// 2-connectivity is verified.
//
// Decision order: shape shortcuts (complete, cycle, star, Petersen),
// 2-connectivity gate, Dirac's theorem (δ ≥ n/2), then the Zagreb-index
// threshold of Theorem 1. A false result is inconclusive, not a proof of
// non-Hamiltonicity.
func IsLikelyHamiltonian(g *core.Graph, mode connectivity.Mode) bool {
	n := g.VertexCount()
	if n < 3 {
		return false
	}

	if classify.IsComplete(g) {
		return true
	}
	if classify.IsCycle(g) {
		return true
	}
	if classify.IsStar(g) && n > 3 {
		return false
	}
	// known non-Hamiltonian graph
	if classify.IsPetersen(g) {
		return false
	}

	const k = 2
	if !connectivity.IsKConnected(g, k, mode) {
		return false
	}

	if g.MinDegree() >= n/2 {
		return true
	}

	return g.FirstZagrebIndex() >= zagrebThreshold(g, k, k+1)
}

// IsLikelyTraceable reports whether g satisfies a sufficient condition
// for containing a Hamiltonian path.
//
// Decision order: IsLikelyHamiltonian (every Hamiltonian graph is
// traceable), shape shortcuts (complete, path, star, Petersen),
// connectivity gate, the Dirac-like condition δ ≥ (n-1)/2, then the
// Zagreb-index threshold of Theorem 2 for n ≥ 9. For n < 9, where the
// theorem does not apply, only the degree condition decides.
func IsLikelyTraceable(g *core.Graph, mode connectivity.Mode) bool {
	n := g.VertexCount()
	if n < 2 {
		return false
	}

	if IsLikelyHamiltonian(g, mode) {
		return true
	}

	if classify.IsComplete(g) {
		return true
	}
	if classify.IsPath(g) {
		return true
	}
	if classify.IsStar(g) {
		return true
	}
	// non-Hamiltonian yet traceable
	if classify.IsPetersen(g) {
		return true
	}

	const k = 1
	if !connectivity.IsKConnected(g, k, mode) {
		return false
	}

	if g.MinDegree() >= (n-1)/2 {
		return true
	}
	if n < 9 {
		return false
	}

	return g.FirstZagrebIndex() >= zagrebThreshold(g, k+1, k+2)
}

// zagrebThreshold evaluates the shared threshold shape of Theorems 1
// and 2: (n-r-1)·Δ² + ⌊e²/d⌋ + ⌊(√(n-r-1) − √δ)²·e⌋, where r is the
// order reduction and d the size divisor of the theorem in use. The
// float term truncates toward zero.
func zagrebThreshold(g *core.Graph, r, d int) int {
	n := g.VertexCount()
	e := g.EdgeCount()
	delta := g.MinDegree()
	deltaMax := g.MaxDegree()

	part1 := (n - r - 1) * deltaMax * deltaMax
	part2 := e * e / d
	part3 := math.Sqrt(float64(n-r-1)) - math.Sqrt(float64(delta))
	return part1 + part2 + int(part3*part3*float64(e))
}
