package hamilton

import (
	"math"

	"github.com/katalvlaran/zagreb/core"
)

// ZagrebUpperBound evaluates the Theorem 3 bound on the first Zagreb
// index: (n-β)·Δ² + e²/β + (√(n-β) − √δ)²·e, with β taken from the
// greedy IndependenceNumber. Unlike the Hamiltonicity thresholds this
// bound is kept in floating point; e²/β divides exactly.
//
// Returned value satisfies FirstZagrebIndex(g) ≤ ZagrebUpperBound(g)
// whenever β ≥ 1, i.e. g has at least one vertex.
func ZagrebUpperBound(g *core.Graph) float64 {
	beta := IndependenceNumber(g)
	if beta == 0 {
		return 0
	}

	n := g.VertexCount()
	e := g.EdgeCount()
	delta := g.MinDegree()
	deltaMax := g.MaxDegree()

	part1 := float64((n - beta) * deltaMax * deltaMax)
	part2 := float64(e*e) / float64(beta)
	part3 := math.Sqrt(float64(n-beta)) - math.Sqrt(float64(delta))
	return part1 + part2 + part3*part3*float64(e)
}
