// Seeded stochastic factory. Deterministic per (n, p, seed).
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/zagreb/core"
)

// RandomSparse builds an Erdős–Rényi-style graph G(n, p): every unordered
// pair (i, j) with i < j receives an edge independently with probability p,
// drawn from a rand.Rand seeded with seed. Pairs are visited in ascending
// lexicographic order, so the result is deterministic per (n, p, seed).
// Returns ErrTooFewVertices for n < 1 and ErrInvalidProbability for
// p outside [0, 1].
// Complexity: O(n²).
func RandomSparse(n int, p float64, seed int64) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}

	rng := rand.New(rand.NewSource(seed))
	g := core.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("RandomSparse: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}
