// Fixed-topology factories. Each emits edges in a stable documented order
// and wraps failures with the factory name for context.
package builder

import (
	"fmt"

	"github.com/katalvlaran/zagreb/core"
)

// Minimum sizes the canonical topologies admit.
const (
	minCompleteNodes  = 1
	minCycleNodes     = 3
	minPathNodes      = 2
	minStarNodes      = 2
	minWheelNodes     = 4
	minBipartitePart  = 1
	petersenNodeCount = 10
)

// Complete builds the complete graph K_n (n ≥ 1).
// Edge order: (0,1),(0,2),...,(n-2,n-1), ascending lexicographic.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	g := core.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Cycle builds the cycle C_n (n ≥ 3).
// Edge order: i → (i+1) mod n for i = 0..n-1.
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	g := core.New(n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if err := g.AddEdge(i, j); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, j, err)
		}
	}

	return g, nil
}

// Path builds the path P_n (n ≥ 2) with endpoints 0 and n-1.
// Edge order: (0,1),(1,2),...,(n-2,n-1).
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	g := core.New(n)
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
		}
	}

	return g, nil
}

// Star builds the star S_{n-1} (n ≥ 2) with center 0 and leaves 1..n-1.
// Edge order: (0,1),(0,2),...,(0,n-1).
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	g := core.New(n)
	for leaf := 1; leaf < n; leaf++ {
		if err := g.AddEdge(0, leaf); err != nil {
			return nil, fmt.Errorf("Star: AddEdge(0,%d): %w", leaf, err)
		}
	}

	return g, nil
}

// Wheel builds the wheel W_n (n ≥ 4): the cycle on vertices 1..n-1 plus a
// hub 0 adjacent to every rim vertex.
// Edge order: rim ring first, then spokes (0,1)..(0,n-1).
// Complexity: O(n).
func Wheel(n int) (*core.Graph, error) {
	if n < minWheelNodes {
		return nil, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
	}
	g := core.New(n)
	rim := n - 1
	for i := 0; i < rim; i++ {
		u, v := 1+i, 1+(i+1)%rim
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("Wheel: AddEdge(%d,%d): %w", u, v, err)
		}
	}
	for v := 1; v < n; v++ {
		if err := g.AddEdge(0, v); err != nil {
			return nil, fmt.Errorf("Wheel: AddEdge(0,%d): %w", v, err)
		}
	}

	return g, nil
}

// CompleteBipartite builds K_{n1,n2} (n1, n2 ≥ 1) with the left part
// 0..n1-1 and the right part n1..n1+n2-1.
// Edge order: for each left vertex in ascending order, all right vertices
// in ascending order.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) (*core.Graph, error) {
	if n1 < minBipartitePart || n2 < minBipartitePart {
		return nil, fmt.Errorf("CompleteBipartite: parts (%d,%d) < min=%d: %w",
			n1, n2, minBipartitePart, ErrTooFewVertices)
	}
	g := core.New(n1 + n2)
	for i := 0; i < n1; i++ {
		for j := n1; j < n1+n2; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("CompleteBipartite: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// petersenEdges is the canonical 15-edge construction: outer pentagon,
// spokes, and the inner pentagram.
var petersenEdges = [15][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // outer pentagon
	{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}, // spokes
	{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}, // inner pentagram
}

// Petersen builds the canonical Petersen graph: 10 vertices, 15 edges,
// 3-regular, girth 5. Construction cannot fail.
// Complexity: O(1).
func Petersen() *core.Graph {
	g := core.New(petersenNodeCount)
	for _, e := range petersenEdges {
		// Edges are within range and loop-free by construction.
		_ = g.AddEdge(e[0], e[1])
	}

	return g
}
