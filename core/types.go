// This file declares the Graph type, its sentinel errors, and the New
// constructor. Method implementations live in methods.go (mutation and
// neighbor access) and metrics.go (degree statistics and the Zagreb index).
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates a vertex id outside the range [0, VertexCount).
	ErrInvalidVertex = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")
)

// Graph is a simple undirected graph over the fixed vertex set [0, n).
//
// Vertices are dense integer ids assigned at construction; the adjacency
// relation is stored as one neighbor set per vertex. Invariants maintained
// by AddEdge:
//
//	symmetry:  v ∈ adj[u] ⟺ u ∈ adj[v]
//	no loops:  v ∉ adj[v]
//	m counts each undirected edge exactly once
type Graph struct {
	n   int                // number of vertices, fixed at construction
	m   int                // number of distinct undirected edges
	adj []map[int]struct{} // adj[v] = neighbor set of v
}

// New creates a graph with n vertices and no edges.
// A negative n is treated as zero, so the constructor is total.
// Complexity: O(n).
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	adj := make([]map[int]struct{}, n)
	for v := range adj {
		adj[v] = make(map[int]struct{})
	}

	return &Graph{n: n, adj: adj}
}
