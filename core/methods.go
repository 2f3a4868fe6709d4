// Package core: Graph mutation and neighbor access.
//
// AddEdge is the sole mutating operation; everything else in this file is a
// read-only view over the adjacency store. Neighbor enumeration is returned
// sorted ascending so callers observe a deterministic order regardless of
// map iteration.
package core

import "sort"

// AddEdge inserts the undirected edge (u, v).
// Returns ErrInvalidVertex if either endpoint is outside [0, VertexCount),
// ErrSelfLoop if u == v. Inserting an existing edge is an idempotent no-op.
// No mutation occurs on any error path.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrInvalidVertex
	}
	if u == v {
		return ErrSelfLoop
	}
	// Existing edge: succeed without touching counts.
	if _, ok := g.adj[u][v]; ok {
		return nil
	}
	// Insert in both directions and count the edge once.
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.m++

	return nil
}

// HasEdge reports whether the undirected edge (u, v) is present.
// Out-of-range endpoints are simply absent (no error).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of neighbors of v.
// Returns ErrInvalidVertex if v is outside [0, VertexCount).
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, ErrInvalidVertex
	}

	return len(g.adj[v]), nil
}

// Neighbors returns the neighbor ids of v in ascending order.
// Returns ErrInvalidVertex if v is outside [0, VertexCount).
// The returned slice is owned by the caller.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, ErrInvalidVertex
	}
	nbrs := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		nbrs = append(nbrs, u)
	}
	sort.Ints(nbrs)

	return nbrs, nil
}

// AdjacencySets returns a deep copy of the adjacency relation, one neighbor
// set per vertex. The copy shares nothing with the Graph, so callers may
// mutate it freely — the connectivity package uses this as the disposable
// scratch structure for disjoint-path extraction.
// Complexity: O(V + E).
func (g *Graph) AdjacencySets() []map[int]struct{} {
	cp := make([]map[int]struct{}, g.n)
	for v := range g.adj {
		set := make(map[int]struct{}, len(g.adj[v]))
		for u := range g.adj[v] {
			set[u] = struct{}{}
		}
		cp[v] = set
	}

	return cp
}
