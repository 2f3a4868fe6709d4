// Breadth-first primitives: reachability over the canonical adjacency and
// parent-pointer path reconstruction over arbitrary adjacency sets.
package connectivity

import "github.com/katalvlaran/zagreb/core"

// IsConnected reports whether every vertex is reachable from vertex 0.
// The empty graph is trivially connected.
// Complexity: O(V + E).
func IsConnected(g *core.Graph) bool {
	n := g.VertexCount()
	if n == 0 {
		return true
	}

	visited := make([]bool, n)
	visited[0] = true
	queue := make([]int, 0, n)
	queue = append(queue, 0)
	seen := 1

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		nbrs, _ := g.Neighbors(v)
		for _, u := range nbrs {
			if !visited[u] {
				visited[u] = true
				seen++
				queue = append(queue, u)
			}
		}
	}

	return seen == n
}

// FindPath returns the shortest-hop vertex sequence from s to t on g, and
// whether such a path exists. Out-of-range endpoints yield no path; s == t
// yields the single-vertex path [s].
// Complexity: O(V + E).
func FindPath(g *core.Graph, s, t int) ([]int, bool) {
	n := g.VertexCount()
	if s < 0 || s >= n || t < 0 || t >= n {
		return nil, false
	}
	path := pathInSets(g.AdjacencySets(), s, t)

	return path, path != nil
}

// pathInSets runs parent-pointer BFS from s to t over the supplied
// adjacency sets — not necessarily the graph's own, so the disjoint-path
// search can probe a working copy with vertices and edges removed.
// Returns the reconstructed s..t vertex sequence, or nil if t is
// unreachable.
// Complexity: O(V + E) over the supplied sets.
func pathInSets(adj []map[int]struct{}, s, t int) []int {
	n := len(adj)
	visited := make([]bool, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	visited[s] = true
	queue := make([]int, 0, n)
	queue = append(queue, s)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if u == t {
			// Walk parent pointers t → s, then reverse in place.
			path := []int{t}
			for cur := t; cur != s; {
				cur = parent[cur]
				path = append(path, cur)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}

			return path
		}

		for v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}

	return nil
}
