package classify

import "github.com/katalvlaran/zagreb/core"

// Petersen fingerprint constants: order, size and regularity of the
// canonical Petersen graph.
const (
	petersenOrder  = 10
	petersenSize   = 15
	petersenDegree = 3
)

// IsPetersen reports whether g matches the Petersen fingerprint:
// 10 vertices, 15 edges, 3-regular, and girth ≥ 5 (no triangle, no
// quadrilateral). This is a necessary-condition check, not an isomorphism
// test — see the package doc.
// Complexity: O(V·d⁴) for the girth scan with d = 3, effectively O(V).
func IsPetersen(g *core.Graph) bool {
	if g.VertexCount() != petersenOrder || g.EdgeCount() != petersenSize {
		return false
	}
	if g.MinDegree() != petersenDegree || g.MaxDegree() != petersenDegree {
		return false
	}

	if hasTriangle(g) {
		return false
	}

	return !hasQuadrilateral(g)
}

// hasTriangle scans for any 3-cycle: two distinct neighbors of a common
// vertex that are themselves adjacent.
func hasTriangle(g *core.Graph) bool {
	n := g.VertexCount()
	for u := 0; u < n; u++ {
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			for _, w := range nbrs {
				if v != w && g.HasEdge(v, w) {
					return true
				}
			}
		}
	}

	return false
}

// hasQuadrilateral scans for any 4-cycle by explicit neighbor-of-neighbor
// traversal up to depth 4: u → v → w → x with x adjacent to u and all four
// vertices distinct.
func hasQuadrilateral(g *core.Graph) bool {
	n := g.VertexCount()
	for u := 0; u < n; u++ {
		uNbrs, _ := g.Neighbors(u)
		for _, v := range uNbrs {
			vNbrs, _ := g.Neighbors(v)
			for _, w := range vNbrs {
				if w == u {
					continue
				}
				wNbrs, _ := g.Neighbors(w)
				for _, x := range wNbrs {
					if x != v && x != u && g.HasEdge(x, u) {
						return true
					}
				}
			}
		}
	}

	return false
}
