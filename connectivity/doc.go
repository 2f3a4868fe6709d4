// Package connectivity answers reachability and vertex-connectivity
// questions over a core.Graph.
//
// What:
//
//   - IsConnected: BFS reachability from vertex 0.
//   - FindPath: shortest-hop path between two vertices via parent-pointer
//     BFS, runnable against the graph itself or any scratch adjacency copy.
//   - DisjointPaths: greedy extraction of internally vertex-disjoint paths
//     (the Menger's-theorem building block) on a disposable working copy.
//   - IsKConnected: k-vertex-connectivity behind one entry point with two
//     named strategies — ModeApprox (density and Zagreb-ratio heuristics)
//     and ModeExact (all-pairs disjoint-path enumeration).
//
// Why two modes:
//
//   - The exact check costs O(V²) path searches and is meant for small and
//     medium graphs; the approximate check answers in O(V) after the
//     classifier shortcuts. They are a deliberate precision/performance
//     trade-off the caller chooses explicitly, and they may disagree on
//     adversarial graphs — the approximation is not meant to be "fixed"
//     to match the exact algorithm.
//
// Caveats:
//
//   - DisjointPaths is a greedy max-flow substitute without augmenting-path
//     backtracking: it can undercount on general graphs. Classifier fast
//     paths and the search caps keep it adequate for the structural classes
//     the hamilton package exercises.
//
// Complexity:
//
//   - IsConnected / FindPath: O(V + E).
//   - DisjointPaths: O(min-degree · (V + E)), capped at 100 searches.
//   - IsKConnected ModeExact: O(V² · min-degree · (V + E)).
package connectivity
