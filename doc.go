// Package zagreb is an in-memory toolkit for reasoning about the topology
// of simple undirected graphs through classical graph invariants — degree
// statistics, the first Zagreb index, vertex connectivity, and
// theorem-driven Hamiltonicity heuristics.
//
// 🚀 What is zagreb?
//
//	A small, focused library that answers structural questions about a graph
//	you build edge by edge:
//		• Core primitives: fixed-vertex-count adjacency store, idempotent edge insertion
//		• Metrics: degree, min/max degree, first Zagreb index Σ deg(v)²
//		• Classifiers: complete / cycle / path / star / Petersen fingerprints
//		• Connectivity: BFS reachability, vertex-disjoint paths (Menger),
//		  dual-mode k-connectivity (fast heuristic vs. exact enumeration)
//		• Theorems: Dirac + Zagreb-threshold Hamiltonicity and traceability,
//		  greedy independence number, analytic Zagreb upper bound
//
// ✨ Why choose zagreb?
//
//   - Decision support – judge network resilience and leader-rotation
//     feasibility from topology alone
//   - Explicit trade-offs – approximate and exact connectivity are two named
//     strategies, never a silent internal choice
//   - Pure Go – no cgo, tiny dependency surface
//
// Everything is organized under small single-concern packages:
//
//	core/         — the Graph adjacency store, degrees and the Zagreb index
//	classify/     — structural fingerprint predicates
//	connectivity/ — reachability, disjoint paths and k-connectivity
//	hamilton/     — Hamiltonicity, traceability and the Zagreb upper bound
//	builder/      — deterministic factories for canonical topologies
//	analysis/     — one-call analysis reports with JSON persistence
//	topology/     — validator-network snapshots fetched over JSON-RPC
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	C₄: every vertex has degree 2, Zagreb index 16, 2-connected, Hamiltonian.
//
//	go get github.com/katalvlaran/zagreb
package zagreb
