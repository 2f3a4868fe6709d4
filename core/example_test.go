package core_test

import (
	"fmt"

	"github.com/katalvlaran/zagreb/core"
)

// ExampleGraph_FirstZagrebIndex builds the 4-cycle and reads its invariant.
func ExampleGraph_FirstZagrebIndex() {
	g := core.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)

	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("zagreb:", g.FirstZagrebIndex())
	// Output:
	// edges: 4
	// zagreb: 16
}

// ExampleGraph_AddEdge shows the idempotent insertion contract.
func ExampleGraph_AddEdge() {
	g := core.New(2)
	fmt.Println(g.AddEdge(0, 1)) // first insert
	fmt.Println(g.AddEdge(1, 0)) // same undirected edge: no-op
	fmt.Println(g.EdgeCount())
	// Output:
	// <nil>
	// <nil>
	// 1
}
