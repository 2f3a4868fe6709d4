// Zagreb - graph-invariant analysis for validator network topologies.
//
// The binary wraps the library's three workflows: fetching a live
// gossip snapshot over RPC, analyzing a stored snapshot, and grading
// canonical shapes as baselines.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewCLI().Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
