package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/katalvlaran/zagreb/analysis"
	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
	"github.com/katalvlaran/zagreb/topology"
)

// Version is set at build time via ldflags.
var Version = "dev"

// CLI is the root Kong command structure.
type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`

	Fetch   FetchCmd   `cmd:"" help:"Fetch the validator gossip topology into a snapshot file"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a stored topology snapshot"`
	Shape   ShapeCmd   `cmd:"" help:"Analyze a canonical graph shape as a baseline"`
}

// NewCLI creates a new CLI instance.
func NewCLI() *CLI {
	return &CLI{}
}

// Execute parses command-line arguments and executes the selected command.
func (c *CLI) Execute(args []string) error {
	kongCtx := kong.Parse(c,
		kong.Name("zagreb"),
		kong.Description("Graph-invariant analysis for validator network topologies"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"version":          Version,
			"default_endpoint": topology.DefaultEndpoint,
		},
	)
	return kongCtx.Run()
}

// FetchCmd snapshots the live gossip network over JSON-RPC.
type FetchCmd struct {
	Endpoint string        `short:"e" default:"${default_endpoint}" help:"RPC endpoint URL"`
	Output   string        `short:"o" default:"network.json" help:"Snapshot output file"`
	Timeout  time.Duration `default:"60s" help:"Overall RPC deadline"`
}

// Run executes the fetch command.
func (c *FetchCmd) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	color.Green("Connecting to %s", c.Endpoint)
	snap, err := topology.Fetch(ctx, topology.NewClient(c.Endpoint))
	if err != nil {
		return fmt.Errorf("fetching topology: %w", err)
	}
	fmt.Printf("Found %d staked validators, %d visible in gossip\n",
		len(snap.Validators), len(snap.Connections))

	if err := snap.WriteFile(c.Output); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	color.Green("✓ Snapshot written to %s", c.Output)
	return nil
}

// AnalyzeCmd grades a stored snapshot.
type AnalyzeCmd struct {
	Snapshot string `arg:"" help:"Snapshot file produced by fetch"`
	Mode     string `default:"approx" enum:"approx,exact" help:"Connectivity verification mode"`
	Output   string `short:"o" optional:"" help:"Write the analysis result as JSON"`
	Top      int    `default:"5" help:"Bottleneck entries to list"`
}

// Run executes the analyze command.
func (c *AnalyzeCmd) Run() error {
	snap, err := topology.ReadSnapshot(c.Snapshot)
	if err != nil {
		return err
	}
	g, err := snap.Graph()
	if err != nil {
		return err
	}

	mode := parseMode(c.Mode)
	if err := report(g, mode, c.Output); err != nil {
		return err
	}

	scores := topology.StakeConcentration(snap)
	if len(scores) == 0 {
		return nil
	}
	color.Yellow("\nPotential bottlenecks (high stake, low connectivity):")
	for i, s := range scores {
		if i == c.Top {
			break
		}
		fmt.Printf("  %s  score %.2f\n", shortID(snap, s.ID), s.Score)
	}
	return nil
}

// ShapeCmd analyzes one of the canonical shapes.
type ShapeCmd struct {
	Name string  `arg:"" enum:"complete,cycle,path,star,wheel,petersen,random" help:"Shape to build"`
	N    int     `short:"n" default:"10" help:"Vertex count (ignored for petersen)"`
	P    float64 `default:"0.3" help:"Edge probability for random"`
	Seed int64   `default:"1" help:"Seed for random"`
	Mode string  `default:"exact" enum:"approx,exact" help:"Connectivity verification mode"`
}

// Run executes the shape command.
func (c *ShapeCmd) Run() error {
	g, err := buildShape(c.Name, c.N, c.P, c.Seed)
	if err != nil {
		return err
	}
	return report(g, parseMode(c.Mode), "")
}

func buildShape(name string, n int, p float64, seed int64) (*core.Graph, error) {
	switch name {
	case "complete":
		return builder.Complete(n)
	case "cycle":
		return builder.Cycle(n)
	case "path":
		return builder.Path(n)
	case "star":
		return builder.Star(n)
	case "wheel":
		return builder.Wheel(n)
	case "petersen":
		return builder.Petersen(), nil
	case "random":
		return builder.RandomSparse(n, p, seed)
	}
	return nil, fmt.Errorf("unknown shape %q", name)
}

func parseMode(s string) connectivity.Mode {
	if s == "exact" {
		return connectivity.ModeExact
	}
	return connectivity.ModeApprox
}

// report prints the invariant summary and optionally persists it.
func report(g *core.Graph, mode connectivity.Mode, output string) error {
	r, err := analysis.Analyze(g, mode)
	if err != nil {
		return err
	}

	color.Green("--- Network Analysis ---")
	fmt.Printf("Vertices:            %d\n", r.VertexCount)
	fmt.Printf("Edges:               %d\n", r.EdgeCount)
	fmt.Printf("First Zagreb index:  %d\n", r.ZagrebIndex)
	fmt.Printf("Degree range:        %d..%d (avg %.2f)\n",
		r.MinDegree, r.MaxDegree, r.AverageDegree())
	fmt.Printf("Independence number: %d (greedy)\n", r.IndependenceNumber)
	fmt.Printf("Zagreb upper bound:  %.2f\n", r.ZagrebUpperBound)
	fmt.Printf("Efficiency ratio:    %.2f%%\n", r.EfficiencyRatio())

	switch {
	case r.IsLikelyHamiltonian:
		color.Green("Likely Hamiltonian: efficient rotation over all nodes is possible")
	case r.IsLikelyTraceable:
		color.Yellow("Likely traceable but not Hamiltonian: rotation may need extra hops")
	default:
		color.Red("Not provably traversable: consider improving connectivity")
	}

	// climb k until the first failure
	for k := 1; k <= 5; k++ {
		if !connectivity.IsKConnected(g, k, mode) {
			fmt.Printf("Network is not %d-connected\n", k)
			break
		}
		fmt.Printf("Network is at least %d-connected\n", k)
	}

	if output == "" {
		return nil
	}
	if err := analysis.WriteFile(output, r); err != nil {
		return err
	}
	color.Green("✓ Result written to %s", output)
	return nil
}

func shortID(snap *topology.Snapshot, id int) string {
	for _, v := range snap.Validators {
		if v.ID != id {
			continue
		}
		name := v.Name
		if name == "" {
			name = "Unknown"
		}
		pk := v.Pubkey
		if len(pk) > 8 {
			pk = pk[:8]
		}
		return fmt.Sprintf("%s (%s)", name, pk)
	}
	return fmt.Sprintf("validator %d", id)
}
