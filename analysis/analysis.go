package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
	"github.com/katalvlaran/zagreb/hamilton"
)

// ErrNilGraph is returned by Analyze when given no graph to work on.
var ErrNilGraph = errors.New("analysis: nil graph")

// Result captures the invariants of one analyzed graph. Field names are
// frozen: the JSON form is the interchange format written by WriteFile
// and consumed by external tooling.
type Result struct {
	VertexCount         int     `json:"vertex_count"`
	EdgeCount           int     `json:"edge_count"`
	ZagrebIndex         int     `json:"zagreb_index"`
	MinDegree           int     `json:"min_degree"`
	MaxDegree           int     `json:"max_degree"`
	IsLikelyHamiltonian bool    `json:"is_likely_hamiltonian"`
	IsLikelyTraceable   bool    `json:"is_likely_traceable"`
	IndependenceNumber  int     `json:"independence_number"`
	ZagrebUpperBound    float64 `json:"zagreb_upper_bound"`
}

// Analyze computes the full invariant set of g. The mode is forwarded
// to every connectivity-dependent check.
func Analyze(g *core.Graph, mode connectivity.Mode) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return &Result{
		VertexCount:         g.VertexCount(),
		EdgeCount:           g.EdgeCount(),
		ZagrebIndex:         g.FirstZagrebIndex(),
		MinDegree:           g.MinDegree(),
		MaxDegree:           g.MaxDegree(),
		IsLikelyHamiltonian: hamilton.IsLikelyHamiltonian(g, mode),
		IsLikelyTraceable:   hamilton.IsLikelyTraceable(g, mode),
		IndependenceNumber:  hamilton.IndependenceNumber(g),
		ZagrebUpperBound:    hamilton.ZagrebUpperBound(g),
	}, nil
}

// AverageDegree returns 2E/V, or 0 for the empty report.
func (r *Result) AverageDegree() float64 {
	if r.VertexCount == 0 {
		return 0
	}
	return 2 * float64(r.EdgeCount) / float64(r.VertexCount)
}

// EfficiencyRatio returns the Zagreb index as a percentage of its upper
// bound. A ratio near 100 means the degree sequence is as concentrated
// as the independence number allows. Returns 0 when the bound is 0.
func (r *Result) EfficiencyRatio() float64 {
	if r.ZagrebUpperBound == 0 {
		return 0
	}
	return 100 * float64(r.ZagrebIndex) / r.ZagrebUpperBound
}

// WriteFile stores r as indented JSON at path, creating or truncating
// the file.
func WriteFile(path string, r *Result) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("analysis: encode result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("analysis: write %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a Result previously stored with WriteFile.
func ReadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("analysis: read %s: %w", path, err)
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("analysis: decode %s: %w", path, err)
	}
	return &r, nil
}
