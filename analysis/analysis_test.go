package analysis_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zagreb/analysis"
	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/connectivity"
)

func TestAnalyze_Petersen(t *testing.T) {
	g := builder.Petersen()

	r, err := analysis.Analyze(g, connectivity.ModeExact)
	require.NoError(t, err)

	require.Equal(t, 10, r.VertexCount)
	require.Equal(t, 15, r.EdgeCount)
	require.Equal(t, 90, r.ZagrebIndex, "10 vertices of degree 3")
	require.Equal(t, 3, r.MinDegree)
	require.Equal(t, 3, r.MaxDegree)
	require.False(t, r.IsLikelyHamiltonian)
	require.True(t, r.IsLikelyTraceable)
	require.Equal(t, 4, r.IndependenceNumber)
	require.Greater(t, r.ZagrebUpperBound, float64(r.ZagrebIndex))

	require.InDelta(t, 3.0, r.AverageDegree(), 1e-9)
	require.Greater(t, r.EfficiencyRatio(), 0.0)
	require.Less(t, r.EfficiencyRatio(), 100.0)
}

func TestAnalyze_Complete(t *testing.T) {
	g, err := builder.Complete(6)
	require.NoError(t, err)

	r, err := analysis.Analyze(g, connectivity.ModeApprox)
	require.NoError(t, err)

	require.Equal(t, 150, r.ZagrebIndex)
	require.True(t, r.IsLikelyHamiltonian)
	require.True(t, r.IsLikelyTraceable)
	require.Equal(t, 1, r.IndependenceNumber)
	require.InDelta(t, 350.0, r.ZagrebUpperBound, 1e-9)
	require.InDelta(t, 100.0*150.0/350.0, r.EfficiencyRatio(), 1e-9)
}

func TestAnalyze_NilGraph(t *testing.T) {
	_, err := analysis.Analyze(nil, connectivity.ModeApprox)
	require.ErrorIs(t, err, analysis.ErrNilGraph)
}

func TestWriteReadFile_RoundTrip(t *testing.T) {
	g, err := builder.Wheel(6)
	require.NoError(t, err)
	want, err := analysis.Analyze(g, connectivity.ModeExact)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wheel.json")
	require.NoError(t, analysis.WriteFile(path, want))

	got, err := analysis.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := analysis.ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

// TestResult_JSONKeys pins the interchange key names; external tooling
// parses these files.
func TestResult_JSONKeys(t *testing.T) {
	g, err := builder.Cycle(4)
	require.NoError(t, err)
	r, err := analysis.Analyze(g, connectivity.ModeApprox)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "c4.json")
	require.NoError(t, analysis.WriteFile(path, r))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))
	for _, k := range []string{
		"vertex_count", "edge_count", "zagreb_index",
		"min_degree", "max_degree",
		"is_likely_hamiltonian", "is_likely_traceable",
		"independence_number", "zagreb_upper_bound",
	} {
		require.Contains(t, keys, k)
	}
}
