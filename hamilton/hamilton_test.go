package hamilton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
	"github.com/katalvlaran/zagreb/hamilton"
)

var bothModes = []connectivity.Mode{connectivity.ModeApprox, connectivity.ModeExact}

// TestIsLikelyHamiltonian_Shapes pins the classifier shortcuts under
// both connectivity modes.
func TestIsLikelyHamiltonian_Shapes(t *testing.T) {
	k5, err := builder.Complete(5)
	require.NoError(t, err)
	c6, err := builder.Cycle(6)
	require.NoError(t, err)
	p5, err := builder.Path(5)
	require.NoError(t, err)
	s5, err := builder.Star(5)
	require.NoError(t, err)
	petersen := builder.Petersen()

	for _, mode := range bothModes {
		require.True(t, hamilton.IsLikelyHamiltonian(k5, mode), "K5 mode=%s", mode)
		require.True(t, hamilton.IsLikelyHamiltonian(c6, mode), "C6 mode=%s", mode)
		require.False(t, hamilton.IsLikelyHamiltonian(p5, mode), "P5 mode=%s", mode)
		require.False(t, hamilton.IsLikelyHamiltonian(s5, mode), "star mode=%s", mode)
		require.False(t, hamilton.IsLikelyHamiltonian(petersen, mode),
			"Petersen is 3-connected and 3-regular yet non-Hamiltonian, mode=%s", mode)
	}

	// too small for a cycle
	require.False(t, hamilton.IsLikelyHamiltonian(core.New(2), connectivity.ModeExact))
	require.False(t, hamilton.IsLikelyHamiltonian(core.New(0), connectivity.ModeExact))
}

// TestIsLikelyHamiltonian_Dirac checks the δ ≥ n/2 acceptance on a
// dense non-complete graph: K6 minus a perfect matching.
func TestIsLikelyHamiltonian_Dirac(t *testing.T) {
	// K6 minus the perfect matching {0,3},{1,4},{2,5}: the octahedron,
	// with δ = 4 ≥ 6/2.
	g := core.New(6)
	for u := 0; u < 6; u++ {
		for v := u + 1; v < 6; v++ {
			if u+3 == v {
				continue
			}
			require.NoError(t, g.AddEdge(u, v))
		}
	}
	require.Equal(t, 4, g.MinDegree())
	for _, mode := range bothModes {
		require.True(t, hamilton.IsLikelyHamiltonian(g, mode))
	}
}

// TestIsLikelyTraceable_Shapes covers the graphs that are traceable
// without being Hamiltonian.
func TestIsLikelyTraceable_Shapes(t *testing.T) {
	k5, err := builder.Complete(5)
	require.NoError(t, err)
	p5, err := builder.Path(5)
	require.NoError(t, err)
	s5, err := builder.Star(5)
	require.NoError(t, err)
	petersen := builder.Petersen()

	for _, mode := range bothModes {
		require.True(t, hamilton.IsLikelyTraceable(k5, mode), "K5 mode=%s", mode)
		require.True(t, hamilton.IsLikelyTraceable(p5, mode), "P5 mode=%s", mode)
		require.True(t, hamilton.IsLikelyTraceable(s5, mode), "star mode=%s", mode)
		require.True(t, hamilton.IsLikelyTraceable(petersen, mode), "Petersen mode=%s", mode)
	}

	require.False(t, hamilton.IsLikelyTraceable(core.New(1), connectivity.ModeExact))

	// disconnected graphs are never traceable
	g := core.New(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))
	for _, mode := range bothModes {
		require.False(t, hamilton.IsLikelyTraceable(g, mode))
	}
}

// TestIndependenceNumber verifies the greedy set sizes on fixtures with
// known independence numbers.
func TestIndependenceNumber(t *testing.T) {
	require.Equal(t, 0, hamilton.IndependenceNumber(core.New(0)))
	require.Equal(t, 3, hamilton.IndependenceNumber(core.New(3)), "edgeless graph")

	k6, err := builder.Complete(6)
	require.NoError(t, err)
	require.Equal(t, 1, hamilton.IndependenceNumber(k6))

	p5, err := builder.Path(5)
	require.NoError(t, err)
	require.Equal(t, 3, hamilton.IndependenceNumber(p5), "alternate vertices of P5")

	c5, err := builder.Cycle(5)
	require.NoError(t, err)
	require.Equal(t, 2, hamilton.IndependenceNumber(c5))

	s6, err := builder.Star(6)
	require.NoError(t, err)
	require.Equal(t, 5, hamilton.IndependenceNumber(s6), "all leaves")

	// β(Petersen) = 4 and the greedy run attains it
	require.Equal(t, 4, hamilton.IndependenceNumber(builder.Petersen()))
}

// TestZagrebUpperBound asserts the Theorem 3 inequality
// z1 ≤ bound on a spread of shapes, plus the exact value on K6 where
// β = 1 collapses the formula to (n-1)·Δ² + e².
func TestZagrebUpperBound(t *testing.T) {
	k6, err := builder.Complete(6)
	require.NoError(t, err)
	require.InDelta(t, 350.0, hamilton.ZagrebUpperBound(k6), 1e-9)
	require.GreaterOrEqual(t, hamilton.ZagrebUpperBound(k6), float64(k6.FirstZagrebIndex()))

	fixtures := map[string]*core.Graph{
		"petersen": builder.Petersen(),
	}
	if c5, err := builder.Cycle(5); err == nil {
		fixtures["cycle5"] = c5
	}
	if s5, err := builder.Star(5); err == nil {
		fixtures["star5"] = s5
	}
	if kb, err := builder.CompleteBipartite(3, 3); err == nil {
		fixtures["k33"] = kb
	}
	if w6, err := builder.Wheel(6); err == nil {
		fixtures["wheel6"] = w6
	}

	for name, g := range fixtures {
		require.GreaterOrEqual(t, hamilton.ZagrebUpperBound(g),
			float64(g.FirstZagrebIndex()), "fixture %s", name)
	}

	require.Zero(t, hamilton.ZagrebUpperBound(core.New(0)))
}
