// Strategy selection for the k-connectivity checkers.
package connectivity

// Mode selects the k-connectivity strategy.
//
//   - ModeApprox — classifier shortcuts plus two empirical rules (edge
//     density threshold, Zagreb-index/average-degree ratio). Fast, may
//     misjudge adversarial graphs.
//   - ModeExact — Menger's-theorem verification: every vertex pair must
//     admit at least k internally vertex-disjoint paths. Slow but faithful
//     on the structural classes this library targets.
type Mode int

const (
	// ModeApprox selects the heuristic checker.
	ModeApprox Mode = iota

	// ModeExact selects the all-pairs disjoint-path checker.
	ModeExact
)

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	default:
		return "approx"
	}
}

// maxPathAttempts caps the repeated BFS-and-remove search inside
// DisjointPaths so a single call cannot loop pathologically. It is a
// safety bound, not a cancellation mechanism.
const maxPathAttempts = 100
