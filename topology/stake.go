package topology

import "sort"

// ConcentrationScore grades one validator's stake-to-connectivity
// imbalance.
type ConcentrationScore struct {
	ID    int
	Score float64
}

// StakeConcentration returns per-validator bottleneck scores, highest
// first: the validator's share of total stake divided by its share of
// possible connections. Validators with no connections or no stake
// context are omitted. Ties break on ascending ID for stable output.
func StakeConcentration(s *Snapshot) []ConcentrationScore {
	var totalStake uint64
	stakeByID := make(map[int]uint64, len(s.Validators))
	for _, v := range s.Validators {
		totalStake += v.Stake
		stakeByID[v.ID] = v.Stake
	}
	if totalStake == 0 || len(s.Validators) == 0 {
		return nil
	}

	scores := make([]ConcentrationScore, 0, len(s.Connections))
	for _, conn := range s.Connections {
		if len(conn.Peers) == 0 {
			continue
		}
		stakePct := float64(stakeByID[conn.ID]) / float64(totalStake)
		connPct := float64(len(conn.Peers)) / float64(len(s.Validators))
		scores = append(scores, ConcentrationScore{ID: conn.ID, Score: stakePct / connPct})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].ID < scores[j].ID
	})
	return scores
}
