package topology

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/zagreb/core"
)

// Validator is one staked node in a Snapshot. IDs are dense indices
// assigned in getVoteAccounts order, so they double as graph vertices.
type Validator struct {
	ID          int    `json:"id"`
	Pubkey      string `json:"pubkey"`
	VoteAccount string `json:"vote_account"`
	Stake       uint64 `json:"stake"`
	Name        string `json:"name,omitempty"`
}

// Connection lists the peer IDs one validator can reach over gossip.
type Connection struct {
	ID    int   `json:"id"`
	Peers []int `json:"peers"`
}

// Snapshot is one observation of the validator network, ready for
// persistence or graph assembly.
type Snapshot struct {
	Validators  []Validator  `json:"validators"`
	Connections []Connection `json:"connections"`
}

// Fetch performs the two RPC calls and assembles a Snapshot. Only
// validators present in both the vote-account roster and the gossip
// table receive connections; a staked validator absent from gossip
// keeps an empty peer list.
func Fetch(ctx context.Context, c *Client) (*Snapshot, error) {
	accounts, err := c.VoteAccounts(ctx)
	if err != nil {
		return nil, err
	}
	nodes, err := c.ClusterNodes(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Validators: make([]Validator, len(accounts))}
	idByPubkey := make(map[string]int, len(accounts))
	for i, acc := range accounts {
		idByPubkey[acc.NodePubkey] = i
		snap.Validators[i] = Validator{
			ID:          i,
			Pubkey:      acc.NodePubkey,
			VoteAccount: acc.VotePubkey,
			Stake:       acc.ActivatedStake,
		}
	}

	// IDs of staked validators visible in gossip, ascending.
	visible := make([]int, 0, len(accounts))
	seen := make(map[int]bool, len(accounts))
	for _, node := range nodes {
		if id, ok := idByPubkey[node.Pubkey]; ok && !seen[id] {
			seen[id] = true
			visible = append(visible, id)
		}
	}
	sort.Ints(visible)

	for _, id := range visible {
		peers := make([]int, 0, len(visible)-1)
		for _, peer := range visible {
			if peer != id {
				peers = append(peers, peer)
			}
		}
		snap.Connections = append(snap.Connections, Connection{ID: id, Peers: peers})
	}
	return snap, nil
}

// Graph builds the undirected peer graph over the snapshot's validator
// IDs. Peer references outside [0, len(Validators)) are reported, not
// skipped.
func (s *Snapshot) Graph() (*core.Graph, error) {
	g := core.New(len(s.Validators))
	for _, conn := range s.Connections {
		for _, peer := range conn.Peers {
			if conn.ID == peer {
				continue
			}
			if err := g.AddEdge(conn.ID, peer); err != nil {
				return nil, fmt.Errorf("topology: connection %d->%d: %w", conn.ID, peer, err)
			}
		}
	}
	return g, nil
}

// WriteFile stores the snapshot as indented JSON.
func (s *Snapshot) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("topology: encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("topology: write %s: %w", path, err)
	}
	return nil
}

// ReadSnapshot loads a snapshot stored with WriteFile.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topology: read %s: %w", path, err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("topology: decode %s: %w", path, err)
	}
	return &s, nil
}
