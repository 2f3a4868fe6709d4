package topology_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zagreb/classify"
	"github.com/katalvlaran/zagreb/topology"
)

// rpcStub serves canned results keyed by JSON-RPC method name.
func rpcStub(t *testing.T, results map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		result, ok := results[req.Method]
		if !ok {
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0", "id": 1,
				"error": map[string]any{"code": -32601, "message": "method not found"},
			}))
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0", "id": 1, "result": result,
		}))
	}))
}

func testAccounts() []map[string]any {
	return []map[string]any{
		{"votePubkey": "vote-a", "nodePubkey": "node-a", "activatedStake": 5000},
		{"votePubkey": "vote-b", "nodePubkey": "node-b", "activatedStake": 3000},
		{"votePubkey": "vote-c", "nodePubkey": "node-c", "activatedStake": 2000},
	}
}

func TestFetch_BuildsSnapshot(t *testing.T) {
	srv := rpcStub(t, map[string]any{
		"getVoteAccounts": map[string]any{"current": testAccounts()},
		"getClusterNodes": []map[string]any{
			{"pubkey": "node-a", "gossip": "10.0.0.1:8001"},
			{"pubkey": "node-b", "gossip": "10.0.0.2:8001"},
			{"pubkey": "node-c", "gossip": "10.0.0.3:8001"},
			{"pubkey": "node-rpc-only", "gossip": "10.0.0.9:8001"},
		},
	})
	defer srv.Close()

	c := topology.NewClient(srv.URL)
	snap, err := topology.Fetch(context.Background(), c)
	require.NoError(t, err)

	require.Len(t, snap.Validators, 3)
	require.Equal(t, "node-a", snap.Validators[0].Pubkey)
	require.Equal(t, "vote-a", snap.Validators[0].VoteAccount)
	require.Equal(t, uint64(5000), snap.Validators[0].Stake)

	// all three are in gossip, each sees the other two
	require.Len(t, snap.Connections, 3)
	require.Equal(t, []int{1, 2}, snap.Connections[0].Peers)

	g, err := snap.Graph()
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, classify.IsComplete(g), "full gossip visibility yields K3")
}

func TestFetch_ValidatorMissingFromGossip(t *testing.T) {
	srv := rpcStub(t, map[string]any{
		"getVoteAccounts": map[string]any{"current": testAccounts()},
		"getClusterNodes": []map[string]any{
			{"pubkey": "node-a", "gossip": "10.0.0.1:8001"},
			{"pubkey": "node-c", "gossip": "10.0.0.3:8001"},
		},
	})
	defer srv.Close()

	snap, err := topology.Fetch(context.Background(), topology.NewClient(srv.URL))
	require.NoError(t, err)

	// node-b is staked but invisible: no connection entry, vertex stays isolated
	require.Len(t, snap.Validators, 3)
	require.Len(t, snap.Connections, 2)

	g, err := snap.Graph()
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())
	d, err := g.Degree(1)
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestClient_RPCError(t *testing.T) {
	srv := rpcStub(t, nil) // every method answers with a JSON-RPC error
	defer srv.Close()

	_, err := topology.NewClient(srv.URL).VoteAccounts(context.Background())
	require.ErrorIs(t, err, topology.ErrRPC)
}

func TestClient_TransportError(t *testing.T) {
	srv := rpcStub(t, nil)
	srv.Close() // connection refused from here on

	_, err := topology.NewClient(srv.URL).ClusterNodes(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, topology.ErrRPC)
}

func TestSnapshot_FileRoundTrip(t *testing.T) {
	snap := &topology.Snapshot{
		Validators: []topology.Validator{
			{ID: 0, Pubkey: "node-a", VoteAccount: "vote-a", Stake: 10},
			{ID: 1, Pubkey: "node-b", VoteAccount: "vote-b", Stake: 20},
		},
		Connections: []topology.Connection{
			{ID: 0, Peers: []int{1}},
			{ID: 1, Peers: []int{0}},
		},
	}

	path := filepath.Join(t.TempDir(), "network.json")
	require.NoError(t, snap.WriteFile(path))

	got, err := topology.ReadSnapshot(path)
	require.NoError(t, err)
	require.Equal(t, snap, got)
}

func TestSnapshot_GraphRejectsBadPeer(t *testing.T) {
	snap := &topology.Snapshot{
		Validators:  []topology.Validator{{ID: 0, Pubkey: "node-a"}},
		Connections: []topology.Connection{{ID: 0, Peers: []int{5}}},
	}
	_, err := snap.Graph()
	require.Error(t, err)
}

func TestStakeConcentration(t *testing.T) {
	// v0 holds 80% of stake behind one link; v1 and v2 split the rest
	// with two links each.
	snap := &topology.Snapshot{
		Validators: []topology.Validator{
			{ID: 0, Stake: 800},
			{ID: 1, Stake: 100},
			{ID: 2, Stake: 100},
		},
		Connections: []topology.Connection{
			{ID: 0, Peers: []int{1}},
			{ID: 1, Peers: []int{0, 2}},
			{ID: 2, Peers: []int{0, 1}},
		},
	}

	scores := topology.StakeConcentration(snap)
	require.Len(t, scores, 3)
	require.Equal(t, 0, scores[0].ID, "stake-heavy, link-poor validator ranks first")
	require.InDelta(t, 0.8/(1.0/3.0), scores[0].Score, 1e-9)
	// equal stake and connectivity tie, broken by ID
	require.Equal(t, 1, scores[1].ID)
	require.Equal(t, 2, scores[2].ID)

	require.Nil(t, topology.StakeConcentration(&topology.Snapshot{}))
}
