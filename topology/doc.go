// Package topology maps a live validator gossip network onto a
// core.Graph so the library's invariants can grade real topologies.
//
// What:
//
//   - Client: a minimal JSON-RPC 2.0 client speaking the two methods the
//     mapping needs, getVoteAccounts and getClusterNodes.
//   - Snapshot: the on-disk form of one observation — validator roster
//     plus per-validator peer lists — with stable snake_case JSON.
//   - Fetch: one RPC round trip producing a Snapshot; Snapshot.Graph
//     assembles the undirected peer graph.
//   - StakeConcentration: bottleneck scoring, stake share divided by
//     connection share, sorted worst-first. A validator holding much
//     stake behind few links scores high.
//
// Gossip visibility is symmetric here: a validator's peer set is every
// other staked validator it can see in the cluster-node table. The graph
// therefore reflects discoverability, not individual TCP sessions.
//
// Errors: RPC transport and decode failures wrap the underlying error;
// a JSON-RPC error object surfaces as ErrRPC with code and message.
package topology
