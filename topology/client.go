package topology

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultEndpoint is the public mainnet RPC node.
const DefaultEndpoint = "https://api.mainnet-beta.solana.com"

// ErrRPC marks a well-formed JSON-RPC error response, as opposed to a
// transport or decode failure.
var ErrRPC = errors.New("topology: rpc error")

// VoteAccount is one staked validator from getVoteAccounts.
type VoteAccount struct {
	VotePubkey     string `json:"votePubkey"`
	NodePubkey     string `json:"nodePubkey"`
	ActivatedStake uint64 `json:"activatedStake"`
}

// ClusterNode is one gossip participant from getClusterNodes.
type ClusterNode struct {
	Pubkey  string `json:"pubkey"`
	Gossip  string `json:"gossip"`
	Version string `json:"version"`
}

// Client speaks JSON-RPC 2.0 to a single endpoint.
type Client struct {
	endpoint string
	httpc    *http.Client
}

// ClientOption adjusts a Client at construction.
type ClientOption func(*Client)

// WithHTTPClient swaps the underlying http.Client, e.g. for tests or
// custom transports.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpc = h }
}

// NewClient returns a Client for endpoint; an empty endpoint selects
// DefaultEndpoint. The default http.Client carries a 30s timeout.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// VoteAccounts returns the currently staked (non-delinquent) validators.
func (c *Client) VoteAccounts(ctx context.Context) ([]VoteAccount, error) {
	var result struct {
		Current []VoteAccount `json:"current"`
	}
	if err := c.call(ctx, "getVoteAccounts", &result); err != nil {
		return nil, err
	}
	return result.Current, nil
}

// ClusterNodes returns every node visible in gossip.
func (c *Client) ClusterNodes(ctx context.Context) ([]ClusterNode, error) {
	var result []ClusterNode
	if err := c.call(ctx, "getClusterNodes", &result); err != nil {
		return nil, err
	}
	return result, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, result any) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method})
	if err != nil {
		return fmt.Errorf("topology: encode %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("topology: build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("topology: %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("topology: %s: unexpected status %s", method, resp.Status)
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("topology: decode %s response: %w", method, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("%w: %s: %d %s", ErrRPC, method, envelope.Error.Code, envelope.Error.Message)
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("topology: decode %s result: %w", method, err)
	}
	return nil
}
