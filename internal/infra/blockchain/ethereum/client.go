// Package ethereum implements chainwatch sources for Ethereum-compatible nodes
// using a JSON-RPC client.
package ethereum

import (
	"github.com/gabapcia/onchainsentry/internal/chainwatch"
	"github.com/gabapcia/onchainsentry/internal/pkg/transport/jsonrpc"
)

// client reads block heights and full blocks from an EVM node.
// It communicates with the node via a JSON-RPC client.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the node
}

// Ensure client implements chainwatch.BlockSource at compile time.
var _ chainwatch.BlockSource = (*client)(nil)

// NewClient creates a new EVM client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
