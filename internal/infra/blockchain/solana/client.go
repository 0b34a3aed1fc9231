// Package solana implements chainwatch sources on top of a Solana JSON-RPC node.
package solana

import (
	"context"
	"net/http"

	"github.com/gabapcia/onchainsentry/internal/chainwatch"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

// client reads slots and address signatures from a Solana node.
type client struct {
	conn       *rpc.Client
	commitment rpc.CommitmentType
}

var (
	_ chainwatch.HeightSource   = (*client)(nil)
	_ chainwatch.ActivitySource = (*client)(nil)
)

// Option configures the client.
type Option func(*client)

// WithCommitment sets the commitment level used for every query.
// Default: confirmed.
func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(c *client) {
		if commitment != "" {
			c.commitment = commitment
		}
	}
}

// Dial returns an RPC connection to endpoint that sends its requests through
// httpClient.
func Dial(endpoint string, httpClient *http.Client) *rpc.Client {
	return rpc.NewWithCustomRPCClient(jsonrpc.NewClientWithOpts(endpoint, &jsonrpc.RPCClientOpts{
		HTTPClient: httpClient,
	}))
}

// NewClient creates a Solana client on top of conn.
func NewClient(conn *rpc.Client, opts ...Option) *client {
	c := &client{
		conn:       conn,
		commitment: rpc.CommitmentConfirmed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentHeight returns the current slot.
func (c *client) CurrentHeight(ctx context.Context) (uint64, error) {
	return c.conn.GetSlot(ctx, c.commitment)
}

// RecentActivity returns the latest signatures involving address, newest
// first. Parties are not reported because signatures carry no transfer data.
func (c *client) RecentActivity(ctx context.Context, address string, limit int) ([]chainwatch.Activity, error) {
	account, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, err
	}

	signatures, err := c.conn.GetSignaturesForAddressWithOpts(ctx, account, &rpc.GetSignaturesForAddressOpts{
		Limit:      &limit,
		Commitment: c.commitment,
	})
	if err != nil {
		return nil, err
	}

	activity := make([]chainwatch.Activity, 0, len(signatures))
	for _, s := range signatures {
		if s == nil {
			continue
		}

		entry := chainwatch.Activity{
			ID:       s.Signature.String(),
			Position: s.Slot,
			Failed:   s.Err != nil,
		}
		if s.BlockTime != nil {
			entry.BlockTime = s.BlockTime.Time().UTC()
		}

		activity = append(activity, entry)
	}

	return activity, nil
}
