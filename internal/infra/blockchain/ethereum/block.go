package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/onchainsentry/internal/chainwatch"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type (
	// TransactionResponse holds the transaction fields of eth_getBlockByNumber
	// the sentry cares about.
	TransactionResponse struct {
		Hash  common.Hash     `json:"hash"`
		From  common.Address  `json:"from"`
		To    *common.Address `json:"to"` // nil for contract creations
		Value *hexutil.Big    `json:"value"`
	}

	// BlockResponse holds the block fields of eth_getBlockByNumber the sentry
	// cares about. Transactions are requested as full objects.
	BlockResponse struct {
		Number       hexutil.Uint64        `json:"number"`
		Hash         common.Hash           `json:"hash"`
		Timestamp    hexutil.Uint64        `json:"timestamp"`
		Transactions []TransactionResponse `json:"transactions"`
	}
)

// toTransaction converts a TransactionResponse to a chainwatch.Transaction.
func (t TransactionResponse) toTransaction() chainwatch.Transaction {
	tx := chainwatch.Transaction{
		Hash:  t.Hash.Hex(),
		From:  t.From.Hex(),
		Value: new(big.Int),
	}
	if t.To != nil {
		tx.To = t.To.Hex()
	}
	if t.Value != nil {
		tx.Value = t.Value.ToInt()
	}
	return tx
}

// toBlock converts a BlockResponse to a chainwatch.Block.
func (b BlockResponse) toBlock() chainwatch.Block {
	transactions := make([]chainwatch.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		transactions[i] = t.toTransaction()
	}

	return chainwatch.Block{
		Height:       uint64(b.Number),
		Hash:         b.Hash.Hex(),
		Time:         time.Unix(int64(b.Timestamp), 0).UTC(),
		Transactions: transactions,
	}
}

// CurrentHeight fetches the latest block number from the node.
func (c *client) CurrentHeight(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var blockNumber hexutil.Uint64
	if err := json.Unmarshal(data, &blockNumber); err != nil {
		return 0, err
	}

	return uint64(blockNumber), nil
}

// Block retrieves a full block by its number. A null or undecodable result is
// reported as chainwatch.ErrBlockUnavailable; transport and RPC errors are
// returned as is.
func (c *client) Block(ctx context.Context, height uint64) (chainwatch.Block, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", hexutil.EncodeUint64(height), true)
	if err != nil {
		return chainwatch.Block{}, err
	}

	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return chainwatch.Block{}, chainwatch.ErrBlockUnavailable
	}

	var blockResponse BlockResponse
	if err := json.Unmarshal(data, &blockResponse); err != nil {
		return chainwatch.Block{}, fmt.Errorf("%w: %v", chainwatch.ErrBlockUnavailable, err)
	}

	return blockResponse.toBlock(), nil
}
