package chainwatch

import (
	"context"
	"errors"
	"math/big"
	"time"
)

// ErrBlockUnavailable is returned by a BlockSource when the node has no data
// for the requested height. Detectors treat such a block as empty.
var ErrBlockUnavailable = errors.New("block unavailable")

// Activity is one entry of an address's recent history as reported by the chain.
type Activity struct {
	ID        string    // transaction signature or hash
	Position  uint64    // slot or block the transaction landed in
	BlockTime time.Time // zero when unknown
	Failed    bool      // true when the transaction executed with an error

	// From and To are the transaction parties when the source can report
	// them; they are left empty otherwise.
	From string
	To   string
}

// Transaction is a transaction included in a Block.
type Transaction struct {
	Hash  string
	From  string
	To    string   // empty for contract creations
	Value *big.Int // amount in the chain's base unit
}

// Block is a block with its transactions.
type Block struct {
	Height       uint64
	Hash         string
	Time         time.Time
	Transactions []Transaction
}

// HeightSource reports the current height (slot or block number) of a chain.
type HeightSource interface {
	// CurrentHeight returns the latest chain position known to the node.
	CurrentHeight(ctx context.Context) (uint64, error)
}

// ActivitySource lists the most recent transactions that touched an address.
type ActivitySource interface {
	// RecentActivity returns at most limit entries for address, newest first.
	// An address without history yields an empty slice and no error.
	RecentActivity(ctx context.Context, address string, limit int) ([]Activity, error)
}

// BlockSource reads whole blocks, including their transactions.
type BlockSource interface {
	HeightSource

	// Block returns the block at height. It returns ErrBlockUnavailable when
	// the node has no block at that height.
	Block(ctx context.Context, height uint64) (Block, error)
}
