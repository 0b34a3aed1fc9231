package chainwatch

import (
	"context"
	"errors"
	"time"
)

// rangeScan walks every new block and reports transactions sent from or to
// the watched address.
type rangeScan struct {
	chain   string
	address string
	source  BlockSource
	now     clock
}

var _ Detector = (*rangeScan)(nil)

// NewRangeScan returns a Detector that scans all blocks produced since the
// previous tick, in ascending order, for transactions involving address.
func NewRangeScan(chain, address string, source BlockSource) *rangeScan {
	return &rangeScan{
		chain:   chain,
		address: address,
		source:  source,
		now:     time.Now,
	}
}

func (d *rangeScan) Mode() Mode {
	return ModeRangeScan
}

// Detect scans (stored, current] block by block.
//
// The first tick only records the current height. The stored position is
// advanced after each block, so when fetching a block fails the blocks before
// it stay committed and the events found in them are returned together with
// the error. A block reported as unavailable counts as empty.
//
// The first matching transaction ever seen only seeds the stored identifier;
// the rest of that block is skipped. Later matches are reported whenever
// their hash differs from the last reported one.
func (d *rangeScan) Detect(ctx context.Context, state *WatchState) ([]ActivityEvent, error) {
	current, err := d.source.CurrentHeight(ctx)
	if err != nil {
		return nil, err
	}

	stored, seeded := state.Position()
	if !seeded {
		state.SetPosition(current)
		return nil, nil
	}

	if current <= stored {
		return nil, nil
	}

	var events []ActivityEvent
	for height := stored + 1; height <= current; height++ {
		block, err := d.source.Block(ctx, height)
		if err != nil && !errors.Is(err, ErrBlockUnavailable) {
			return events, err
		}

		events = append(events, d.scanBlock(height, block, state)...)
		state.SetPosition(height)
	}

	return events, nil
}

// scanBlock returns the events for the transactions of block that involve the
// watched address, updating the stored identifier as it goes.
func (d *rangeScan) scanBlock(height uint64, block Block, state *WatchState) []ActivityEvent {
	var events []ActivityEvent
	for _, tx := range block.Transactions {
		if !involves(d.address, tx) {
			continue
		}

		lastID, seeded := state.ActivityID()
		if !seeded {
			state.SetActivityID(tx.Hash)
			break
		}

		if tx.Hash == lastID {
			continue
		}

		state.SetActivityID(tx.Hash)
		events = append(events, ActivityEvent{
			Chain:      d.chain,
			Kind:       KindAddressActivity,
			Position:   height,
			Identifier: tx.Hash,
			Direction:  directionOf(d.address, tx.From, tx.To),
			Value:      tx.Value,
			BlockTime:  block.Time,
			ObservedAt: d.now(),
		})
	}

	return events
}
