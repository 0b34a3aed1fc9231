package chainwatch

import (
	"context"
	"time"
)

// DefaultLookback is the number of recent activity entries fetched per tick.
const DefaultLookback = 5

// addressActivity detects new transactions for one address by comparing the
// newest entry of its history with the last reported identifier.
type addressActivity struct {
	chain    string
	address  string
	source   ActivitySource
	lookback int
	now      clock
}

var _ Detector = (*addressActivity)(nil)

// NewAddressActivity returns a Detector that reports at most one event per
// tick: the newest transaction touching address, whenever it changes.
// A non-positive lookback falls back to DefaultLookback.
func NewAddressActivity(chain, address string, source ActivitySource, lookback int) *addressActivity {
	if lookback <= 0 {
		lookback = DefaultLookback
	}

	return &addressActivity{
		chain:    chain,
		address:  address,
		source:   source,
		lookback: lookback,
		now:      time.Now,
	}
}

func (d *addressActivity) Mode() Mode {
	return ModeAddressActivity
}

// Detect fetches the address history and compares its newest entry with the
// stored identifier.
//
//   - fetch error: returned as is, state untouched;
//   - empty history: nothing happens;
//   - first observation: the newest identifier is stored, no event;
//   - same identifier: nothing happens;
//   - different identifier: one event for the newest entry, identifier stored.
//
// Only the newest entry is reported even when several arrived since the last
// tick.
func (d *addressActivity) Detect(ctx context.Context, state *WatchState) ([]ActivityEvent, error) {
	history, err := d.source.RecentActivity(ctx, d.address, d.lookback)
	if err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, nil
	}

	latest := history[0]

	lastID, seeded := state.ActivityID()
	if !seeded {
		state.SetActivityID(latest.ID)
		state.SetPosition(latest.Position)
		return nil, nil
	}

	if latest.ID == lastID {
		return nil, nil
	}

	state.SetActivityID(latest.ID)
	state.SetPosition(latest.Position)

	event := ActivityEvent{
		Chain:      d.chain,
		Kind:       KindAddressActivity,
		Position:   latest.Position,
		Identifier: latest.ID,
		Direction:  directionOf(d.address, latest.From, latest.To),
		Failed:     latest.Failed,
		BlockTime:  latest.BlockTime,
		ObservedAt: d.now(),
	}

	return []ActivityEvent{event}, nil
}
