package chainwatch

import (
	"context"
	"strings"
	"time"
)

// Mode names the detection strategy a Watch runs.
type Mode string

const (
	ModeAddressActivity Mode = "address-activity"
	ModeRangeScan       Mode = "range-scan"
	ModeHeightJump      Mode = "height-jump"
)

// Detector compares the chain against a WatchState and reports what is new.
//
// Detect is called once per tick with the Watch's own state. It returns the
// events to deliver, in order. When it also returns an error, the events
// returned alongside it were already committed to the state and must still
// be delivered.
type Detector interface {
	Mode() Mode
	Detect(ctx context.Context, state *WatchState) ([]ActivityEvent, error)
}

// directionOf derives the direction of a transaction relative to address.
// Addresses are compared case-insensitively.
func directionOf(address, from, to string) Direction {
	switch {
	case from != "" && strings.EqualFold(from, address):
		return DirectionOut
	case to != "" && strings.EqualFold(to, address):
		return DirectionIn
	default:
		return DirectionUnknown
	}
}

// involves reports whether address is the sender or the recipient of tx.
func involves(address string, tx Transaction) bool {
	return strings.EqualFold(tx.From, address) || (tx.To != "" && strings.EqualFold(tx.To, address))
}

// clock is the time source used to stamp ObservedAt.
type clock func() time.Time
