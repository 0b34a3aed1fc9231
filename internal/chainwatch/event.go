package chainwatch

import (
	"math/big"
	"time"
)

// Kind classifies an ActivityEvent.
type Kind string

const (
	// KindAddressActivity marks a new transaction touching the watched address.
	KindAddressActivity Kind = "address-activity"

	// KindHeightJump marks an abnormally large advance of the chain height.
	KindHeightJump Kind = "height-jump"
)

// Direction tells whether the watched address received or sent a transaction.
type Direction string

const (
	DirectionUnknown Direction = ""
	DirectionIn      Direction = "in"
	DirectionOut     Direction = "out"
)

// ActivityEvent is a single detection produced by a tick. Events are built by
// detectors, handed to the EventHandler once and never modified afterwards.
type ActivityEvent struct {
	Chain string // display name of the chain the event was observed on
	Kind  Kind

	// Position is the slot or block holding the activity, or the resulting
	// height for a height jump.
	Position uint64

	// PreviousPosition and Delta are only set for KindHeightJump.
	PreviousPosition uint64
	Delta            uint64

	Identifier string    // transaction signature or hash; empty for height jumps
	Direction  Direction // DirectionUnknown when the source does not report parties
	Value      *big.Int  // amount moved in the chain's base unit; nil when unknown
	Failed     bool      // true when the transaction executed with an error
	BlockTime  time.Time // zero when the chain did not report it

	ObservedAt time.Time
}
