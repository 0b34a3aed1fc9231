package chainwatch

import (
	"context"
	"time"
)

// DefaultJumpThreshold is the height delta above which a jump is reported.
const DefaultJumpThreshold uint64 = 20

// heightJump reports height advances larger than a threshold, a hint of a
// node catching up after downtime or of a reorg.
type heightJump struct {
	chain     string
	source    HeightSource
	threshold uint64
	now       clock
}

var _ Detector = (*heightJump)(nil)

// NewHeightJump returns a Detector that emits one event whenever the chain
// height advanced by more than threshold since the previous tick. A zero
// threshold falls back to DefaultJumpThreshold.
func NewHeightJump(chain string, source HeightSource, threshold uint64) *heightJump {
	if threshold == 0 {
		threshold = DefaultJumpThreshold
	}

	return &heightJump{
		chain:     chain,
		source:    source,
		threshold: threshold,
		now:       time.Now,
	}
}

func (d *heightJump) Mode() Mode {
	return ModeHeightJump
}

// Detect stores the current height on every advance and reports the advance
// when it exceeds the threshold. A height that did not grow is ignored.
func (d *heightJump) Detect(ctx context.Context, state *WatchState) ([]ActivityEvent, error) {
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

	delta := current - stored
	state.SetPosition(current)

	if delta <= d.threshold {
		return nil, nil
	}

	event := ActivityEvent{
		Chain:            d.chain,
		Kind:             KindHeightJump,
		Position:         current,
		PreviousPosition: stored,
		Delta:            delta,
		ObservedAt:       d.now(),
	}

	return []ActivityEvent{event}, nil
}
