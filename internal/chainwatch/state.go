package chainwatch

// WatchState is the mutable record a Watch keeps between ticks: the last chain
// position it observed and the identifier of the last activity it reported.
//
// Both fields start unset. A WatchState belongs to exactly one Watch and is
// only touched from that Watch's goroutine, so it carries no locking. It is
// never persisted: a restarted process seeds again from scratch.
type WatchState struct {
	position    uint64
	hasPosition bool

	activityID  string
	hasActivity bool
}

// Position returns the last recorded chain position and whether one was recorded.
func (s *WatchState) Position() (uint64, bool) {
	return s.position, s.hasPosition
}

// SetPosition records p as the last observed chain position.
func (s *WatchState) SetPosition(p uint64) {
	s.position = p
	s.hasPosition = true
}

// ActivityID returns the last recorded activity identifier and whether one was recorded.
func (s *WatchState) ActivityID() (string, bool) {
	return s.activityID, s.hasActivity
}

// SetActivityID records id as the identifier of the last reported activity.
func (s *WatchState) SetActivityID(id string) {
	s.activityID = id
	s.hasActivity = true
}
