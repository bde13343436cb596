package booking

import "strings"

// Status is the persisted booking lifecycle state. WAITING is initial;
// APPROVED and REJECTED are terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// State is the query-time classification used for listing bookings.
// Distinct from Status: CURRENT/PAST/FUTURE are relative to "now",
// WAITING/REJECTED mirror the persisted status, ALL matches everything.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// States lists every valid filter state. Order matters only for messages.
var States = []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

func (s State) String() string {
	return string(s)
}

// ParseState matches the request parameter case-insensitively against the
// six filter states. Anything else is a client error.
func ParseState(raw string) (State, error) {
	candidate := State(strings.ToUpper(strings.TrimSpace(raw)))
	for _, s := range States {
		if candidate == s {
			return s, nil
		}
	}
	return "", ErrUnknownState
}
