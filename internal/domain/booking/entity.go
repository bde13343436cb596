package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot = errors.New("end time must be after start time")
	ErrTimeSlotInPast  = errors.New("booking cannot start in the past")
	ErrAlreadyApproved = errors.New("booking is already approved")
	ErrUnknownState    = errors.New("unknown state")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

// TimeSlot is the half-open rental window [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot validates a requested window against "now". Both bounds must
// be present-or-future and end must be strictly after start.
func NewTimeSlot(start, end, now time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	if start.Before(now) {
		return TimeSlot{}, ErrTimeSlotInPast
	}
	return TimeSlot{start: start, end: end}, nil
}

// ReconstructTimeSlot rehydrates a persisted window without the
// present-or-future check; stored bookings legitimately live in the past.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Contains reports whether now falls inside the window, bounds inclusive.
func (ts TimeSlot) Contains(now time.Time) bool {
	return !now.Before(ts.start) && !now.After(ts.end)
}

func (ts TimeSlot) EndedBefore(now time.Time) bool {
	return ts.end.Before(now)
}

func (ts TimeSlot) StartsAfter(now time.Time) bool {
	return ts.start.After(now)
}

type Booking struct {
	id       uuid.UUID
	itemID   uuid.UUID
	bookerID uuid.UUID
	slot     TimeSlot
	status   Status
}

// NewBooking creates a booking request in the initial WAITING state.
// Owner-vs-booker and item availability checks belong to the use case,
// which sees the item; the entity only owns its own invariants.
func NewBooking(itemID, bookerID uuid.UUID, slot TimeSlot) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		bookerID: bookerID,
		slot:     slot,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(id, itemID, bookerID uuid.UUID, slot TimeSlot, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		slot:     slot,
		status:   status,
	}
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) ItemID() uuid.UUID   { return b.itemID }
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }
func (b *Booking) Slot() TimeSlot      { return b.slot }
func (b *Booking) Status() Status      { return b.status }

// Decide applies the owner's approval decision. APPROVED is terminal and
// rejects any further decision; a REJECTED booking stays re-decidable.
func (b *Booking) Decide(approved bool) error {
	if b.status == StatusApproved {
		return ErrAlreadyApproved
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// VisibleTo restricts a booking to its two parties: the booker and the
// owner of the booked item.
func (b *Booking) VisibleTo(userID, itemOwnerID uuid.UUID) bool {
	return b.bookerID == userID || itemOwnerID == userID
}
