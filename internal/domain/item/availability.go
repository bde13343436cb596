package item

import (
	"time"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingRef is the slice of a booking the availability projection needs.
// Aggregation works over these references instead of full entities so the
// read side can feed it straight from a grouped query.
type BookingRef struct {
	ID       uuid.UUID
	BookerID uuid.UUID
	Start    time.Time
	End      time.Time
	Status   booking.Status
}

// LastBooking picks the APPROVED booking with the greatest end at or
// before now: the most recently concluded rental. Returns nil when the
// item has never been rented.
func LastBooking(refs []BookingRef, now time.Time) *BookingRef {
	var last *BookingRef
	for i := range refs {
		ref := &refs[i]
		if ref.Status != booking.StatusApproved || ref.End.After(now) {
			continue
		}
		if last == nil || ref.End.After(last.End) {
			last = ref
		}
	}
	return last
}

// NextBooking picks the APPROVED booking with the smallest start strictly
// after now: the soonest upcoming rental. Independent of LastBooking; an
// item may have either, both, or neither.
func NextBooking(refs []BookingRef, now time.Time) *BookingRef {
	var next *BookingRef
	for i := range refs {
		ref := &refs[i]
		if ref.Status != booking.StatusApproved || !ref.Start.After(now) {
			continue
		}
		if next == nil || ref.Start.Before(next.Start) {
			next = ref
		}
	}
	return next
}
