//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Start      time.Time
	End        time.Time
	Status     booking.Status
	Now        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		ItemName:   "Cordless Drill",
		OwnerID:    uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "Bob Booker",
		Start:      now.Add(time.Hour),
		End:        now.Add(2 * time.Hour),
		Status:     booking.StatusWaiting,
		Now:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Clone() *BookingBuilder {
	var c BookingBuilder
	_ = copier.Copy(&c, b)
	return &c
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(b.Start, b.End, b.Now)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ItemID, b.BookerID, slot), nil
}

// BuildReconstructed skips creation-time window checks so past rentals
// can be represented.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.ItemID, b.BookerID,
		booking.ReconstructTimeSlot(b.Start, b.End),
		b.Status,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Item:   queries.BookingItemRef{ID: b.ItemID, Name: b.ItemName, OwnerID: b.OwnerID},
		Booker: queries.BookerRef{ID: b.BookerID, Name: b.BookerName},
	}
}

func (b *BookingBuilder) BuildRef() item.BookingRef {
	return item.BookingRef{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
		Status:   b.Status,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{ItemID: b.ItemID, Start: b.Start, End: b.End}
}
