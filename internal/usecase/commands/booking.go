package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateBookingInput struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (uuid.UUID, error)
	Decide(ctx context.Context, ownerID, bookingID uuid.UUID, approved bool) error
}

type bookingCommandsImpl struct {
	pool     *pgxpool.Pool
	bookings BookingRepository
	reader   BookingReader
	users    UserReader
	items    ItemReader
	clk      clock.Clock
}

func NewBookingCommands(
	pool *pgxpool.Pool,
	bookings BookingRepository,
	reader BookingReader,
	users UserReader,
	items ItemReader,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		pool:     pool,
		bookings: bookings,
		reader:   reader,
		users:    users,
		items:    items,
		clk:      clk,
	}
}

// Create registers a booking request in WAITING state. Overlapping
// requests for the same item are allowed; the owner arbitrates through
// Decide.
func (c *bookingCommandsImpl) Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (uuid.UUID, error) {
	if _, err := c.users.FindByID(ctx, c.pool, bookerID); err != nil {
		return uuid.Nil, markUserLookup(err, bookerID)
	}
	itm, err := c.items.FindByID(ctx, c.pool, in.ItemID)
	if err != nil {
		return uuid.Nil, markItemLookup(err, in.ItemID)
	}
	if itm.OwnerID == bookerID {
		return uuid.Nil, errs.Mark(errs.Newf("user %s owns item %s", bookerID, in.ItemID), ErrOwnItemBooking)
	}
	if !itm.Available {
		return uuid.Nil, errs.Mark(errs.Newf("item %s is unavailable", in.ItemID), ErrItemUnavailable)
	}

	slot, err := booking.NewTimeSlot(in.Start, in.End, c.clk.Now())
	if err != nil {
		return uuid.Nil, err
	}

	b := booking.NewBooking(in.ItemID, bookerID, slot)
	if err := c.bookings.Create(ctx, c.pool, b); err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create booking")
	}
	return b.ID(), nil
}

// Decide lets the item's owner approve or reject a WAITING (or
// previously rejected) booking. The read-decide-write runs inside one
// transaction so concurrent decisions cannot both pass the status check.
func (c *bookingCommandsImpl) Decide(ctx context.Context, ownerID, bookingID uuid.UUID, approved bool) error {
	if _, err := c.users.FindByID(ctx, c.pool, ownerID); err != nil {
		return markUserLookup(err, ownerID)
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	snap, err := c.reader.FindByID(ctx, tx, bookingID)
	if err != nil {
		return markBookingLookup(err, bookingID)
	}
	if snap.ItemOwnerID != ownerID {
		// Hidden from non-owners, same answer as a missing id.
		return errs.Mark(errs.Newf("booking %s is not owned by user %s", bookingID, ownerID), ErrBookingNotFound)
	}

	b := booking.ReconstructBooking(
		snap.ID, snap.ItemID, snap.BookerID,
		booking.ReconstructTimeSlot(snap.Start, snap.End),
		snap.Status,
	)
	if err := b.Decide(approved); err != nil {
		return err
	}
	if err := c.bookings.UpdateStatus(ctx, tx, bookingID, b.Status()); err != nil {
		return errs.Wrap(err, "failed to update booking status")
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit booking decision")
	}
	return nil
}
