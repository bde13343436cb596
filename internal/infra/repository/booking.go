package repository

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, start_time, end_time, item_id, booker_id, status)
		VALUES (@id, @start_time, @end_time, @item_id, @booker_id, @status)
	`
	_, err := dbtx.Exec(ctx, query, pgx.NamedArgs{
		"id":         b.ID(),
		"start_time": b.Slot().Start(),
		"end_time":   b.Slot().End(),
		"item_id":    b.ItemID(),
		"booker_id":  b.BookerID(),
		"status":     string(b.Status()),
	})
	if err != nil {
		return wrapWriteErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = @status, updated_at = now()
		WHERE id = @id
	`
	tag, err := dbtx.Exec(ctx, query, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return wrapWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found for status update", nil, infra.KindNotFound)
	}
	return nil
}

// FindByID loads the decision snapshot, joining the item so the caller
// can verify ownership without a second query. Inside a transaction the
// row is locked to serialize concurrent decisions.
func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	const query = `
		SELECT b.id, b.item_id, i.owner_id, b.booker_id, b.start_time, b.end_time, b.status
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.id = @id
		FOR UPDATE OF b
	`
	var (
		snap   commands.BookingSnapshot
		status string
	)
	err := dbtx.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(
		&snap.ID, &snap.ItemID, &snap.ItemOwnerID, &snap.BookerID, &snap.Start, &snap.End, &status,
	)
	if err != nil {
		return nil, wrapReadErr("failed to find booking", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

// CountCompletedApproved counts the author's finished rentals of the
// item. A rental ending exactly at now is still running for this
// purpose, matching the PAST classification.
func (r *BookingRepository) CountCompletedApproved(ctx context.Context, dbtx db.DBTX, bookerID, itemID uuid.UUID, now time.Time) (int64, error) {
	const query = `
		SELECT count(*)
		FROM bookings
		WHERE booker_id = @booker_id
		  AND item_id = @item_id
		  AND status = 'APPROVED'
		  AND end_time < @now
	`
	var count int64
	err := dbtx.QueryRow(ctx, query, pgx.NamedArgs{
		"booker_id": bookerID,
		"item_id":   itemID,
		"now":       now,
	}).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count completed bookings", err)
	}
	return count, nil
}
