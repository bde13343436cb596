package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra/db"

	"github.com/google/uuid"
)

// Snapshots are flat read models for command-side decisions. They carry
// exactly the fields a use case inspects before writing, nothing more.

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	Name        string
	Description string
	Available   bool
	OwnerID     uuid.UUID
	RequestID   *uuid.UUID
}

type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	Start       time.Time
	End         time.Time
	Status      booking.Status
}

// Readers feed command-side decisions. They take a db.DBTX so a use case
// can point them at either the pool or an open transaction.

type UserReader interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*UserSnapshot, error)
}

type ItemReader interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ItemSnapshot, error)
}

type BookingReader interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	// CountCompletedApproved counts APPROVED bookings by the booker for
	// the item whose window has fully ended before now.
	CountCompletedApproved(ctx context.Context, dbtx db.DBTX, bookerID, itemID uuid.UUID, now time.Time) (int64, error)
}

type RequestReader interface {
	Exists(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
}

// Repositories persist aggregates.

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) error
	Update(ctx context.Context, dbtx db.DBTX, u *user.User) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ItemRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, it *item.Item) error
	Update(ctx context.Context, dbtx db.DBTX, it *item.Item) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
}

type CommentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *comment.Comment) error
}

type RequestRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *request.ItemRequest) error
}
