package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrBookingNotFound = errs.New("booking not found")
)

// BookingReadStore loads booking projections. List methods receive the
// already-classified state together with the evaluation instant so every
// time comparison in one request shares a single "now".
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindForBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, now time.Time, page Page) ([]BookingView, error)
	FindForOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, now time.Time, page Page) ([]BookingView, error)
	FindApprovedForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]item.BookingRef, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID, bookingID uuid.UUID) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID uuid.UUID, state string, from, size int) ([]BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, from, size int) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	items    ItemReadStore
	clk      clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, items ItemReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users, items: items, clk: clk}
}

// GetByID returns the booking only to its booker or the item's owner.
// Anyone else gets the same not-found answer as for a missing id.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, bookingID uuid.UUID) (*BookingView, error) {
	if err := q.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, markBookingLookup(err, bookingID)
	}
	if view.Booker.ID != actorID && view.Item.OwnerID != actorID {
		return nil, errs.Mark(errs.Newf("booking %s is not visible to user %s", bookingID, actorID), ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID uuid.UUID, state string, from, size int) ([]BookingView, error) {
	st, err := booking.ParseState(state)
	if err != nil {
		return nil, err
	}
	if err := q.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	views, err := q.bookings.FindForBooker(ctx, bookerID, st, q.clk.Now(), NewPage(from, size))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings for booker")
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, from, size int) ([]BookingView, error) {
	st, err := booking.ParseState(state)
	if err != nil {
		return nil, err
	}
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	// An owner without items cannot have bookings against them, so skip
	// the join entirely.
	hasItems, err := q.items.OwnerHasItems(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check owner items")
	}
	if !hasItems {
		return []BookingView{}, nil
	}

	views, err := q.bookings.FindForOwner(ctx, ownerID, st, q.clk.Now(), NewPage(from, size))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings for owner")
	}
	return views, nil
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		return markUserLookup(err, userID)
	}
	return nil
}
