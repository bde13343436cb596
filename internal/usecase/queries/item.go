package queries

import (
	"context"
	"strings"

	"shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]ItemView, error)
	// Search matches name or description case-insensitively among
	// available items only.
	Search(ctx context.Context, text string, page Page) ([]ItemView, error)
	OwnerHasItems(ctx context.Context, ownerID uuid.UUID) (bool, error)
	FindByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]RequestAnswer, error)
}

type CommentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CommentView, error)
	FindForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]CommentView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, viewerID, itemID uuid.UUID) (*ItemView, error)
	GetComment(ctx context.Context, commentID uuid.UUID) (*CommentView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]ItemView, error)
	Search(ctx context.Context, text string, from, size int) ([]ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	comments CommentReadStore
	bookings BookingReadStore
	users    UserReadStore
	clk      clock.Clock
}

func NewItemQueries(
	items ItemReadStore,
	comments CommentReadStore,
	bookings BookingReadStore,
	users UserReadStore,
	clk clock.Clock,
) ItemQueries {
	return &itemQueriesImpl{items: items, comments: comments, bookings: bookings, users: users, clk: clk}
}

// GetByID returns the item with its comments. The last/next booking
// projections are filled only when the viewer is the owner.
func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, itemID uuid.UUID) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, markItemLookup(err, itemID)
	}

	views := []ItemView{*view}
	withBookings := view.OwnerID == viewerID
	if err := q.decorate(ctx, views, withBookings); err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (q *itemQueriesImpl) GetComment(ctx context.Context, commentID uuid.UUID) (*CommentView, error) {
	view, err := q.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load comment")
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]ItemView, error) {
	if _, err := q.users.FindByID(ctx, ownerID); err != nil {
		return nil, markUserLookup(err, ownerID)
	}

	views, err := q.items.FindByOwner(ctx, ownerID, NewPage(from, size))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list items by owner")
	}
	if err := q.decorate(ctx, views, true); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, from, size int) ([]ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []ItemView{}, nil
	}
	views, err := q.items.Search(ctx, text, NewPage(from, size))
	if err != nil {
		return nil, errs.Wrap(err, "failed to search items")
	}
	if err := q.decorate(ctx, views, false); err != nil {
		return nil, err
	}
	return views, nil
}

// decorate attaches comments and, when requested, the owner's last/next
// approved booking to each view. Both lookups are batched over the whole
// page so a list never multiplies round trips.
func (q *itemQueriesImpl) decorate(ctx context.Context, views []ItemView, withBookings bool) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	for i := range views {
		ids[i] = views[i].ID
	}

	comments, err := q.comments.FindForItems(ctx, ids)
	if err != nil {
		return errs.Wrap(err, "failed to load comments")
	}
	var approved map[uuid.UUID][]item.BookingRef
	if withBookings {
		approved, err = q.bookings.FindApprovedForItems(ctx, ids)
		if err != nil {
			return errs.Wrap(err, "failed to load bookings for items")
		}
	}

	now := q.clk.Now()
	for i := range views {
		cs := comments[views[i].ID]
		if cs == nil {
			cs = []CommentView{}
		}
		views[i].Comments = cs
		if !withBookings {
			continue
		}
		refs := approved[views[i].ID]
		views[i].LastBooking = toBrief(item.LastBooking(refs, now))
		views[i].NextBooking = toBrief(item.NextBooking(refs, now))
	}
	return nil
}

func toBrief(ref *item.BookingRef) *BookingBrief {
	if ref == nil {
		return nil
	}
	return &BookingBrief{ID: ref.ID, BookerID: ref.BookerID, Start: ref.Start, End: ref.End}
}
