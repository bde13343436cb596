package commands

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type PatchItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (uuid.UUID, error)
	Patch(ctx context.Context, actorID, itemID uuid.UUID, in PatchItemInput) error
	Delete(ctx context.Context, actorID, itemID uuid.UUID) error
	AddComment(ctx context.Context, authorID, itemID uuid.UUID, text string) (uuid.UUID, error)
}

type itemCommandsImpl struct {
	pool     *pgxpool.Pool
	items    ItemRepository
	reader   ItemReader
	users    UserReader
	requests RequestReader
	bookings BookingReader
	comments CommentRepository
	clk      clock.Clock
}

func NewItemCommands(
	pool *pgxpool.Pool,
	items ItemRepository,
	reader ItemReader,
	users UserReader,
	requests RequestReader,
	bookings BookingReader,
	comments CommentRepository,
	clk clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		pool:     pool,
		items:    items,
		reader:   reader,
		users:    users,
		requests: requests,
		bookings: bookings,
		comments: comments,
		clk:      clk,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (uuid.UUID, error) {
	if _, err := c.users.FindByID(ctx, c.pool, ownerID); err != nil {
		return uuid.Nil, markUserLookup(err, ownerID)
	}
	if in.RequestID != nil {
		exists, err := c.requests.Exists(ctx, c.pool, *in.RequestID)
		if err != nil {
			return uuid.Nil, errs.Wrap(err, "failed to check item request")
		}
		if !exists {
			return uuid.Nil, errs.Mark(errs.Newf("item request %s not found", *in.RequestID), ErrRequestNotFound)
		}
	}

	it, err := item.NewItem(in.Name, in.Description, in.Available, ownerID, in.RequestID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := c.items.Create(ctx, c.pool, it); err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create item")
	}
	return it.ID(), nil
}

// Patch updates only the fields present in the input. Every field is
// owner-writable and nothing else.
func (c *itemCommandsImpl) Patch(ctx context.Context, actorID, itemID uuid.UUID, in PatchItemInput) error {
	if _, err := c.users.FindByID(ctx, c.pool, actorID); err != nil {
		return markUserLookup(err, actorID)
	}
	snap, err := c.reader.FindByID(ctx, c.pool, itemID)
	if err != nil {
		return markItemLookup(err, itemID)
	}

	it := item.ReconstructItem(snap.ID, snap.Name, snap.Description, snap.Available, snap.OwnerID, snap.RequestID)
	if !it.IsOwnedBy(actorID) {
		return errs.Mark(errs.Newf("item %s is not owned by user %s", itemID, actorID), ErrNotItemOwner)
	}
	it.ApplyPatch(in.Name, in.Description, in.Available)
	if err := c.items.Update(ctx, c.pool, it); err != nil {
		return errs.Wrap(err, "failed to update item")
	}
	return nil
}

func (c *itemCommandsImpl) Delete(ctx context.Context, actorID, itemID uuid.UUID) error {
	snap, err := c.reader.FindByID(ctx, c.pool, itemID)
	if err != nil {
		return markItemLookup(err, itemID)
	}
	if snap.OwnerID != actorID {
		return errs.Mark(errs.Newf("item %s is not owned by user %s", itemID, actorID), ErrNotItemOwner)
	}
	if err := c.items.Delete(ctx, c.pool, itemID); err != nil {
		return errs.Wrap(err, "failed to delete item")
	}
	return nil
}

// AddComment accepts a review only from a booker whose APPROVED rental
// of the item has already ended.
func (c *itemCommandsImpl) AddComment(ctx context.Context, authorID, itemID uuid.UUID, text string) (uuid.UUID, error) {
	if _, err := c.users.FindByID(ctx, c.pool, authorID); err != nil {
		return uuid.Nil, markUserLookup(err, authorID)
	}
	if _, err := c.reader.FindByID(ctx, c.pool, itemID); err != nil {
		return uuid.Nil, markItemLookup(err, itemID)
	}

	now := c.clk.Now()
	completed, err := c.bookings.CountCompletedApproved(ctx, c.pool, authorID, itemID, now)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to count completed bookings")
	}
	if completed == 0 {
		return uuid.Nil, errs.Mark(
			errs.Newf("user %s has no completed rental of item %s", authorID, itemID),
			ErrCommentNotAllowed,
		)
	}

	cm, err := comment.NewComment(text, itemID, authorID, now)
	if err != nil {
		return uuid.Nil, err
	}
	if err := c.comments.Create(ctx, c.pool, cm); err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create comment")
	}
	return cm.ID(), nil
}
