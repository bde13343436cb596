//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/comment"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemCommandMocks struct {
	items    *MockItemRepository
	reader   *MockItemReader
	users    *MockUserReader
	requests *MockRequestReader
	bookings *MockBookingReader
	comments *MockCommentRepository
}

func newItemCommands(now time.Time) (commands.ItemCommands, *itemCommandMocks) {
	m := &itemCommandMocks{
		items:    new(MockItemRepository),
		reader:   new(MockItemReader),
		users:    new(MockUserReader),
		requests: new(MockRequestReader),
		bookings: new(MockBookingReader),
		comments: new(MockCommentRepository),
	}
	cmds := commands.NewItemCommands(nil, m.items, m.reader, m.users, m.requests, m.bookings, m.comments, clock.NewMockClock(now))
	return cmds, m
}

func TestItemCommandsCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	ownerID := uuid.New()
	ownerSnap := &commands.UserSnapshot{ID: ownerID, Name: "Alice Sharer", Email: "alice@example.com"}
	input := commands.CreateItemInput{Name: "Cordless Drill", Description: "18V drill with two batteries", Available: true}

	t.Run("basic success case", func(t *testing.T) {
		cmds, m := newItemCommands(now)
		m.users.On("FindByID", ctx, mock.Anything, ownerID).Return(ownerSnap, nil)
		m.items.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)

		id, err := cmds.Create(ctx, ownerID, input)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		m.requests.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("answering an existing request", func(t *testing.T) {
		cmds, m := newItemCommands(now)
		requestID := uuid.New()

		m.users.On("FindByID", ctx, mock.Anything, ownerID).Return(ownerSnap, nil)
		m.requests.On("Exists", ctx, mock.Anything, requestID).Return(true, nil)
		m.items.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)

		in := input
		in.RequestID = &requestID
		_, err := cmds.Create(ctx, ownerID, in)
		require.NoError(t, err)
	})

	t.Run("answering a missing request", func(t *testing.T) {
		cmds, m := newItemCommands(now)
		requestID := uuid.New()

		m.users.On("FindByID", ctx, mock.Anything, ownerID).Return(ownerSnap, nil)
		m.requests.On("Exists", ctx, mock.Anything, requestID).Return(false, nil)

		in := input
		in.RequestID = &requestID
		_, err := cmds.Create(ctx, ownerID, in)
		require.ErrorIs(t, err, commands.ErrRequestNotFound)
		m.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestItemCommandsPatch(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	ownerID := uuid.New()
	itemID := uuid.New()
	ownerSnap := &commands.UserSnapshot{ID: ownerID, Name: "Alice Sharer", Email: "alice@example.com"}
	snap := &commands.ItemSnapshot{
		ID:          itemID,
		Name:        "Cordless Drill",
		Description: "18V drill with two batteries",
		Available:   true,
		OwnerID:     ownerID,
	}
	strPtr := func(s string) *string { return &s }

	t.Run("owner can patch", func(t *testing.T) {
		cmds, m := newItemCommands(now)
		m.users.On("FindByID", ctx, mock.Anything, ownerID).Return(ownerSnap, nil)
		m.reader.On("FindByID", ctx, mock.Anything, itemID).Return(snap, nil)
		m.items.On("Update", ctx, mock.Anything, mock.Anything).Return(nil)

		err := cmds.Patch(ctx, ownerID, itemID, commands.PatchItemInput{Name: strPtr("Impact Driver")})
		require.NoError(t, err)
		m.items.AssertExpectations(t)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		cmds, m := newItemCommands(now)
		stranger := uuid.New()
		m.users.On("FindByID", ctx, mock.Anything, stranger).Return(ownerSnap, nil)
		m.reader.On("FindByID", ctx, mock.Anything, itemID).Return(snap, nil)

		err := cmds.Patch(ctx, stranger, itemID, commands.PatchItemInput{Name: strPtr("Impact Driver")})
		require.ErrorIs(t, err, commands.ErrNotItemOwner)
		m.items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestItemCommandsAddComment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	authorID := uuid.New()
	itemID := uuid.New()
	authorSnap := &commands.UserSnapshot{ID: authorID, Name: "Bob Booker", Email: "bob@example.com"}
	snap := &commands.ItemSnapshot{
		ID:          itemID,
		Name:        "Cordless Drill",
		Description: "18V drill with two batteries",
		Available:   true,
		OwnerID:     uuid.New(),
	}

	t.Run("completed rental allows commenting", func(t *testing.T) {
		cmds, m := newItemCommands(now)
		m.users.On("FindByID", ctx, mock.Anything, authorID).Return(authorSnap, nil)
		m.reader.On("FindByID", ctx, mock.Anything, itemID).Return(snap, nil)
		m.bookings.On("CountCompletedApproved", ctx, mock.Anything, authorID, itemID, now).Return(int64(1), nil)
		m.comments.On("Create", ctx, mock.Anything, mock.MatchedBy(func(cm *comment.Comment) bool {
			return cm.ItemID() == itemID && cm.AuthorID() == authorID
		})).Return(nil)

		id, err := cmds.AddComment(ctx, authorID, itemID, "Worked great, would rent again")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		m.comments.AssertExpectations(t)
	})

	t.Run("no completed rental", func(t *testing.T) {
		cmds, m := newItemCommands(now)
		m.users.On("FindByID", ctx, mock.Anything, authorID).Return(authorSnap, nil)
		m.reader.On("FindByID", ctx, mock.Anything, itemID).Return(snap, nil)
		m.bookings.On("CountCompletedApproved", ctx, mock.Anything, authorID, itemID, now).Return(int64(0), nil)

		_, err := cmds.AddComment(ctx, authorID, itemID, "never used it")
		require.ErrorIs(t, err, commands.ErrCommentNotAllowed)
		m.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown item", func(t *testing.T) {
		cmds, m := newItemCommands(now)
		m.users.On("FindByID", ctx, mock.Anything, authorID).Return(authorSnap, nil)
		m.reader.On("FindByID", ctx, mock.Anything, itemID).Return(nil, notFoundErr("no item"))

		_, err := cmds.AddComment(ctx, authorID, itemID, "great")
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})
}
