//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func duplicateKeyErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindDuplicateKey)
}

func TestUserCommandsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("basic success case", func(t *testing.T) {
		repo := new(MockUserRepository)
		reader := new(MockUserReader)
		repo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Name() == "Alice Sharer" && u.Email().String() == "alice@example.com"
		})).Return(nil)

		id, err := commands.NewUserCommands(nil, repo, reader).
			Create(ctx, commands.CreateUserInput{Name: "Alice Sharer", Email: "alice@example.com"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		repo.AssertExpectations(t)
	})

	t.Run("malformed email fails before persisting", func(t *testing.T) {
		repo := new(MockUserRepository)
		reader := new(MockUserReader)

		_, err := commands.NewUserCommands(nil, repo, reader).
			Create(ctx, commands.CreateUserInput{Name: "Alice", Email: "not-an-email"})
		require.ErrorIs(t, err, user.ErrInvalidEmail)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		reader := new(MockUserReader)
		repo.On("Create", ctx, mock.Anything, mock.Anything).Return(duplicateKeyErr("duplicate email"))

		_, err := commands.NewUserCommands(nil, repo, reader).
			Create(ctx, commands.CreateUserInput{Name: "Alice", Email: "alice@example.com"})
		require.ErrorIs(t, err, commands.ErrEmailConflict)
	})
}

func TestUserCommandsPatch(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	snap := &commands.UserSnapshot{ID: id, Name: "Alice", Email: "alice@example.com"}
	strPtr := func(s string) *string { return &s }

	t.Run("email change hits a conflict", func(t *testing.T) {
		repo := new(MockUserRepository)
		reader := new(MockUserReader)
		reader.On("FindByID", ctx, mock.Anything, id).Return(snap, nil)
		repo.On("Update", ctx, mock.Anything, mock.Anything).Return(duplicateKeyErr("duplicate email"))

		err := commands.NewUserCommands(nil, repo, reader).
			Patch(ctx, id, commands.PatchUserInput{Email: strPtr("taken@example.com")})
		require.ErrorIs(t, err, commands.ErrEmailConflict)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		reader := new(MockUserReader)
		reader.On("FindByID", ctx, mock.Anything, id).Return(nil, notFoundErr("no user"))

		err := commands.NewUserCommands(nil, repo, reader).
			Patch(ctx, id, commands.PatchUserInput{Name: strPtr("Alicia")})
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("name only keeps the stored email", func(t *testing.T) {
		repo := new(MockUserRepository)
		reader := new(MockUserReader)
		reader.On("FindByID", ctx, mock.Anything, id).Return(snap, nil)
		repo.On("Update", ctx, mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Name() == "Alicia" && u.Email().String() == "alice@example.com"
		})).Return(nil)

		err := commands.NewUserCommands(nil, repo, reader).
			Patch(ctx, id, commands.PatchUserInput{Name: strPtr("Alicia")})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
