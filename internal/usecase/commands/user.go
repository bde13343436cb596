package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateUserInput struct {
	Name  string
	Email string
}

type PatchUserInput struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (uuid.UUID, error)
	Patch(ctx context.Context, id uuid.UUID, in PatchUserInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	pool   *pgxpool.Pool
	users  UserRepository
	reader UserReader
}

func NewUserCommands(pool *pgxpool.Pool, users UserRepository, reader UserReader) UserCommands {
	return &userCommandsImpl{pool: pool, users: users, reader: reader}
}

func (c *userCommandsImpl) Create(ctx context.Context, in CreateUserInput) (uuid.UUID, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	u, err := user.NewUser(in.Name, email)
	if err != nil {
		return uuid.Nil, err
	}
	if err := c.users.Create(ctx, c.pool, u); err != nil {
		return uuid.Nil, markEmailConflict(err, in.Email)
	}
	return u.ID(), nil
}

func (c *userCommandsImpl) Patch(ctx context.Context, id uuid.UUID, in PatchUserInput) error {
	snap, err := c.reader.FindByID(ctx, c.pool, id)
	if err != nil {
		return markUserLookup(err, id)
	}

	var email *user.Email
	if in.Email != nil {
		parsed, err := user.NewEmail(*in.Email)
		if err != nil {
			return err
		}
		email = &parsed
	}

	current, err := user.NewEmail(snap.Email)
	if err != nil {
		return errs.Wrap(err, "stored email is malformed")
	}
	u := user.ReconstructUser(snap.ID, snap.Name, current)
	u.ApplyPatch(in.Name, email)

	if err := c.users.Update(ctx, c.pool, u); err != nil {
		return markEmailConflict(err, u.Email().String())
	}
	return nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.users.Delete(ctx, c.pool, id); err != nil {
		return markUserLookup(err, id)
	}
	return nil
}

func markEmailConflict(err error, email string) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(errs.Newf("email %s is already taken", email), ErrEmailConflict)
	}
	return errs.Wrap(err, "failed to persist user")
}
