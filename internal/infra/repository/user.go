package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	const query = `
		INSERT INTO users (id, name, email)
		VALUES (@id, @name, @email)
	`
	_, err := dbtx.Exec(ctx, query, pgx.NamedArgs{
		"id":    u.ID(),
		"name":  u.Name(),
		"email": u.Email().String(),
	})
	if err != nil {
		return wrapWriteErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	const query = `
		UPDATE users
		SET name = @name, email = @email, updated_at = now()
		WHERE id = @id
	`
	tag, err := dbtx.Exec(ctx, query, pgx.NamedArgs{
		"id":    u.ID(),
		"name":  u.Name(),
		"email": u.Email().String(),
	})
	if err != nil {
		return wrapWriteErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found for update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM users WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return wrapWriteErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found for delete", nil, infra.KindNotFound)
	}
	return nil
}

// FindByID serves the command-side existence and snapshot checks.
func (r *UserRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.UserSnapshot, error) {
	const query = `SELECT id, name, email FROM users WHERE id = @id`
	var snap commands.UserSnapshot
	err := dbtx.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&snap.ID, &snap.Name, &snap.Email)
	if err != nil {
		return nil, wrapReadErr("failed to find user", err)
	}
	return &snap, nil
}
