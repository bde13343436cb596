package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, dbtx db.DBTX, it *item.Item) error {
	const query = `
		INSERT INTO items (id, name, description, available, owner_id, request_id)
		VALUES (@id, @name, @description, @available, @owner_id, @request_id)
	`
	_, err := dbtx.Exec(ctx, query, pgx.NamedArgs{
		"id":          it.ID(),
		"name":        it.Name(),
		"description": it.Description(),
		"available":   it.Available(),
		"owner_id":    it.OwnerID(),
		"request_id":  it.RequestID(),
	})
	if err != nil {
		return wrapWriteErr("failed to insert item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, dbtx db.DBTX, it *item.Item) error {
	const query = `
		UPDATE items
		SET name = @name, description = @description, available = @available, updated_at = now()
		WHERE id = @id
	`
	tag, err := dbtx.Exec(ctx, query, pgx.NamedArgs{
		"id":          it.ID(),
		"name":        it.Name(),
		"description": it.Description(),
		"available":   it.Available(),
	})
	if err != nil {
		return wrapWriteErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found for update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM items WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return wrapWriteErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found for delete", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.ItemSnapshot, error) {
	const query = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = @id
	`
	var snap commands.ItemSnapshot
	err := dbtx.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(
		&snap.ID, &snap.Name, &snap.Description, &snap.Available, &snap.OwnerID, &snap.RequestID,
	)
	if err != nil {
		return nil, wrapReadErr("failed to find item", err)
	}
	return &snap, nil
}
