package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(ctx context.Context, dbtx db.DBTX, req *request.ItemRequest) error {
	const query = `
		INSERT INTO item_requests (id, description, requester_id, created_at)
		VALUES (@id, @description, @requester_id, @created_at)
	`
	_, err := dbtx.Exec(ctx, query, pgx.NamedArgs{
		"id":           req.ID(),
		"description":  req.Description(),
		"requester_id": req.RequesterID(),
		"created_at":   req.Created(),
	})
	if err != nil {
		return wrapWriteErr("failed to insert item request", err)
	}
	return nil
}

func (r *RequestRepository) Exists(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM item_requests WHERE id = @id)`
	var exists bool
	if err := dbtx.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check item request", err)
	}
	return exists, nil
}
