package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestReadStore struct {
	pool *pgxpool.Pool
}

func NewRequestReadStore(pool *pgxpool.Pool) *RequestReadStore {
	return &RequestReadStore{pool: pool}
}

const requestViewColumns = `id, description, created_at`

func (s *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	query := `SELECT ` + requestViewColumns + ` FROM item_requests WHERE id = @id`
	var v queries.RequestView
	err := s.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&v.ID, &v.Description, &v.Created)
	if err != nil {
		return nil, wrapReadErr("failed to find item request", err)
	}
	return &v, nil
}

func (s *RequestReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]queries.RequestView, error) {
	query := `
		SELECT ` + requestViewColumns + `
		FROM item_requests
		WHERE requester_id = @requester_id
		ORDER BY created_at DESC
	`
	return s.list(ctx, query, pgx.NamedArgs{"requester_id": requesterID})
}

func (s *RequestReadStore) FindOthers(ctx context.Context, userID uuid.UUID, page queries.Page) ([]queries.RequestView, error) {
	query := `
		SELECT ` + requestViewColumns + `
		FROM item_requests
		WHERE requester_id <> @user_id
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset
	`
	return s.list(ctx, query, pgx.NamedArgs{
		"user_id": userID,
		"limit":   page.Limit,
		"offset":  page.Offset,
	})
}

func (s *RequestReadStore) list(ctx context.Context, query string, args pgx.NamedArgs) ([]queries.RequestView, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	defer rows.Close()

	views := []queries.RequestView{}
	for rows.Next() {
		var v queries.RequestView
		if err := rows.Scan(&v.ID, &v.Description, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}
	return views, nil
}
