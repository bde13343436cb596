package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemReadStore struct {
	pool *pgxpool.Pool
}

func NewItemReadStore(pool *pgxpool.Pool) *ItemReadStore {
	return &ItemReadStore{pool: pool}
}

const itemViewColumns = `id, name, description, available, owner_id, request_id`

func (s *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	query := `SELECT ` + itemViewColumns + ` FROM items WHERE id = @id`
	row := s.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	view, err := scanItemView(row)
	if err != nil {
		return nil, wrapReadErr("failed to find item", err)
	}
	return view, nil
}

func (s *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, page queries.Page) ([]queries.ItemView, error) {
	query := `
		SELECT ` + itemViewColumns + `
		FROM items
		WHERE owner_id = @owner_id
		ORDER BY created_at
		LIMIT @limit OFFSET @offset
	`
	return s.list(ctx, query, pgx.NamedArgs{
		"owner_id": ownerID,
		"limit":    page.Limit,
		"offset":   page.Offset,
	})
}

// Search matches name or description case-insensitively; only available
// items are offered.
func (s *ItemReadStore) Search(ctx context.Context, text string, page queries.Page) ([]queries.ItemView, error) {
	query := `
		SELECT ` + itemViewColumns + `
		FROM items
		WHERE available
		  AND (name ILIKE @pattern OR description ILIKE @pattern)
		ORDER BY created_at
		LIMIT @limit OFFSET @offset
	`
	return s.list(ctx, query, pgx.NamedArgs{
		"pattern": "%" + text + "%",
		"limit":   page.Limit,
		"offset":  page.Offset,
	})
}

func (s *ItemReadStore) OwnerHasItems(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM items WHERE owner_id = @owner_id)`
	var exists bool
	if err := s.pool.QueryRow(ctx, query, pgx.NamedArgs{"owner_id": ownerID}).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check owner items", err)
	}
	return exists, nil
}

// FindByRequestIDs loads the items answering the given requests, grouped
// by request.
func (s *ItemReadStore) FindByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]queries.RequestAnswer, error) {
	const query = `
		SELECT id, name, description, available, request_id
		FROM items
		WHERE request_id = ANY(@request_ids)
		ORDER BY created_at
	`
	rows, err := s.pool.Query(ctx, query, pgx.NamedArgs{"request_ids": requestIDs})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by request", err)
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]queries.RequestAnswer, len(requestIDs))
	for rows.Next() {
		var a queries.RequestAnswer
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Available, &a.RequestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request answer", err)
		}
		grouped[*a.RequestID] = append(grouped[*a.RequestID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request answers", err)
	}
	return grouped, nil
}

func (s *ItemReadStore) list(ctx context.Context, query string, args pgx.NamedArgs) ([]queries.ItemView, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	views := []queries.ItemView{}
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return views, nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var v queries.ItemView
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &v.RequestID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
