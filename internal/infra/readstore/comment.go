package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentReadStore struct {
	pool *pgxpool.Pool
}

func NewCommentReadStore(pool *pgxpool.Pool) *CommentReadStore {
	return &CommentReadStore{pool: pool}
}

func (s *CommentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CommentView, error) {
	const query = `
		SELECT c.id, c.text, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = @id
	`
	var v queries.CommentView
	err := s.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&v.ID, &v.Text, &v.AuthorName, &v.Created)
	if err != nil {
		return nil, wrapReadErr("failed to find comment", err)
	}
	return &v, nil
}

// FindForItems loads comments for a whole page of items at once, newest
// first within each item.
func (s *CommentReadStore) FindForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]queries.CommentView, error) {
	const query = `
		SELECT c.id, c.text, c.item_id, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY(@item_ids)
		ORDER BY c.created_at DESC
	`
	rows, err := s.pool.Query(ctx, query, pgx.NamedArgs{"item_ids": itemIDs})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]queries.CommentView, len(itemIDs))
	for rows.Next() {
		var (
			v      queries.CommentView
			itemID uuid.UUID
		)
		if err := rows.Scan(&v.ID, &v.Text, &itemID, &v.AuthorName, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		grouped[itemID] = append(grouped[itemID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return grouped, nil
}
