package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type CommentRepository struct{}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(ctx context.Context, dbtx db.DBTX, c *comment.Comment) error {
	const query = `
		INSERT INTO comments (id, text, item_id, author_id, created_at)
		VALUES (@id, @text, @item_id, @author_id, @created_at)
	`
	_, err := dbtx.Exec(ctx, query, pgx.NamedArgs{
		"id":         c.ID(),
		"text":       c.Text(),
		"item_id":    c.ItemID(),
		"author_id":  c.AuthorID(),
		"created_at": c.Created(),
	})
	if err != nil {
		return wrapWriteErr("failed to insert comment", err)
	}
	return nil
}
