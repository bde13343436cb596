//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/comment"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentBuilder struct {
	ID         uuid.UUID
	Text       string
	ItemID     uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Created    time.Time
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		ID:         uuid.New(),
		Text:       "Worked great, would rent again",
		ItemID:     uuid.New(),
		AuthorID:   uuid.New(),
		AuthorName: "Bob Booker",
		Created:    time.Now(),
	}
}

func (b *CommentBuilder) With(mutate func(*CommentBuilder)) *CommentBuilder {
	mutate(b)
	return b
}

func (b *CommentBuilder) BuildDomain() (*comment.Comment, error) {
	return comment.NewComment(b.Text, b.ItemID, b.AuthorID, b.Created)
}

func (b *CommentBuilder) BuildView() *queries.CommentView {
	return &queries.CommentView{
		ID:         b.ID,
		Text:       b.Text,
		AuthorName: b.AuthorName,
		Created:    b.Created,
	}
}
