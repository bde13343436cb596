//go:build unit || e2e

package builder

import (
	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Available   bool
	OwnerID     uuid.UUID
	RequestID   *uuid.UUID
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		Name:        "Cordless Drill",
		Description: "18V drill with two batteries",
		Available:   true,
		OwnerID:     uuid.New(),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) Clone() *ItemBuilder {
	var c ItemBuilder
	_ = copier.Copy(&c, b)
	return &c
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.Name, b.Description, b.Available, b.OwnerID, b.RequestID)
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		OwnerID:     b.OwnerID,
		RequestID:   b.RequestID,
		Comments:    []queries.CommentView{},
	}
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := b.Available
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
		RequestID:   b.RequestID,
	}
}
