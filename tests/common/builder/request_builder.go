//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID          uuid.UUID
	Description string
	RequesterID uuid.UUID
	Created     time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:          uuid.New(),
		Description: "Looking for a tile cutter for a weekend",
		RequesterID: uuid.New(),
		Created:     time.Now(),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) BuildDomain() (*request.ItemRequest, error) {
	return request.NewItemRequest(b.Description, b.RequesterID, b.Created)
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:          b.ID,
		Description: b.Description,
		Created:     b.Created,
		Items:       []queries.RequestAnswer{},
	}
}
