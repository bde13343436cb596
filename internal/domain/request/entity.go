package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errors.New("request description cannot be empty")

// ItemRequest is a wish for an item that is not listed yet. Owners may
// later create items answering the request (Item.RequestID).
type ItemRequest struct {
	id          uuid.UUID
	description string
	requesterID uuid.UUID
	created     time.Time
}

func NewItemRequest(description string, requesterID uuid.UUID, now time.Time) (*ItemRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &ItemRequest{
		id:          uuid.New(),
		description: description,
		requesterID: requesterID,
		created:     now,
	}, nil
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) RequesterID() uuid.UUID { return r.requesterID }
func (r *ItemRequest) Created() time.Time     { return r.created }
