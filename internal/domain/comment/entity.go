package comment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxTextLength = 1000

var (
	ErrEmptyText   = errors.New("comment text cannot be empty")
	ErrTextTooLong = errors.New("comment text exceeds maximum length")
)

// Comment is immutable once created. Eligibility (author completed an
// approved rental of the item) is checked by the use case before the
// entity is built.
type Comment struct {
	id       uuid.UUID
	text     string
	itemID   uuid.UUID
	authorID uuid.UUID
	created  time.Time
}

func NewComment(text string, itemID, authorID uuid.UUID, now time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}
	return &Comment{
		id:       uuid.New(),
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  now,
	}, nil
}

func (c *Comment) ID() uuid.UUID       { return c.id }
func (c *Comment) Text() string        { return c.text }
func (c *Comment) ItemID() uuid.UUID   { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }
func (c *Comment) Created() time.Time  { return c.created }
