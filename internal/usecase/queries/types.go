package queries

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Page translates the boundary's from/size parameters into a zero-based
// block window. The offset snaps to the start of the size-aligned block
// containing "from".
type Page struct {
	Limit  int32
	Offset int32
}

func NewPage(from, size int) Page {
	if size < 1 {
		size = 1
	}
	if from < 0 {
		from = 0
	}
	// Clamp before narrowing to int32 so extreme inputs cannot wrap
	// into a negative OFFSET or LIMIT.
	from = min(from, math.MaxInt32)
	size = min(size, math.MaxInt32)
	block := from / size
	return Page{Limit: int32(size), Offset: int32(block * size)}
}

// Read models (DTO for read side)

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type BookingItemRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"-"` // visibility checks only, never serialized
}

type BookerRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID     uuid.UUID      `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status string         `json:"status"`
	Item   BookingItemRef `json:"item"`
	Booker BookerRef      `json:"booker"`
}

// BookingBrief is the owner-only last/next projection on an item view.
type BookingBrief struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	OwnerID     uuid.UUID     `json:"-"`
	RequestID   *uuid.UUID    `json:"requestId,omitempty"`
	LastBooking *BookingBrief `json:"lastBooking,omitempty"`
	NextBooking *BookingBrief `json:"nextBooking,omitempty"`
	Comments    []CommentView `json:"comments"`
}

// RequestAnswer is an item offered in answer to an item request.
type RequestAnswer struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type RequestView struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []RequestAnswer `json:"items"`
}
