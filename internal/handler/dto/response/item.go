package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBriefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	RequestID   *uuid.UUID            `json:"requestId,omitempty"`
	LastBooking *BookingBriefResponse `json:"lastBooking"`
	NextBooking *BookingBriefResponse `json:"nextBooking"`
	Comments    []CommentResponse     `json:"comments"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	comments := make([]CommentResponse, len(v.Comments))
	for i, cv := range v.Comments {
		comments[i] = CommentResponse{ID: cv.ID, Text: cv.Text, AuthorName: cv.AuthorName, Created: cv.Created}
	}
	return &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		RequestID:   v.RequestID,
		LastBooking: fromBrief(v.LastBooking),
		NextBooking: fromBrief(v.NextBooking),
		Comments:    comments,
	}
}

func FromItemViews(views []queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, len(views))
	for i := range views {
		out[i] = FromItemView(&views[i])
	}
	return out
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	return &CommentResponse{ID: v.ID, Text: v.Text, AuthorName: v.AuthorName, Created: v.Created}
}

func fromBrief(b *queries.BookingBrief) *BookingBriefResponse {
	if b == nil {
		return nil
	}
	return &BookingBriefResponse{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}
