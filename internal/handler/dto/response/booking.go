package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingItemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID     uuid.UUID           `json:"id"`
	Start  time.Time           `json:"start"`
	End    time.Time           `json:"end"`
	Status string              `json:"status"`
	Item   BookingItemResponse `json:"item"`
	Booker BookerResponse      `json:"booker"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
		Item:   BookingItemResponse{ID: v.Item.ID, Name: v.Item.Name},
		Booker: BookerResponse{ID: v.Booker.ID, Name: v.Booker.Name},
	}
}

func FromBookingViews(views []queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i := range views {
		out[i] = FromBookingView(&views[i])
	}
	return out
}
