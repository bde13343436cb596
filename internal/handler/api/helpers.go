package api

import (
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageFrom = 0
	defaultPageSize = 10
)

// parsePaging reads the from/size query parameters with the API's
// defaults. Negative from or non-positive size is a client error.
func parsePaging(c *gin.Context) (from, size int, ok bool) {
	from, size = defaultPageFrom, defaultPageSize
	if v := c.Query("from"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from parameter", nil)
			return 0, 0, false
		}
		from = iv
	}
	if v := c.Query("size"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid size parameter", nil)
			return 0, 0, false
		}
		size = iv
	}
	if from < 0 || size < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid paging parameters", nil)
		return 0, 0, false
	}
	return from, size, true
}

// abortUsecaseError maps use case and domain errors onto HTTP statuses.
// Unrecognized errors become 500 so nothing internal leaks.
func abortUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, commands.ErrItemNotFound),
		errors.Is(err, commands.ErrBookingNotFound),
		errors.Is(err, commands.ErrRequestNotFound),
		errors.Is(err, queries.ErrUserNotFound),
		errors.Is(err, queries.ErrItemNotFound),
		errors.Is(err, queries.ErrBookingNotFound),
		errors.Is(err, queries.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)

	// Booking one's own item is hidden rather than forbidden: the API
	// answers as if the item did not exist.
	case errors.Is(err, commands.ErrOwnItemBooking):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)

	case errors.Is(err, commands.ErrNotItemOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)

	case errors.Is(err, commands.ErrEmailConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use", nil)

	case errors.Is(err, commands.ErrItemUnavailable),
		errors.Is(err, commands.ErrCommentNotAllowed),
		errors.Is(err, booking.ErrInvalidTimeSlot),
		errors.Is(err, booking.ErrTimeSlotInPast),
		errors.Is(err, booking.ErrAlreadyApproved),
		errors.Is(err, item.ErrEmptyName),
		errors.Is(err, item.ErrEmptyDescription),
		errors.Is(err, comment.ErrEmptyText),
		errors.Is(err, comment.ErrTextTooLong),
		errors.Is(err, user.ErrEmptyName),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, request.ErrEmptyDescription):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
