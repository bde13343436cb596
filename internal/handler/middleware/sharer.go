package middleware

import (
	"net/http"

	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderSharerUserID identifies the acting user. The service sits behind
// a gateway that authenticates requests, so the header value is trusted.
const HeaderSharerUserID = "X-Sharer-User-Id"

const sharerIDKey = "sharer_user_id"

type SharerMiddleware struct{}

func NewSharerMiddleware() *SharerMiddleware {
	return &SharerMiddleware{}
}

// RequireSharer extracts and validates the acting user id. Whether that
// user actually exists is a use case concern.
func (m *SharerMiddleware) RequireSharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderSharerUserID)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing "+HeaderSharerUserID+" header", nil)
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+HeaderSharerUserID+" header", nil)
			return
		}
		c.Set(sharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(sharerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
