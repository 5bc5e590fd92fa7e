// README: Base handler utilities (JSON helpers, per-request session, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/modules/history"
)

// RequestIDKey is the gin context key the request-ID middleware stores its value under.
const RequestIDKey = "request_id"

type errorResponse struct {
	Error string `json:"error"`
}

// session is the per-request view of the caller. It replaces any process-wide
// "current user" state: handlers build one and pass its fields down explicitly.
// User is kept exactly as sent; "Asha" and "Asha " are different histories.
type session struct {
	User      string
	RequestID string
}

func newSession(c *gin.Context, user string) session {
	return session{
		User:      user,
		RequestID: c.GetString(RequestIDKey),
	}
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeHistoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, history.ErrInvalidUser), errors.Is(err, history.ErrInvalidRecord):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, history.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "storage error")
	}
}
