// README: Destination lookup handler backed by the Maps geocoder.
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/maps"
)

// DestinationLookup resolves free text into candidate destinations.
type DestinationLookup interface {
	Lookup(ctx context.Context, query string) ([]maps.Destination, error)
}

type DestinationHandler struct {
	lookup DestinationLookup
}

// NewDestinationHandler accepts a nil lookup; requests then get 503.
func NewDestinationHandler(lookup DestinationLookup) *DestinationHandler {
	return &DestinationHandler{lookup: lookup}
}

// Lookup handles GET /api/destinations/lookup?q=.
func (h *DestinationHandler) Lookup(c *gin.Context) {
	if h.lookup == nil {
		writeError(c, http.StatusServiceUnavailable, "destination lookup is not configured")
		return
	}
	results, err := h.lookup.Lookup(c.Request.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, maps.ErrEmptyQuery) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[%s] destination lookup: %v", c.GetString(RequestIDKey), err)
		writeError(c, http.StatusBadGateway, "lookup failed")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"destinations": results})
}
