// README: Itinerary handlers (generate, history listing, PDF export).
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/export"
	"tripmate/internal/modules/history"
	"tripmate/internal/modules/planner"
)

// Generator produces an itinerary for one trip request.
type Generator interface {
	Generate(ctx context.Context, req planner.TripRequest) planner.Result
}

// HistoryService is the subset of history.Service the handlers need.
type HistoryService interface {
	CheckUser(user string) error
	Append(ctx context.Context, user string, r history.Record) (int, error)
	List(ctx context.Context, user string) ([]history.Record, error)
	Recent(ctx context.Context, user string, n int) ([]history.Entry, error)
	Get(ctx context.Context, user string, index int) (history.Record, error)
}

type ItineraryHandler struct {
	planner Generator
	history HistoryService
	timeout time.Duration
}

func NewItineraryHandler(gen Generator, hist HistoryService, timeout time.Duration) *ItineraryHandler {
	return &ItineraryHandler{planner: gen, history: hist, timeout: timeout}
}

type createItineraryReq struct {
	Name        string `json:"name" binding:"required"`
	City        string `json:"city" binding:"required"`
	Days        int    `json:"days" binding:"required,min=1,max=30"`
	Budget      int    `json:"budget" binding:"required,min=1000"`
	Preferences string `json:"preferences"`
}

type createItineraryResp struct {
	Itinerary    string `json:"itinerary"`
	Model        string `json:"model"`
	HistoryCount int    `json:"history_count"`
}

type storageFailureResp struct {
	Error     string `json:"error"`
	Itinerary string `json:"itinerary"`
}

type historyResp struct {
	Name        string          `json:"name"`
	Itineraries []history.Entry `json:"itineraries"`
}

// Create handles POST /api/itineraries.
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req createItineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	sess := newSession(c, req.Name)
	req.City = strings.TrimSpace(req.City)
	if strings.TrimSpace(sess.User) == "" || req.City == "" {
		writeError(c, http.StatusBadRequest, "missing name or city")
		return
	}
	if err := h.history.CheckUser(sess.User); err != nil {
		writeHistoryError(c, err)
		return
	}

	ctx := c.Request.Context()
	genCtx := ctx
	if h.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	res := h.planner.Generate(genCtx, planner.TripRequest{
		City:        req.City,
		Days:        req.Days,
		Budget:      req.Budget,
		Preferences: req.Preferences,
	})
	if !res.OK() {
		log.Printf("[%s] itinerary for %q not generated: %s", sess.RequestID, sess.User, res.Reason)
		writeError(c, http.StatusBadGateway, res.Message())
		return
	}

	count, err := h.history.Append(ctx, sess.User, history.Record{
		City:        req.City,
		Days:        req.Days,
		Budget:      req.Budget,
		Preferences: req.Preferences,
		Itinerary:   res.Text,
	})
	if errors.Is(err, history.ErrInvalidUser) || errors.Is(err, history.ErrInvalidRecord) {
		writeHistoryError(c, err)
		return
	}
	if err != nil {
		log.Printf("[%s] save history for %q: %v", sess.RequestID, sess.User, err)
		writeJSON(c, http.StatusInternalServerError, storageFailureResp{Error: "storage error", Itinerary: res.Text})
		return
	}

	writeJSON(c, http.StatusCreated, createItineraryResp{
		Itinerary:    res.Text,
		Model:        res.Model,
		HistoryCount: count,
	})
}

// Recent handles GET /api/users/:name/itineraries/recent.
func (h *ItineraryHandler) Recent(c *gin.Context) {
	sess := newSession(c, c.Param("name"))
	limit := history.DefaultRecent
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := h.history.Recent(c.Request.Context(), sess.User, limit)
	if err != nil {
		writeHistoryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, historyResp{Name: sess.User, Itineraries: entries})
}

// List handles GET /api/users/:name/itineraries.
func (h *ItineraryHandler) List(c *gin.Context) {
	sess := newSession(c, c.Param("name"))
	records, err := h.history.List(c.Request.Context(), sess.User)
	if err != nil {
		writeHistoryError(c, err)
		return
	}
	entries := make([]history.Entry, len(records))
	for i, r := range records {
		entries[i] = history.Entry{Index: i + 1, Record: r}
	}
	writeJSON(c, http.StatusOK, historyResp{Name: sess.User, Itineraries: entries})
}

// PDF handles GET /api/users/:name/itineraries/:index/pdf.
func (h *ItineraryHandler) PDF(c *gin.Context) {
	sess := newSession(c, c.Param("name"))
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 1 {
		writeError(c, http.StatusBadRequest, "index must be a positive integer")
		return
	}

	rec, err := h.history.Get(c.Request.Context(), sess.User, index)
	if err != nil {
		writeHistoryError(c, err)
		return
	}
	doc, err := export.ItineraryPDF(sess.User, index, rec)
	if err != nil {
		log.Printf("[%s] render pdf for %q #%d: %v", sess.RequestID, sess.User, index, err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="itinerary-%d.pdf"`, index))
	c.Data(http.StatusOK, "application/pdf", doc)
}
