// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/http/handlers"
	"tripmate/internal/http/middleware"
)

type ServerDeps struct {
	Planner         handlers.Generator
	History         handlers.HistoryService
	Destinations    handlers.DestinationLookup
	GenerateTimeout time.Duration
	CORSOrigins     []string
	HistoryBackend  string
}

type Server struct {
	itineraries  *handlers.ItineraryHandler
	destinations *handlers.DestinationHandler
	corsOrigins  []string
	backend      string
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		itineraries:  handlers.NewItineraryHandler(deps.Planner, deps.History, deps.GenerateTimeout),
		destinations: handlers.NewDestinationHandler(deps.Destinations),
		corsOrigins:  deps.CORSOrigins,
		backend:      deps.HistoryBackend,
	}
}

func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	// Names are free text; match on the escaped path so "%2F" stays inside :name.
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery(), middleware.CORS(s.corsOrigins))

	r.GET("/health", s.health)

	api := r.Group("/api")
	api.POST("/itineraries", s.itineraries.Create)
	api.GET("/users/:name/itineraries", s.itineraries.List)
	api.GET("/users/:name/itineraries/recent", s.itineraries.Recent)
	api.GET("/users/:name/itineraries/:index/pdf", s.itineraries.PDF)
	api.GET("/destinations/lookup", s.destinations.Lookup)

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"service":         "tripmate",
		"history_backend": s.backend,
	})
}
