// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcast/internal/http/handlers"
	"tripcast/internal/http/middleware"
)

type ServerDeps struct {
	Itineraries handlers.ItineraryService
	Logger      *slog.Logger
	// TrustedProxies may set X-Forwarded-For; nil trusts none and the peer address is the client.
	TrustedProxies []string
}

type Server struct {
	itineraries    *handlers.ItineraryHandler
	logger         *slog.Logger
	trustedProxies []string
}

func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		itineraries:    handlers.NewItineraryHandler(deps.Itineraries),
		logger:         logger.With("component", "http"),
		trustedProxies: deps.TrustedProxies,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	// ClientIP keys the generation quota.
	if err := r.SetTrustedProxies(s.trustedProxies); err != nil {
		s.logger.Error("invalid trusted proxies, trusting none", "err", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.Recovery(s.logger), middleware.Logging(s.logger))

	r.POST("/itinerary/", s.itineraries.Create)
	r.GET("/itinerary/:id/", s.itineraries.Get)
	r.GET("/itineraries/", s.itineraries.List)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return r
}
