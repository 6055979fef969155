// README: Itinerary endpoints (create, fetch one, list).
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripcast/internal/modules/itinerary"
)

const (
	// pipelineTimeout covers both weather providers and one completion call.
	pipelineTimeout = 60 * time.Second

	QuotaRemainingHeader = "X-Quota-Remaining"
)

type ItineraryService interface {
	Create(ctx context.Context, client string, cmd itinerary.CreateCommand) (*itinerary.Itinerary, error)
	Get(ctx context.Context, id int64) (*itinerary.Itinerary, error)
	List(ctx context.Context) ([]itinerary.Itinerary, error)
	QuotaRemaining(ctx context.Context, client string) (int64, bool)
}

type ItineraryHandler struct {
	svc ItineraryService
}

func NewItineraryHandler(svc ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{svc: svc}
}

type createItineraryReq struct {
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// Create handles POST /itinerary/.
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req createItineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidInput(c, map[string][]string{"non_field_errors": {"Invalid JSON body."}})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pipelineTimeout)
	defer cancel()

	client := c.ClientIP()
	it, err := h.svc.Create(ctx, client, itinerary.CreateCommand{
		Destination: req.Destination,
		Date:        req.Date,
	})
	if n, ok := h.svc.QuotaRemaining(c.Request.Context(), client); ok {
		c.Header(QuotaRemainingHeader, strconv.FormatInt(n, 10))
	}
	if err != nil {
		writeItineraryError(c, strings.TrimSpace(req.Destination), err)
		return
	}
	writeJSON(c, http.StatusCreated, it)
}

// Get handles GET /itinerary/:id/.
func (h *ItineraryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusNotFound, itinerary.ErrNotFound.Error())
		return
	}

	it, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeItineraryError(c, "", err)
		return
	}
	writeJSON(c, http.StatusOK, it)
}

// List handles GET /itineraries/.
func (h *ItineraryHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeItineraryError(c, "", err)
		return
	}
	writeJSON(c, http.StatusOK, items)
}
