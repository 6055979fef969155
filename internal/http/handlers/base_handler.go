// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcast/internal/modules/itinerary"
)

type errorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeInvalidInput(c *gin.Context, fields map[string][]string) {
	writeJSON(c, http.StatusBadRequest, errorResponse{
		Error:   itinerary.ErrInvalidInput.Error(),
		Details: fields,
	})
}

// writeItineraryError maps pipeline and lookup errors to status codes.
func writeItineraryError(c *gin.Context, destination string, err error) {
	var verr *itinerary.ValidationError
	switch {
	case errors.As(err, &verr):
		if errors.Is(err, itinerary.ErrPastDate) {
			writeError(c, http.StatusBadRequest, itinerary.ErrPastDate.Error())
			return
		}
		writeInvalidInput(c, verr.Fields)
	case errors.Is(err, itinerary.ErrNotFound):
		writeError(c, http.StatusNotFound, itinerary.ErrNotFound.Error())
	case errors.Is(err, itinerary.ErrWeatherNoData):
		writeError(c, http.StatusBadRequest, "Unable to fetch weather data for "+destination)
	case errors.Is(err, itinerary.ErrWeatherUnavailable):
		writeError(c, http.StatusInternalServerError, "Weather service error: "+err.Error())
	case errors.Is(err, itinerary.ErrQuotaExceeded):
		writeError(c, http.StatusTooManyRequests, itinerary.ErrQuotaExceeded.Error())
	case errors.Is(err, itinerary.ErrGenerationFailed):
		writeError(c, http.StatusInternalServerError, "Itinerary generation error: "+err.Error())
	case errors.Is(err, itinerary.ErrPersistence):
		writeError(c, http.StatusInternalServerError, "Failed to save itinerary: "+err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "Unexpected error: "+err.Error())
	}
}
