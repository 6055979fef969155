// README: Itinerary aggregate (persisted result of one pipeline run) and its errors.
package itinerary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tripcast/internal/modules/plan"
	"tripcast/internal/modules/weather"
	"tripcast/internal/types"
)

// MaxDestinationLength is measured in characters, not bytes.
const MaxDestinationLength = 100

// Itinerary is immutable once created; there is no update path.
type Itinerary struct {
	ID          int64          `json:"id"`
	Destination string         `json:"destination"`
	Date        types.Date     `json:"date"`
	Weather     weather.Record `json:"weather_data"`
	Plan        plan.Record    `json:"itinerary_data"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (it Itinerary) String() string {
	return fmt.Sprintf("%s - %s", it.Destination, it.Date)
}

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidInput = errors.New("Invalid input data")
	ErrPastDate     = errors.New("Date must be in the future")
	ErrNotFound     = errors.New("Itinerary not found")

	ErrWeatherUnavailable = errors.New("weather service error")
	ErrWeatherNoData      = errors.New("weather data empty")
	ErrGenerationFailed   = errors.New("itinerary generation error")
	ErrQuotaExceeded      = errors.New("generation quota exceeded")
	ErrPersistence        = errors.New("persistence error")
	ErrUnexpected         = errors.New("unexpected error")
)

// ValidationError is a client error. Reason is ErrInvalidInput (with Fields) or ErrPastDate.
type ValidationError struct {
	Reason error
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.Fields[name], " "))
	}
	return e.Reason.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error { return []error{ErrValidation, e.Reason} }

// PipelineError classifies a failed run by Kind (one of the Err* stage sentinels).
// Error returns the underlying message only.
type PipelineError struct {
	Kind error
	Err  error
}

func (e *PipelineError) Error() string { return e.Err.Error() }

func (e *PipelineError) Unwrap() []error { return []error{e.Kind, e.Err} }

func stageError(kind, err error) error {
	return &PipelineError{Kind: kind, Err: err}
}
