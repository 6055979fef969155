// README: Weather fetcher; primary provider with a single fallback to the secondary.
package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tripcast/internal/types"
)

// ErrNoData is returned when a provider answers without error but with no record.
var ErrNoData = errors.New("weather data empty")

// UnavailableError reports that every provider failed.
type UnavailableError struct {
	Primary   error
	Secondary error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("Weather API error: %v. Fallback also failed: %v", e.Primary, e.Secondary)
}

// Fetcher queries the primary provider and falls back to the secondary once.
// No retries within a provider and no caching: every call re-fetches.
type Fetcher struct {
	primary   Provider
	secondary Provider
	logger    *slog.Logger
}

func NewFetcher(primary, secondary Provider, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With("component", "weather-fetcher"),
	}
}

// Fetch returns the canonical record for city. Both providers return the nearest
// forecast point; date is carried for logging only.
func (f *Fetcher) Fetch(ctx context.Context, city string, date types.Date) (Record, error) {
	rec, primaryErr := f.primary.Current(ctx, city)
	if primaryErr == nil {
		if rec == nil {
			return Record{}, ErrNoData
		}
		f.logger.Debug("weather fetched", "provider", f.primary.Name(), "city", city, "date", date.String())
		return *rec, nil
	}

	f.logger.Warn("primary weather provider failed, falling back",
		"provider", f.primary.Name(),
		"fallback", f.secondary.Name(),
		"city", city,
		"error", primaryErr,
	)

	rec, secondaryErr := f.secondary.Current(ctx, city)
	if secondaryErr != nil {
		f.logger.Error("all weather providers failed", "city", city, "error", secondaryErr)
		return Record{}, &UnavailableError{Primary: primaryErr, Secondary: secondaryErr}
	}
	if rec == nil {
		return Record{}, ErrNoData
	}
	f.logger.Debug("weather fetched", "provider", f.secondary.Name(), "city", city, "date", date.String())
	return *rec, nil
}
