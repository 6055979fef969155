package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// geocoder is the subset of *maps.Client used here.
type geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// Geocoder resolves free-form city names via the Google Geocoding API.
type Geocoder struct {
	client geocoder
}

// NewGeocoder creates a new Geocoder with the given API Key.
func NewGeocoder(apiKey string) (*Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Geocoder{client: client}, nil
}

// CountryCode returns the ISO 3166-1 alpha-2 code of the best match for city.
func (g *Geocoder) CountryCode(ctx context.Context, city string) (string, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  city,
		Language: "en",
	})
	if err != nil {
		return "", fmt.Errorf("maps api error: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no geocoding result for %q", city)
	}

	for _, comp := range results[0].AddressComponents {
		for _, t := range comp.Types {
			if t == "country" {
				return comp.ShortName, nil
			}
		}
	}
	return "", fmt.Errorf("no country component for %q", city)
}
