// README: Canonical weather record and provider response shapes.
package weather

import "context"

// Unknown is the default for missing text fields.
const Unknown = "Unknown"

// Record is the canonical weather record every provider is normalized into.
// Temperature is in the provider's native unit; no conversion is performed.
type Record struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Condition   string  `json:"condition"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// Provider is one upstream weather source.
type Provider interface {
	Name() string
	// Current returns the nearest forecast point for city.
	Current(ctx context.Context, city string) (*Record, error)
}

// CountryResolver maps a city name to an ISO 3166-1 alpha-2 country code.
type CountryResolver interface {
	CountryCode(ctx context.Context, city string) (string, error)
}

// Shared nested blocks. Leaf fields decode leniently: a missing, null or
// mistyped value is absent and falls back to its default.
type mainBlock struct {
	Temp     lenientFloat `json:"temp"`
	Humidity lenientFloat `json:"humidity"`
}

type conditionBlock struct {
	Main        lenientString `json:"main"`
	Description lenientString `json:"description"`
}

type windBlock struct {
	Speed lenientFloat `json:"speed"`
}

// forecastResponse is the primary provider's multi-point forecast.
type forecastResponse struct {
	List []forecastPoint `json:"list"`
}

type forecastPoint struct {
	Main    *mainBlock    `json:"main"`
	Weather conditionList `json:"weather"`
	Wind    *windBlock    `json:"wind"`
}

// currentResponse is the secondary provider's flat current-conditions object.
type currentResponse struct {
	Main    *mainBlock    `json:"main"`
	Weather conditionList `json:"weather"`
	Wind    *windBlock    `json:"wind"`
}
