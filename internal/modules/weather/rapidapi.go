package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultRapidAPIBaseURL = "https://weather-api167.p.rapidapi.com"
	DefaultRapidAPIHost    = "weather-api167.p.rapidapi.com"
	// DefaultCountry is the locale qualifier used when no resolver is set or it fails.
	DefaultCountry = "GB"
	forecastPoints = "3"
)

// RapidAPIProvider is the primary provider: a short three-hourly forecast
// queried by "city,country".
type RapidAPIProvider struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	countries  CountryResolver
	logger     *slog.Logger
}

type RapidAPIOptions struct {
	BaseURL string
	Host    string
	APIKey  string
	Timeout time.Duration
	// Countries is optional.
	Countries CountryResolver
}

func NewRapidAPIProvider(opts RapidAPIOptions, logger *slog.Logger) *RapidAPIProvider {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultRapidAPIBaseURL
	}
	if opts.Host == "" {
		opts.Host = DefaultRapidAPIHost
	}
	return &RapidAPIProvider{
		httpClient: newHTTPClient(opts.Timeout),
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		host:       opts.Host,
		apiKey:     opts.APIKey,
		countries:  opts.Countries,
		logger:     logger.With("provider", "rapidapi"),
	}
}

func (p *RapidAPIProvider) Name() string { return "rapidapi" }

func (p *RapidAPIProvider) Current(ctx context.Context, city string) (*Record, error) {
	q := url.Values{}
	q.Set("place", city+","+p.country(ctx, city))
	q.Set("cnt", forecastPoints)
	q.Set("units", "standard")
	q.Set("type", "three_hour")
	q.Set("mode", "json")
	q.Set("lang", "en")

	headers := map[string]string{
		"X-RapidAPI-Key":  p.apiKey,
		"X-RapidAPI-Host": p.host,
		"Accept":          "application/json",
	}

	var resp forecastResponse
	if err := getJSON(ctx, p.httpClient, p.baseURL+"/api/weather/forecast", q, headers, &resp); err != nil {
		return nil, fmt.Errorf("RapidAPI error: %w", err)
	}
	rec, err := recordFromForecast(&resp)
	if err != nil {
		return nil, fmt.Errorf("weather data not available for %q: %w", city, err)
	}
	return rec, nil
}

func (p *RapidAPIProvider) country(ctx context.Context, city string) string {
	if p.countries == nil {
		return DefaultCountry
	}
	code, err := p.countries.CountryCode(ctx, city)
	if err != nil || code == "" {
		p.logger.Debug("country lookup failed, using default", "city", city, "default", DefaultCountry, "error", err)
		return DefaultCountry
	}
	return code
}
