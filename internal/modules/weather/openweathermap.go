package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultOpenWeatherBaseURL = "http://api.openweathermap.org"

// OpenWeatherMapProvider is the fallback provider: current conditions in metric units.
type OpenWeatherMapProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewOpenWeatherMapProvider(baseURL, apiKey string, timeout time.Duration) *OpenWeatherMapProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	return &OpenWeatherMapProvider{
		httpClient: newHTTPClient(timeout),
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

func (p *OpenWeatherMapProvider) Name() string { return "openweathermap" }

func (p *OpenWeatherMapProvider) Current(ctx context.Context, city string) (*Record, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", p.apiKey)
	q.Set("units", "metric")

	var resp currentResponse
	if err := getJSON(ctx, p.httpClient, p.baseURL+"/data/2.5/weather", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("OpenWeatherMap error: %w", err)
	}
	return recordFromCurrent(&resp), nil
}
