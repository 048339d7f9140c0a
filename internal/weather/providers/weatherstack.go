package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/sony/gobreaker"
)

// DefaultWeatherstackURL is the "current" endpoint. The free tier only
// serves plain HTTP.
const DefaultWeatherstackURL = "http://api.weatherstack.com/current"

// WeatherstackProvider implements the weather.Provider interface for Weatherstack.
type WeatherstackProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewWeatherstackProvider creates a provider. An empty baseURL selects
// DefaultWeatherstackURL.
func NewWeatherstackProvider(client *http.Client, apiKey, baseURL string, breaker BreakerConfig) *WeatherstackProvider {
	if baseURL == "" {
		baseURL = DefaultWeatherstackURL
	}

	return &WeatherstackProvider{
		name:    "weatherstack",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		circuit: newCircuitBreaker("weatherstack", breaker),
	}
}

func (p *WeatherstackProvider) Name() string {
	return p.name
}

// State reports the circuit breaker state, e.g. for health checks.
func (p *WeatherstackProvider) State() string {
	return p.circuit.State().String()
}

// Current fetches the current conditions for query, which may be a city name
// or a "lat,lon" pair. Error objects in the response body are returned in
// the payload for the caller to inspect.
func (p *WeatherstackProvider) Current(ctx context.Context, query string) (weather.Payload, error) {
	if p.apiKey == "" {
		return weather.Payload{}, weather.ErrMissingAPIKey
	}

	values := url.Values{}
	values.Set("access_key", p.apiKey)
	values.Set("query", query)

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return weather.Payload{}, err
	}

	resp, err := doRequest(ctx, p.client, p.circuit, req)
	if err != nil {
		return weather.Payload{}, err
	}
	defer resp.Body.Close()

	var payload weather.Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Payload{}, fmt.Errorf("decode weatherstack response: %w", err)
	}

	return payload, nil
}
