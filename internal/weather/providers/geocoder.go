package providers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/kelvins/geocoder"
)

var errNoCountry = errors.New("no country found for coordinates")

// geocoder keeps its API key in a package variable.
var geocoderMu sync.Mutex

// GoogleGeocoder resolves coordinates to a country name through the Google
// Geocoding API.
type GoogleGeocoder struct {
	apiKey  string
	reverse func(geocoder.Location) ([]geocoder.Address, error)
}

// NewGoogleGeocoder returns nil when apiKey is empty so callers can treat a
// missing key as "no resolver".
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	if apiKey == "" {
		return nil
	}
	return &GoogleGeocoder{
		apiKey:  apiKey,
		reverse: geocoder.GeocodingReverse,
	}
}

// Country implements weather.CountryResolver.
func (g *GoogleGeocoder) Country(ctx context.Context, lat, lon string) (string, error) {
	latF, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return "", fmt.Errorf("invalid latitude %q: %w", lat, err)
	}
	lonF, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return "", fmt.Errorf("invalid longitude %q: %w", lon, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	geocoderMu.Lock()
	geocoder.ApiKey = g.apiKey
	addresses, err := g.reverse(geocoder.Location{Latitude: latF, Longitude: lonF})
	geocoderMu.Unlock()
	if err != nil {
		return "", err
	}

	for _, a := range addresses {
		if a.Country != "" {
			return a.Country, nil
		}
	}
	return "", errNoCountry
}
