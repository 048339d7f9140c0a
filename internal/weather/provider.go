package weather

import (
	"context"
)

// Provider abstracts the upstream weather source. Current returns the raw
// payload for a query (a city name or "lat,lon"); a provider-level error
// object is returned inside the payload, not as an error.
type Provider interface {
	Name() string
	Current(ctx context.Context, query string) (Payload, error)
}

// CountryResolver finds the country for a pair of coordinates. It is only
// consulted when the provider leaves the country out of a coordinate lookup.
type CountryResolver interface {
	Country(ctx context.Context, lat, lon string) (string, error)
}
