package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when no provider credential is configured.
	ErrMissingAPIKey = errors.New("weatherstack api key not configured")

	// ErrValidation wraps every rejected request parameter.
	ErrValidation = errors.New("invalid request")
)

// ProviderError is an error object reported by the provider in place of data.
type ProviderError struct {
	Code int
	Type string
	Info string
}

func (e *ProviderError) Error() string {
	return "Weather API error: " + e.Info
}

// LookupError scopes a failed provider lookup to the query that caused it.
// Err is either a *ProviderError or a transport failure.
type LookupError struct {
	Query string
	Err   error
}

func (e *LookupError) Error() string {
	var perr *ProviderError
	if errors.As(e.Err, &perr) {
		return perr.Error()
	}
	return fmt.Sprintf("Unable to fetch weather data: %v", e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
