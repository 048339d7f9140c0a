package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxNearbyCities caps how many cities a batch lookup queries.
const MaxNearbyCities = 3

const defaultRequestTimeout = 15 * time.Second

// unknownLocation names coordinates the provider could not place.
const unknownLocation = "Unknown"

var validate = validator.New()

// ServiceConfig holds the collaborators and limits of a Service.
type ServiceConfig struct {
	// RequestTimeout bounds each operation, including all its provider calls.
	RequestTimeout time.Duration

	// Resolver, when set, supplies the country for coordinate lookups the
	// provider could not place in one.
	Resolver CountryResolver
}

// Service orchestrates provider calls and normalizes their payloads.
type Service struct {
	provider Provider
	cfg      ServiceConfig
}

// NewService creates a new Service.
func NewService(provider Provider, cfg ServiceConfig) *Service {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	return &Service{
		provider: provider,
		cfg:      cfg,
	}
}

type cityQuery struct {
	City string `validate:"required"`
}

type coordinatesQuery struct {
	Lat string `validate:"required"`
	Lon string `validate:"required"`
}

type nearbyQuery struct {
	Lat    string   `validate:"required"`
	Lon    string   `validate:"required"`
	Cities []string `validate:"required,min=1"`
}

// GetWeatherByCity looks up the current weather for a city name.
func (s *Service) GetWeatherByCity(ctx context.Context, city string) (WeatherRecord, error) {
	if err := validate.Struct(cityQuery{City: city}); err != nil {
		return WeatherRecord{}, fmt.Errorf("%w: city is required", ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	log.Printf("DEBUG: fetching weather data for %s", city)
	payload, err := s.fetch(ctx, city)
	if err != nil {
		return WeatherRecord{}, err
	}

	return BuildRecord(payload, city), nil
}

// GetWeatherByCoordinates looks up the current weather at lat,lon and adds a
// list of nearby cities for the country the provider places them in.
func (s *Service) GetWeatherByCoordinates(ctx context.Context, lat, lon string) (WeatherRecord, error) {
	if err := validate.Struct(coordinatesQuery{Lat: lat, Lon: lon}); err != nil {
		return WeatherRecord{}, fmt.Errorf("%w: latitude and longitude are required", ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	payload, err := s.fetch(ctx, lat+","+lon)
	if err != nil {
		return WeatherRecord{}, err
	}

	record := BuildRecord(payload, unknownLocation)
	country := record.Country
	if country == "" && s.cfg.Resolver != nil {
		if resolved, err := s.cfg.Resolver.Country(ctx, lat, lon); err != nil {
			log.Printf("INFO: country lookup for %s,%s failed: %v", lat, lon, err)
		} else {
			country = resolved
		}
	}

	record.City = record.City + ", " + record.Country
	record.Lat = lat
	record.Lon = lon
	record.NearbyCities = NearbyCities(country)
	return record, nil
}

// GetNearbyCitiesWeather looks up the first MaxNearbyCities cities
// concurrently. Blank entries are ignored. Cities whose lookup fails are left
// out; the remaining records keep the order of the input list. lat and lon are
// required but only identify the caller's position.
func (s *Service) GetNearbyCitiesWeather(ctx context.Context, lat, lon string, cities []string) ([]WeatherRecord, error) {
	cities = compact(cities)
	if err := validate.Struct(nearbyQuery{Lat: lat, Lon: lon, Cities: cities}); err != nil {
		return nil, fmt.Errorf("%w: latitude, longitude and cities are required", ErrValidation)
	}
	if len(cities) > MaxNearbyCities {
		cities = cities[:MaxNearbyCities]
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	var (
		wg      sync.WaitGroup
		results = make([]*WeatherRecord, len(cities))
		errs    = make([]error, len(cities))
	)

	for i, city := range cities {
		i, city := i, city
		wg.Add(1)
		go func() {
			defer wg.Done()

			payload, err := s.fetch(ctx, city)
			if err != nil {
				errs[i] = err
				return
			}

			record := BuildRecord(payload, city)
			record.City = record.City + ", " + record.Country
			record.Country = ""
			results[i] = &record
		}()
	}

	wg.Wait()

	records := make([]WeatherRecord, 0, len(cities))
	for i, r := range results {
		if errors.Is(errs[i], ErrMissingAPIKey) {
			return nil, ErrMissingAPIKey
		}
		if r == nil {
			log.Printf("ERROR: skipping nearby city %s: %v", cities[i], errs[i])
			continue
		}
		records = append(records, *r)
	}

	return records, nil
}

// fetch calls the provider once and turns provider error objects into a
// *LookupError alongside transport failures.
func (s *Service) fetch(ctx context.Context, query string) (Payload, error) {
	payload, err := s.provider.Current(ctx, query)
	if err != nil {
		if errors.Is(err, ErrMissingAPIKey) {
			return Payload{}, err
		}
		log.Printf("ERROR: %s request for %q failed: %v", s.provider.Name(), query, err)
		return Payload{}, &LookupError{Query: query, Err: err}
	}

	if raw, err := json.Marshal(payload); err == nil {
		log.Printf("DEBUG: %s response for %q: %s", s.provider.Name(), query, raw)
	}

	if payload.Error != nil {
		perr := &ProviderError{
			Code: payload.Error.Code,
			Type: payload.Error.Type,
			Info: payload.Error.Info,
		}
		log.Printf("ERROR: %s", perr)
		return Payload{}, &LookupError{Query: query, Err: perr}
	}

	return payload, nil
}

func compact(cities []string) []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
