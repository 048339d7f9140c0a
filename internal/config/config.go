package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var defaultCities = []string{
	"London", "Paris", "Berlin", "Rome",
	"New York", "Tokyo", "Sydney", "Dubai",
}

type AppConfig struct {
	WeatherstackAPIKey  string
	WeatherstackBaseURL string

	// HTTPTimeout bounds a single outbound provider call.
	HTTPTimeout time.Duration
	// RequestTimeout bounds one inbound request, all provider calls included.
	RequestTimeout time.Duration

	// DefaultCities are offered to the front end before any search.
	DefaultCities []string

	// Optional Google Geocoding key used to place coordinates in a country.
	GeocoderAPIKey string

	// Provider probe; an empty ProbeCity disables it.
	ProbeCity     string
	ProbeInterval time.Duration
	ProbeHistory  int

	Port string
}

// Load reads configuration from environment with sensible defaults.
// Env files are loaded by the caller before Load runs.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.WeatherstackAPIKey = os.Getenv("WEATHERSTACK_API_KEY")
	cfg.WeatherstackBaseURL = getenvDefault("WEATHERSTACK_BASE_URL", "http://api.weatherstack.com/current")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getenvDuration("REQUEST_TIMEOUT", "15s"); err != nil {
		return nil, err
	}

	cfg.DefaultCities = getenvList("DEFAULT_CITIES", defaultCities)

	cfg.ProbeCity = strings.TrimSpace(os.Getenv("PROBE_CITY"))
	if cfg.ProbeInterval, err = getenvDuration("PROBE_INTERVAL", "15m"); err != nil {
		return nil, err
	}
	cfg.ProbeHistory = getenvInt("PROBE_HISTORY", 20)

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

func getenvList(key string, def []string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}
