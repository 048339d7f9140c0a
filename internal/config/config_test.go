package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"WEATHERSTACK_API_KEY", "WEATHERSTACK_BASE_URL", "HTTP_TIMEOUT", "REQUEST_TIMEOUT",
		"DEFAULT_CITIES", "GEOCODER_API_KEY", "PROBE_CITY", "PROBE_INTERVAL", "PROBE_HISTORY", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.WeatherstackAPIKey)
	assert.Equal(t, "http://api.weatherstack.com/current", cfg.WeatherstackBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, defaultCities, cfg.DefaultCities)
	assert.Empty(t, cfg.ProbeCity)
	assert.Equal(t, 15*time.Minute, cfg.ProbeInterval)
	assert.Equal(t, 20, cfg.ProbeHistory)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WEATHERSTACK_API_KEY", "abc")
	t.Setenv("WEATHERSTACK_BASE_URL", "http://localhost:9999/current")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("DEFAULT_CITIES", " Oslo, Bergen ,,Tromsø")
	t.Setenv("PROBE_CITY", " Oslo ")
	t.Setenv("PROBE_INTERVAL", "1h")
	t.Setenv("PROBE_HISTORY", "not-a-number")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.WeatherstackAPIKey)
	assert.Equal(t, "http://localhost:9999/current", cfg.WeatherstackBaseURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"Oslo", "Bergen", "Tromsø"}, cfg.DefaultCities)
	assert.Equal(t, "Oslo", cfg.ProbeCity)
	assert.Equal(t, time.Hour, cfg.ProbeInterval)
	assert.Equal(t, 20, cfg.ProbeHistory)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	_, err := Load()
	assert.ErrorContains(t, err, "HTTP_TIMEOUT")

	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("REQUEST_TIMEOUT", "-1s")
	_, err = Load()
	assert.ErrorContains(t, err, "REQUEST_TIMEOUT")
}

func TestDefaultCitiesAreCopied(t *testing.T) {
	t.Setenv("DEFAULT_CITIES", "")

	cfg, err := Load()
	require.NoError(t, err)
	cfg.DefaultCities[0] = "Atlantis"

	assert.Equal(t, "London", defaultCities[0])
}
