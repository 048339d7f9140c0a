package weather

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Payload is the Weatherstack "current" response. Every field is optional;
// BuildRecord documents the default used for each missing one.
type Payload struct {
	Location *PayloadLocation `json:"location"`
	Current  *PayloadCurrent  `json:"current"`
	Error    *PayloadError    `json:"error"`
}

// PayloadLocation describes where the provider resolved the query to.
type PayloadLocation struct {
	Name       *string `json:"name"`
	Country    *string `json:"country"`
	Region     string  `json:"region"`
	Lat        string  `json:"lat"`
	Lon        string  `json:"lon"`
	TimezoneID string  `json:"timezone_id"`
	Localtime  string  `json:"localtime"`
}

// PayloadCurrent holds the observed conditions.
type PayloadCurrent struct {
	ObservationTime     string     `json:"observation_time"`
	Temperature         *float64   `json:"temperature"`
	WeatherCode         int        `json:"weather_code"`
	WeatherDescriptions []string   `json:"weather_descriptions"`
	WindSpeed           *float64   `json:"wind_speed"`
	WindDegree          float64    `json:"wind_degree"`
	WindDir             *string    `json:"wind_dir"`
	Pressure            float64    `json:"pressure"`
	Precip              float64    `json:"precip"`
	Humidity            *float64   `json:"humidity"`
	CloudCover          *Reading   `json:"cloudcover"`
	FeelsLike           float64    `json:"feelslike"`
	UVIndex             *float64   `json:"uv_index"`
	Visibility          *Reading   `json:"visibility"`
	IsDay               *string    `json:"is_day"`
	AirQuality          AirQuality `json:"air_quality"`
}

// PayloadError is the object Weatherstack returns instead of data when a
// query fails (unknown location, bad key, quota exceeded...).
type PayloadError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

// AirQuality maps a pollutant name (pm2_5, pm10, no2, o3, ...) to its reading.
type AirQuality map[string]Reading

// Reading is a numeric value kept as the provider sent it. Weatherstack
// reports pollutant concentrations as strings, so quoted and bare values are
// both accepted and only interpreted when Float is called.
type Reading string

// UnmarshalJSON stores the raw text of any JSON value.
func (r *Reading) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = Reading(s)
		return nil
	}
	*r = Reading(b)
	return nil
}

// Float parses the reading. NaN and infinities are rejected.
func (r Reading) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(r)), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
