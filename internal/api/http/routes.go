package httpapi

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

const missingKeyMessage = "Weatherstack API key not configured"

// WeatherService is the part of weather.Service the handlers use.
type WeatherService interface {
	GetWeatherByCity(ctx context.Context, city string) (weather.WeatherRecord, error)
	GetWeatherByCoordinates(ctx context.Context, lat, lon string) (weather.WeatherRecord, error)
	GetNearbyCitiesWeather(ctx context.Context, lat, lon string, cities []string) ([]weather.WeatherRecord, error)
}

// StateReporter exposes a circuit breaker state.
type StateReporter interface {
	State() string
}

// Options carries the optional collaborators of the routes.
type Options struct {
	DefaultCities []string
	Probes        *store.ProbeLog
	Breaker       StateReporter
}

// ErrorHandler renders every unhandled error as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service WeatherService, opts Options) {
	app.Get("/health", func(c *fiber.Ctx) error {
		body := fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		}
		if opts.Breaker != nil {
			body["breaker"] = opts.Breaker.State()
		}
		if opts.Probes != nil {
			if latest, err := opts.Probes.Latest(); err == nil {
				body["probe"] = latest
				body["probeFailureRate"] = opts.Probes.FailureRate()
			}
		}
		return c.JSON(body)
	})

	api := app.Group("/api")

	api.Get("/cities", func(c *fiber.Ctx) error {
		cities := opts.DefaultCities
		if cities == nil {
			cities = []string{}
		}
		return c.JSON(cities)
	})

	api.Get("/weather/:city", func(c *fiber.Ctx) error {
		city, err := url.PathUnescape(c.Params("city"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid city")
		}

		record, err := service.GetWeatherByCity(c.UserContext(), city)
		if err != nil {
			return lookupFailure(c, city, true, err)
		}
		return c.JSON(record)
	})

	api.Get("/geolocation", func(c *fiber.Ctx) error {
		record, err := service.GetWeatherByCoordinates(c.UserContext(), c.Query("lat"), c.Query("lon"))
		if err != nil {
			return lookupFailure(c, "", false, err)
		}
		return c.JSON(record)
	})

	api.Get("/nearby", func(c *fiber.Ctx) error {
		cities := strings.Split(c.Query("cities"), ",")
		records, err := service.GetNearbyCitiesWeather(c.UserContext(), c.Query("lat"), c.Query("lon"), cities)
		if err != nil {
			return lookupFailure(c, "", false, err)
		}
		return c.JSON(records)
	})
}

// lookupFailure maps service errors to responses. Failed lookups answer 500
// with the provider message, scoped to the city when withCity is set.
func lookupFailure(c *fiber.Ctx, city string, withCity bool, err error) error {
	var lerr *weather.LookupError
	switch {
	case errors.Is(err, weather.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	case errors.Is(err, weather.ErrMissingAPIKey):
		return fiber.NewError(fiber.StatusInternalServerError, missingKeyMessage)
	case errors.As(err, &lerr):
		body := fiber.Map{"error": lerr.Error()}
		if withCity {
			body["city"] = city
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
	}
}

// validationMessage drops the sentinel prefix and capitalizes the detail.
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), weather.ErrValidation.Error()+": ")
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
