package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

func main() {
	envFile := flag.String("env-file", ".env", "file to load environment variables from")
	port := flag.StringP("port", "p", "", "port to listen on (overrides PORT)")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("INFO: No %s file found or error loading it: %v", *envFile, err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Port = *port
	}
	if cfg.WeatherstackAPIKey == "" {
		log.Printf("ERROR: WEATHERSTACK_API_KEY is not set; weather lookups will fail")
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewWeatherstackProvider(httpClient, cfg.WeatherstackAPIKey, cfg.WeatherstackBaseURL, providers.DefaultBreakerConfig)

	svcCfg := weather.ServiceConfig{RequestTimeout: cfg.RequestTimeout}
	// Reverse geocoding requires a Google API key.
	if geo := providers.NewGoogleGeocoder(cfg.GeocoderAPIKey); geo != nil {
		svcCfg.Resolver = geo
	}

	service := weather.NewService(provider, svcCfg)

	// Periodic provider probe feeding /health.
	probes := store.NewProbeLog(cfg.ProbeHistory)
	prober := scheduler.New(cfg.ProbeCity, cfg.ProbeInterval, service, probes)
	if err := prober.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer prober.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          cfg.RequestTimeout + 5*time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	// API routes.
	httpapi.RegisterRoutes(app, service, httpapi.Options{
		DefaultCities: cfg.DefaultCities,
		Probes:        probes,
		Breaker:       provider,
	})

	go func() {
		log.Printf("INFO: listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
