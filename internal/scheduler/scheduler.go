package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Prober periodically queries the provider with a fixed city and records
// whether it answered.
type Prober struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	results   *store.ProbeLog
	city      string
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Prober. An empty city disables probing.
func New(city string, interval time.Duration, service *weather.Service, results *store.ProbeLog) *Prober {
	s := gocron.NewScheduler(time.UTC)
	return &Prober{
		scheduler: s,
		service:   service,
		results:   results,
		city:      city,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the probe job and starts the underlying scheduler.
func (p *Prober) Start() error {
	if p.city == "" {
		log.Println("scheduler: no probe city configured; nothing to schedule")
		return nil
	}

	minutes := int(p.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := p.scheduler.Every(minutes).Minutes().Do(p.Probe)
	if err != nil {
		return err
	}

	p.scheduler.StartAsync()
	return nil
}

// Probe runs a single lookup and records the outcome.
func (p *Prober) Probe() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	start := time.Now()
	_, err := p.service.GetWeatherByCity(ctx, p.city)

	result := store.ProbeResult{
		Query:     p.city,
		Timestamp: start.UTC(),
		Latency:   time.Since(start),
		OK:        err == nil,
	}
	if err != nil {
		result.Error = err.Error()
		log.Printf("scheduler: probe for %s failed: %v", p.city, err)
	} else {
		log.Printf("scheduler: probe for %s succeeded in %s", p.city, result.Latency)
	}

	p.results.Record(result)
}

// Stop stops the scheduler and cancels any future jobs.
func (p *Prober) Stop() {
	if p.scheduler != nil {
		p.scheduler.Stop()
	}
}
