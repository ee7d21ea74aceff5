package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airreservation/api"
	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/bootstrap"
	"github.com/Domenick1991/airreservation/internal/cache"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/registry"
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/Domenick1991/airreservation/internal/service/passengers"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := registry.New()
	if err := seed(reg, cfg.Seed); err != nil {
		log.Fatalf("seed registry: %v", err)
	}

	// Interfaces stay nil when a backend is disabled.
	var (
		flightCache flights.FlightCache
		invalidator booking.Cache
		events      *booking.Events
	)
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
		defer redisCache.Close()
		// Generations restart with the registry, so a listing left by an
		// earlier process must not be trusted.
		if err := redisCache.InvalidateFlights(ctx); err != nil {
			log.Printf("WARNING: failed to clear flights cache: %v", err)
		}
		flightCache, invalidator = redisCache, redisCache
	}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		events = booking.NewEvents(
			producer,
			cfg.Kafka.BookingEventsTopic,
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
			booking.WithRetries(cfg.Booking.PublishRetries),
		)
	}

	passengerService := passengers.NewPassengerService(reg, invalidator, events)
	flightService := flights.NewFlightService(reg, flightCache)
	bookingService := booking.NewBookingService(reg, invalidator, events)

	router := api.NewRouter(passengerService, flightService, bookingService)
	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func seed(reg *registry.Registry, s config.SeedConfig) error {
	for _, p := range s.Passengers {
		if _, err := reg.AddPassenger(registry.PassengerInput{ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone}); err != nil {
			return err
		}
	}
	for _, f := range s.Flights {
		if _, err := reg.AddFlight(registry.FlightInput{
			Number:        f.Number,
			DepartureCity: f.DepartureCity,
			ArrivalCity:   f.ArrivalCity,
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Seats:         f.Seats,
		}); err != nil {
			return err
		}
	}
	if n := len(s.Passengers) + len(s.Flights); n > 0 {
		log.Printf("seeded %d passengers and %d flights", len(s.Passengers), len(s.Flights))
	}
	return nil
}
