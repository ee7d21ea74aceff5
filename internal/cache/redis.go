package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps the rendered flight listing between mutations.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, flightsTTL: flightsTTL}
}

// flightListing is the stored form of the flight list. Generation is the
// registry generation the list was read at.
type flightListing struct {
	Generation uint64          `json:"generation"`
	Flights    []domain.Flight `json:"flights"`
}

// GetFlights returns nil, 0, nil on a cache miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, uint64, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	var listing flightListing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, 0, err
	}
	if listing.Flights == nil {
		listing.Flights = []domain.Flight{}
	}
	return listing.Flights, listing.Generation, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, generation uint64, flights []domain.Flight) error {
	payload, err := json.Marshal(flightListing{Generation: generation, Flights: flights})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func flightsKey() string {
	return "cache:flights"
}
