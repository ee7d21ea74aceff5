package flights

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/registry"
)

type FlightUseCase interface {
	Add(ctx context.Context, input registry.FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, number string, upd registry.FlightUpdate) (*domain.Flight, error)
	Delete(ctx context.Context, number string) error
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, query string) ([]domain.Flight, error)
	Choices(ctx context.Context) []domain.Choice
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, uint64, error)
	SetFlights(ctx context.Context, generation uint64, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	registry *registry.Registry
	cache    FlightCache
}

func NewFlightService(reg *registry.Registry, cache FlightCache) *FlightService {
	return &FlightService{registry: reg, cache: cache}
}

func (s *FlightService) Add(ctx context.Context, input registry.FlightInput) (*domain.Flight, error) {
	f, err := s.registry.AddFlight(input)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &f, nil
}

func (s *FlightService) Update(ctx context.Context, number string, upd registry.FlightUpdate) (*domain.Flight, error) {
	f, err := s.registry.UpdateFlight(number, upd)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &f, nil
}

func (s *FlightService) Delete(ctx context.Context, number string) error {
	if err := s.registry.DeleteFlight(number); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	f, ok := s.registry.FindFlight(number)
	if !ok {
		return nil, fmt.Errorf("flight %q: %w", number, domain.ErrNotFound)
	}
	return &f, nil
}

// List returns every flight in insertion order. A cached listing is served
// only while its generation matches the registry, so a listing stored after
// a concurrent booking is never returned.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		cached, generation, err := s.cache.GetFlights(ctx)
		if err == nil && cached != nil && generation == s.registry.FlightsGeneration() {
			return cached, nil
		}
	}

	flights, generation := s.registry.ListFlights()
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, generation, flights); err != nil {
			log.Printf("WARNING: failed to cache flights: %v", err)
		}
	}
	return flights, nil
}

func (s *FlightService) Search(ctx context.Context, query string) ([]domain.Flight, error) {
	if query == "" {
		return s.List(ctx)
	}
	return s.registry.SearchFlights(query), nil
}

func (s *FlightService) Choices(ctx context.Context) []domain.Choice {
	return s.registry.FlightChoices()
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(context.WithoutCancel(ctx)); err != nil {
		log.Printf("WARNING: failed to invalidate flights cache: %v", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
