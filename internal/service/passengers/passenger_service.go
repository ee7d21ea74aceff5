package passengers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/registry"
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/google/uuid"
)

type PassengerUseCase interface {
	Add(ctx context.Context, input registry.PassengerInput) (*domain.Passenger, error)
	Update(ctx context.Context, id string, upd registry.PassengerUpdate) (*domain.Passenger, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Passenger, error)
	Search(ctx context.Context, query string) []domain.Passenger
	Choices(ctx context.Context) []domain.Choice
}

type PassengerService struct {
	registry *registry.Registry
	cache    booking.Cache
	events   *booking.Events
	now      func() time.Time
	newID    func() string
}

func NewPassengerService(reg *registry.Registry, cache booking.Cache, events *booking.Events) *PassengerService {
	return &PassengerService{registry: reg, cache: cache, events: events, now: time.Now, newID: uuid.NewString}
}

func (s *PassengerService) Add(ctx context.Context, input registry.PassengerInput) (*domain.Passenger, error) {
	p, err := s.registry.AddPassenger(input)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PassengerService) Update(ctx context.Context, id string, upd registry.PassengerUpdate) (*domain.Passenger, error) {
	p, err := s.registry.UpdatePassenger(id, upd)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the passenger; seats they held are released and announced
// as cancellations before the passenger_deleted event. Each event gets its
// own record ID so the archive stores it once.
func (s *PassengerService) Delete(ctx context.Context, id string) error {
	p, ok := s.registry.FindPassenger(id)
	if !ok {
		return fmt.Errorf("passenger %q: %w", id, domain.ErrNotFound)
	}
	released, err := s.registry.DeletePassenger(id)
	if err != nil {
		return err
	}
	ctx = context.WithoutCancel(ctx)

	if len(released) > 0 && s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("WARNING: failed to invalidate flights cache: %v", err)
		}
	}

	at := s.now()
	for _, number := range released {
		event := kafka.BookingEvent{
			Type:          kafka.EventCancelled,
			RecordID:      s.newID(),
			PassengerID:   p.ID,
			PassengerName: p.Name,
			Email:         p.Email,
			FlightNumber:  number,
			OccurredAt:    at,
		}
		if f, ok := s.registry.FindFlight(number); ok {
			event.Route = f.Route()
			event.AvailableSeats = f.AvailableSeats
		}
		s.publish(ctx, event)
	}
	s.publish(ctx, kafka.BookingEvent{
		Type:          kafka.EventPassengerDeleted,
		RecordID:      s.newID(),
		PassengerID:   p.ID,
		PassengerName: p.Name,
		OccurredAt:    at,
	})
	return nil
}

func (s *PassengerService) GetByID(ctx context.Context, id string) (*domain.Passenger, error) {
	p, ok := s.registry.FindPassenger(id)
	if !ok {
		return nil, fmt.Errorf("passenger %q: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

func (s *PassengerService) Search(ctx context.Context, query string) []domain.Passenger {
	return s.registry.SearchPassengers(query)
}

func (s *PassengerService) Choices(ctx context.Context) []domain.Choice {
	return s.registry.PassengerChoices()
}

func (s *PassengerService) publish(ctx context.Context, event kafka.BookingEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for passenger %s: %v", event.Type, event.PassengerID, err)
	}
}

var _ PassengerUseCase = (*PassengerService)(nil)
