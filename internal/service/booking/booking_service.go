package booking

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/registry"
)

type BookingUseCase interface {
	Book(ctx context.Context, passengerID, flightNumber string) (*domain.BookingRecord, error)
	Cancel(ctx context.Context, passengerID, flightNumber string) (*domain.BookingRecord, error)
	History(ctx context.Context) []domain.BookingRecord
	Roster(ctx context.Context, flightNumber string) (*Roster, error)
}

type Roster struct {
	FlightNumber   string   `json:"flight_number"`
	AvailableSeats int      `json:"available_seats"`
	Size           int      `json:"size"`
	PassengerIDs   []string `json:"passenger_ids"`
}

type BookingService struct {
	registry *registry.Registry
	cache    Cache
	events   *Events
}

func NewBookingService(reg *registry.Registry, cache Cache, events *Events) *BookingService {
	return &BookingService{registry: reg, cache: cache, events: events}
}

func (s *BookingService) Book(ctx context.Context, passengerID, flightNumber string) (*domain.BookingRecord, error) {
	rec, err := s.registry.Book(passengerID, flightNumber)
	if err != nil {
		return nil, err
	}
	s.afterChange(ctx, kafka.EventBooked, rec)
	return &rec, nil
}

func (s *BookingService) Cancel(ctx context.Context, passengerID, flightNumber string) (*domain.BookingRecord, error) {
	rec, err := s.registry.Cancel(passengerID, flightNumber)
	if err != nil {
		return nil, err
	}
	s.afterChange(ctx, kafka.EventCancelled, rec)
	return &rec, nil
}

func (s *BookingService) History(ctx context.Context) []domain.BookingRecord {
	return s.registry.History()
}

func (s *BookingService) Roster(ctx context.Context, flightNumber string) (*Roster, error) {
	f, ok := s.registry.FindFlight(flightNumber)
	if !ok {
		return nil, fmt.Errorf("flight %q: %w", flightNumber, domain.ErrNotFound)
	}
	return &Roster{
		FlightNumber:   f.Number,
		AvailableSeats: f.AvailableSeats,
		Size:           len(f.BookedPassengers),
		PassengerIDs:   f.BookedPassengers,
	}, nil
}

// afterChange runs the side effects of a committed roster change. Their
// failures are logged only: the registry is already updated. They run
// detached from the caller's cancellation.
func (s *BookingService) afterChange(ctx context.Context, eventType string, rec domain.BookingRecord) {
	ctx = context.WithoutCancel(ctx)
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("WARNING: failed to invalidate flights cache: %v", err)
		}
	}

	event := kafka.BookingEvent{
		Type:          eventType,
		RecordID:      rec.ID,
		PassengerID:   rec.PassengerID,
		PassengerName: rec.PassengerName,
		FlightNumber:  rec.FlightNumber,
		Route:         rec.Route,
		OccurredAt:    rec.Timestamp,
	}
	if p, ok := s.registry.FindPassenger(rec.PassengerID); ok {
		event.Email = p.Email
	}
	if f, ok := s.registry.FindFlight(rec.FlightNumber); ok {
		event.AvailableSeats = f.AvailableSeats
	}
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for record %s: %v", eventType, rec.ID, err)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
