package registry

import (
	"fmt"

	"github.com/Domenick1991/airreservation/internal/domain"
)

// Book adds the passenger to the flight roster and takes one seat.
// A full flight and an existing booking both fail with ErrNoCapacity.
func (r *Registry) Book(passengerID, flightNumber string) (domain.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, f, err := r.pair(passengerID, flightNumber)
	if err != nil {
		return domain.BookingRecord{}, err
	}
	if f.AvailableSeats <= 0 {
		return domain.BookingRecord{}, fmt.Errorf("flight %q is full: %w", flightNumber, domain.ErrNoCapacity)
	}
	if f.HasPassenger(passengerID) {
		return domain.BookingRecord{}, fmt.Errorf("passenger %q already booked on %q: %w", passengerID, flightNumber, domain.ErrNoCapacity)
	}

	f.BookedPassengers = append(f.BookedPassengers, passengerID)
	f.AvailableSeats--
	r.flightsGen++
	return r.record(domain.BookingActionBooked, p, f), nil
}

// Cancel removes the passenger from the flight roster and frees one seat.
func (r *Registry) Cancel(passengerID, flightNumber string) (domain.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, f, err := r.pair(passengerID, flightNumber)
	if err != nil {
		return domain.BookingRecord{}, err
	}
	if !removeFromRoster(f, passengerID) {
		return domain.BookingRecord{}, fmt.Errorf("passenger %q has no booking on %q: %w", passengerID, flightNumber, domain.ErrNoSuchBooking)
	}
	f.AvailableSeats++
	r.flightsGen++
	return r.record(domain.BookingActionCancelled, p, f), nil
}

func (r *Registry) pair(passengerID, flightNumber string) (*domain.Passenger, *domain.Flight, error) {
	p, ok := r.passengersByID[passengerID]
	if !ok {
		return nil, nil, fmt.Errorf("passenger %q: %w", passengerID, domain.ErrNotFound)
	}
	f, ok := r.flightsByNum[flightNumber]
	if !ok {
		return nil, nil, fmt.Errorf("flight %q: %w", flightNumber, domain.ErrNotFound)
	}
	return p, f, nil
}

// record appends to the audit log; callers hold r.mu.
func (r *Registry) record(action domain.BookingAction, p *domain.Passenger, f *domain.Flight) domain.BookingRecord {
	rec := domain.BookingRecord{
		ID:            r.newID(),
		Action:        action,
		PassengerID:   p.ID,
		FlightNumber:  f.Number,
		PassengerName: p.Name,
		Route:         f.Route(),
		Timestamp:     r.now(),
	}
	r.history = append(r.history, rec)
	return rec
}
