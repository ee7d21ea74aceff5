package registry

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/validate"
)

type FlightInput struct {
	Number        string
	DepartureCity string
	ArrivalCity   string
	DepartureTime string
	ArrivalTime   string
	Seats         int
}

// FlightUpdate carries the fields to change; nil or blank fields are kept.
// Seats overrides the available seat count as is, without looking at the
// roster.
type FlightUpdate struct {
	DepartureCity *string
	ArrivalCity   *string
	DepartureTime *string
	ArrivalTime   *string
	Seats         *int
}

func (r *Registry) AddFlight(in FlightInput) (domain.Flight, error) {
	f := domain.Flight{
		Number:           strings.TrimSpace(in.Number),
		DepartureCity:    strings.TrimSpace(in.DepartureCity),
		ArrivalCity:      strings.TrimSpace(in.ArrivalCity),
		DepartureTime:    strings.TrimSpace(in.DepartureTime),
		ArrivalTime:      strings.TrimSpace(in.ArrivalTime),
		AvailableSeats:   in.Seats,
		BookedPassengers: []string{},
	}
	if f.Number == "" || f.DepartureCity == "" || f.ArrivalCity == "" || f.DepartureTime == "" || f.ArrivalTime == "" {
		return domain.Flight{}, fmt.Errorf("number, cities and times are required: %w", domain.ErrMissingField)
	}
	if !validate.IsValidTime(f.DepartureTime) || !validate.IsValidTime(f.ArrivalTime) {
		return domain.Flight{}, fmt.Errorf("times must be HH:MM: %w", domain.ErrInvalidFormat)
	}
	if f.AvailableSeats <= 0 {
		return domain.Flight{}, fmt.Errorf("seats must be positive, got %d: %w", f.AvailableSeats, domain.ErrInvalidValue)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flightsByNum[f.Number]; ok {
		return domain.Flight{}, fmt.Errorf("flight %q already exists: %w", f.Number, domain.ErrDuplicateID)
	}
	stored := f
	stored.BookedPassengers = []string{}
	r.flights = append(r.flights, &stored)
	r.flightsByNum[f.Number] = &stored
	r.flightsGen++
	return f, nil
}

// UpdateFlight validates every provided field before applying any of them.
func (r *Registry) UpdateFlight(number string, upd FlightUpdate) (domain.Flight, error) {
	depCity, setDepCity := optional(upd.DepartureCity)
	arrCity, setArrCity := optional(upd.ArrivalCity)
	depTime, setDepTime := optional(upd.DepartureTime)
	arrTime, setArrTime := optional(upd.ArrivalTime)

	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flightsByNum[number]
	if !ok {
		return domain.Flight{}, fmt.Errorf("flight %q: %w", number, domain.ErrNotFound)
	}

	if setDepTime && !validate.IsValidTime(depTime) {
		return domain.Flight{}, fmt.Errorf("departure time %q: %w", depTime, domain.ErrInvalidFormat)
	}
	if setArrTime && !validate.IsValidTime(arrTime) {
		return domain.Flight{}, fmt.Errorf("arrival time %q: %w", arrTime, domain.ErrInvalidFormat)
	}
	if upd.Seats != nil && *upd.Seats < 0 {
		return domain.Flight{}, fmt.Errorf("seats must be non-negative, got %d: %w", *upd.Seats, domain.ErrInvalidValue)
	}

	if setDepCity {
		f.DepartureCity = depCity
	}
	if setArrCity {
		f.ArrivalCity = arrCity
	}
	if setDepTime {
		f.DepartureTime = depTime
	}
	if setArrTime {
		f.ArrivalTime = arrTime
	}
	if upd.Seats != nil {
		f.AvailableSeats = *upd.Seats
	}
	r.flightsGen++
	return snapshot(f), nil
}

// DeleteFlight drops the flight and its roster. Passengers are untouched.
func (r *Registry) DeleteFlight(number string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flightsByNum[number]; !ok {
		return fmt.Errorf("flight %q: %w", number, domain.ErrNotFound)
	}
	delete(r.flightsByNum, number)
	for i, f := range r.flights {
		if f.Number == number {
			r.flights = append(r.flights[:i], r.flights[i+1:]...)
			break
		}
	}
	r.flightsGen++
	return nil
}

func (r *Registry) FindFlight(number string) (domain.Flight, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flightsByNum[number]
	if !ok {
		return domain.Flight{}, false
	}
	return snapshot(f), true
}

// ListFlights returns every flight in insertion order with the generation
// the listing was taken at.
func (r *Registry) ListFlights() ([]domain.Flight, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		out = append(out, snapshot(f))
	}
	return out, r.flightsGen
}

// SearchFlights matches the query case-insensitively against number, both
// cities and both times. An empty query returns every flight.
func (r *Registry) SearchFlights(query string) []domain.Flight {
	q := strings.ToLower(query)

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		if q == "" || containsFold(f.Number, q) || containsFold(f.DepartureCity, q) ||
			containsFold(f.ArrivalCity, q) || containsFold(f.DepartureTime, q) || containsFold(f.ArrivalTime, q) {
			out = append(out, snapshot(f))
		}
	}
	return out
}

func (r *Registry) FlightChoices() []domain.Choice {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Choice, 0, len(r.flights))
	for _, f := range r.flights {
		out = append(out, domain.Choice{ID: f.Number, Label: f.Label()})
	}
	return out
}

// RosterSize reports how many passengers are booked on the flight.
func (r *Registry) RosterSize(number string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flightsByNum[number]
	if !ok {
		return 0, fmt.Errorf("flight %q: %w", number, domain.ErrNotFound)
	}
	return len(f.BookedPassengers), nil
}

// snapshot copies a flight so callers never share the roster slice.
func snapshot(f *domain.Flight) domain.Flight {
	out := *f
	out.BookedPassengers = append([]string{}, f.BookedPassengers...)
	return out
}

func removeFromRoster(f *domain.Flight, passengerID string) bool {
	for i, id := range f.BookedPassengers {
		if id == passengerID {
			f.BookedPassengers = append(f.BookedPassengers[:i], f.BookedPassengers[i+1:]...)
			return true
		}
	}
	return false
}
