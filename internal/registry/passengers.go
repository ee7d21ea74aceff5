package registry

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/validate"
)

const minNameLength = 2

type PassengerInput struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// PassengerUpdate carries the fields to change; nil or blank fields are kept.
type PassengerUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

func (r *Registry) AddPassenger(in PassengerInput) (domain.Passenger, error) {
	p := domain.Passenger{
		ID:    strings.TrimSpace(in.ID),
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}
	if p.ID == "" || p.Name == "" || p.Email == "" || p.Phone == "" {
		return domain.Passenger{}, fmt.Errorf("id, name, email and phone are required: %w", domain.ErrMissingField)
	}
	if !validate.IsValidEmail(p.Email) {
		return domain.Passenger{}, fmt.Errorf("email %q: %w", p.Email, domain.ErrInvalidFormat)
	}
	if !validate.IsValidPhone(p.Phone) {
		return domain.Passenger{}, fmt.Errorf("phone %q: %w", p.Phone, domain.ErrInvalidFormat)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.passengersByID[p.ID]; ok {
		return domain.Passenger{}, fmt.Errorf("passenger %q already exists: %w", p.ID, domain.ErrDuplicateID)
	}
	stored := p
	r.passengers = append(r.passengers, &stored)
	r.passengersByID[p.ID] = &stored
	return p, nil
}

// UpdatePassenger validates every provided field before applying any of them.
func (r *Registry) UpdatePassenger(id string, upd PassengerUpdate) (domain.Passenger, error) {
	name, setName := optional(upd.Name)
	email, setEmail := optional(upd.Email)
	phone, setPhone := optional(upd.Phone)

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passengersByID[id]
	if !ok {
		return domain.Passenger{}, fmt.Errorf("passenger %q: %w", id, domain.ErrNotFound)
	}

	if setName && utf8.RuneCountInString(name) < minNameLength {
		return domain.Passenger{}, fmt.Errorf("name must be at least %d characters: %w", minNameLength, domain.ErrInvalidFormat)
	}
	if setEmail && !validate.IsValidEmail(email) {
		return domain.Passenger{}, fmt.Errorf("email %q: %w", email, domain.ErrInvalidFormat)
	}
	if setPhone && !validate.IsValidPhone(phone) {
		return domain.Passenger{}, fmt.Errorf("phone %q: %w", phone, domain.ErrInvalidFormat)
	}

	if setName {
		p.Name = name
	}
	if setEmail {
		p.Email = email
	}
	if setPhone {
		p.Phone = phone
	}
	return *p, nil
}

// DeletePassenger removes the passenger and releases their seat on every
// flight they were booked on. It returns the numbers of those flights.
// Releases made here do not go to the audit log.
func (r *Registry) DeletePassenger(id string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.passengersByID[id]; !ok {
		return nil, fmt.Errorf("passenger %q: %w", id, domain.ErrNotFound)
	}

	var released []string
	for _, f := range r.flights {
		if removeFromRoster(f, id) {
			f.AvailableSeats++
			released = append(released, f.Number)
		}
	}
	if len(released) > 0 {
		r.flightsGen++
	}

	delete(r.passengersByID, id)
	for i, p := range r.passengers {
		if p.ID == id {
			r.passengers = append(r.passengers[:i], r.passengers[i+1:]...)
			break
		}
	}
	return released, nil
}

func (r *Registry) FindPassenger(id string) (domain.Passenger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passengersByID[id]
	if !ok {
		return domain.Passenger{}, false
	}
	return *p, true
}

// SearchPassengers matches the query case-insensitively against id, name,
// email and phone. An empty query returns every passenger.
func (r *Registry) SearchPassengers(query string) []domain.Passenger {
	q := strings.ToLower(query)

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Passenger, 0, len(r.passengers))
	for _, p := range r.passengers {
		if q == "" || containsFold(p.ID, q) || containsFold(p.Name, q) ||
			containsFold(p.Email, q) || containsFold(p.Phone, q) {
			out = append(out, *p)
		}
	}
	return out
}

func (r *Registry) PassengerChoices() []domain.Choice {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Choice, 0, len(r.passengers))
	for _, p := range r.passengers {
		out = append(out, domain.Choice{ID: p.ID, Label: p.Label()})
	}
	return out
}
