// Package registry owns every passenger and flight record and is the only
// place where booking rosters and seat counts change.
//
// A Registry is safe for concurrent use: each operation runs under one
// mutex, so the check-then-act sequences in Book and Cancel cannot
// interleave. Nothing in the registry blocks, retries or logs; every
// failure is returned as an error wrapping one of the domain kinds.
package registry

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/google/uuid"
)

type Registry struct {
	mu sync.Mutex

	// insertion order is kept in the slices, the maps index the same records.
	passengers     []*domain.Passenger
	passengersByID map[string]*domain.Passenger
	flights        []*domain.Flight
	flightsByNum   map[string]*domain.Flight

	history []domain.BookingRecord

	// flightsGen moves on every change visible in the flight listing.
	flightsGen uint64

	now   func() time.Time
	newID func() string
}

type Option func(*Registry)

// WithClock replaces time.Now for audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithIDGenerator replaces the uuid generator used for audit record IDs.
func WithIDGenerator(newID func() string) Option {
	return func(r *Registry) {
		r.newID = newID
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		passengersByID: make(map[string]*domain.Passenger),
		flightsByNum:   make(map[string]*domain.Flight),
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ParseSeats converts a seat count typed by a user. Anything that is not a
// base-10 integer is ErrInvalidValue; range checks are left to the caller.
func ParseSeats(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("seats %q is not a number: %w", text, domain.ErrInvalidValue)
	}
	return n, nil
}

// History returns a copy of the audit log, oldest first.
func (r *Registry) History() []domain.BookingRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.BookingRecord, len(r.history))
	copy(out, r.history)
	return out
}

// FlightsGeneration reports the current flight listing generation. Two equal
// values mean no flight, seat count or roster changed in between.
func (r *Registry) FlightsGeneration() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.flightsGen
}

func containsFold(field, query string) bool {
	return strings.Contains(strings.ToLower(field), query)
}

// optional returns the trimmed value of an update field and whether it
// should be applied. nil and blank both mean "leave unchanged".
func optional(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	s := strings.TrimSpace(*v)
	return s, s != ""
}
