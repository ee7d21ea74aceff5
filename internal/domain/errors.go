// Package domain holds the reservation records and the error kinds shared by
// every layer. Registry operations wrap one of the sentinel errors below;
// callers classify failures with errors.Is and translate them for display.
package domain

import "errors"

var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidValue  = errors.New("invalid value")
	ErrDuplicateID   = errors.New("duplicate id")
	ErrNotFound      = errors.New("not found")
	ErrNoCapacity    = errors.New("no capacity")
	ErrNoSuchBooking = errors.New("no such booking")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrMissingField, "missing_field"},
	{ErrInvalidFormat, "invalid_format"},
	{ErrInvalidValue, "invalid_value"},
	{ErrDuplicateID, "duplicate_id"},
	{ErrNotFound, "not_found"},
	{ErrNoCapacity, "no_capacity"},
	{ErrNoSuchBooking, "no_such_booking"},
}

// Kind returns the machine name of the error kind wrapped by err, or
// "internal" if err carries none of them.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "internal"
}
