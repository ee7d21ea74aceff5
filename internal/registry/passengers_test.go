package registry

import (
	"testing"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddPassenger(t *testing.T) {
	r := newTestRegistry()

	p, err := r.AddPassenger(PassengerInput{ID: " P1 ", Name: " Ann Lee ", Email: "ann@example.com", Phone: "555.123.4567"})
	require.NoError(t, err)
	assert.Equal(t, domain.Passenger{ID: "P1", Name: "Ann Lee", Email: "ann@example.com", Phone: "555.123.4567"}, p)

	found, ok := r.FindPassenger("P1")
	assert.True(t, ok)
	assert.Equal(t, p, found)
}

func TestRegistry_AddPassenger_Errors(t *testing.T) {
	r := newTestRegistry()
	mustAddPassenger(t, r, "P1")

	testCases := []struct {
		name  string
		input PassengerInput
		want  error
	}{
		{
			name:  "blank id",
			input: PassengerInput{ID: "  ", Name: "Ann", Email: "ann@example.com", Phone: "5551234"},
			want:  domain.ErrMissingField,
		},
		{
			name:  "missing phone",
			input: PassengerInput{ID: "P2", Name: "Ann", Email: "ann@example.com"},
			want:  domain.ErrMissingField,
		},
		{
			name:  "bad email",
			input: PassengerInput{ID: "P2", Name: "Ann", Email: "ann-at-example", Phone: "5551234"},
			want:  domain.ErrInvalidFormat,
		},
		{
			name:  "bad phone",
			input: PassengerInput{ID: "P2", Name: "Ann", Email: "ann@example.com", Phone: "call me"},
			want:  domain.ErrInvalidFormat,
		},
		{
			name:  "duplicate id",
			input: PassengerInput{ID: "P1", Name: "Ann", Email: "ann@example.com", Phone: "5551234"},
			want:  domain.ErrDuplicateID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.AddPassenger(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Len(t, r.SearchPassengers(""), 1)
}

func TestRegistry_UpdatePassenger(t *testing.T) {
	r := newTestRegistry()
	mustAddPassenger(t, r, "P1")

	p, err := r.UpdatePassenger("P1", PassengerUpdate{Name: strPtr("Bo Chen"), Email: strPtr(""), Phone: nil})
	require.NoError(t, err)
	assert.Equal(t, "Bo Chen", p.Name)
	assert.Equal(t, "P1@example.com", p.Email)
	assert.Equal(t, "+1 555 123456", p.Phone)

	found, _ := r.FindPassenger("P1")
	assert.Equal(t, p, found)
}

func TestRegistry_UpdatePassenger_AllOrNothing(t *testing.T) {
	r := newTestRegistry()
	orig := mustAddPassenger(t, r, "P1")

	testCases := []struct {
		name string
		upd  PassengerUpdate
	}{
		{"short name", PassengerUpdate{Name: strPtr("B"), Email: strPtr("new@example.com")}},
		{"bad email", PassengerUpdate{Name: strPtr("Bo Chen"), Email: strPtr("nope")}},
		{"bad phone", PassengerUpdate{Name: strPtr("Bo Chen"), Phone: strPtr("++")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.UpdatePassenger("P1", tc.upd)
			assert.ErrorIs(t, err, domain.ErrInvalidFormat)

			found, _ := r.FindPassenger("P1")
			assert.Equal(t, orig, found)
		})
	}
}

func TestRegistry_UpdatePassenger_NotFound(t *testing.T) {
	r := newTestRegistry()
	_, err := r.UpdatePassenger("P1", PassengerUpdate{Name: strPtr("Bo Chen")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.UpdatePassenger("P1", PassengerUpdate{Email: strPtr("not-an-email")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_DeletePassenger_ReleasesSeats(t *testing.T) {
	r := newTestRegistry()
	mustAddPassenger(t, r, "P1")
	mustAddPassenger(t, r, "P2")
	mustAddFlight(t, r, "F1", 5)
	mustAddFlight(t, r, "F2", 2)
	mustAddFlight(t, r, "F3", 2)

	for _, num := range []string{"F1", "F2"} {
		_, err := r.Book("P1", num)
		require.NoError(t, err)
	}
	_, err := r.Book("P2", "F2")
	require.NoError(t, err)
	historyBefore := r.History()

	released, err := r.DeletePassenger("P1")
	require.NoError(t, err)
	assert.Equal(t, []string{"F1", "F2"}, released)

	f1, _ := r.FindFlight("F1")
	assert.Equal(t, 5, f1.AvailableSeats)
	assert.Empty(t, f1.BookedPassengers)

	f2, _ := r.FindFlight("F2")
	assert.Equal(t, 1, f2.AvailableSeats)
	assert.Equal(t, []string{"P2"}, f2.BookedPassengers)

	f3, _ := r.FindFlight("F3")
	assert.Equal(t, 2, f3.AvailableSeats)

	_, ok := r.FindPassenger("P1")
	assert.False(t, ok)
	assert.Equal(t, historyBefore, r.History())

	_, err = r.DeletePassenger("P1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_SearchPassengers(t *testing.T) {
	r := newTestRegistry()
	_, err := r.AddPassenger(PassengerInput{ID: "P1", Name: "Ann Lee", Email: "ann@example.com", Phone: "5551234"})
	require.NoError(t, err)
	_, err = r.AddPassenger(PassengerInput{ID: "P2", Name: "Bo Chen", Email: "bo@mail.org", Phone: "+44 20 7946"})
	require.NoError(t, err)
	_, err = r.AddPassenger(PassengerInput{ID: "X3", Name: "Cy Annan", Email: "cy@mail.org", Phone: "999"})
	require.NoError(t, err)

	ids := func(ps []domain.Passenger) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"P1", "P2", "X3"}, ids(r.SearchPassengers("")))
	assert.Equal(t, []string{"P1", "X3"}, ids(r.SearchPassengers("ANN")))
	assert.Equal(t, []string{"P2", "X3"}, ids(r.SearchPassengers("mail.org")))
	assert.Equal(t, []string{"P2"}, ids(r.SearchPassengers("7946")))
	assert.Equal(t, []string{"X3"}, ids(r.SearchPassengers("x3")))
	assert.Empty(t, r.SearchPassengers("zzz"))
}

func TestRegistry_PassengerChoices(t *testing.T) {
	r := newTestRegistry()
	mustAddPassenger(t, r, "P1")
	mustAddPassenger(t, r, "P2")

	assert.Equal(t, []domain.Choice{
		{ID: "P1", Label: "P1 | Passenger P1"},
		{ID: "P2", Label: "P2 | Passenger P2"},
	}, r.PassengerChoices())
}
