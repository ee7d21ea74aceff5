package domain

import "fmt"

type Flight struct {
	Number           string   `json:"number"`
	DepartureCity    string   `json:"departure_city"`
	ArrivalCity      string   `json:"arrival_city"`
	DepartureTime    string   `json:"departure_time"`
	ArrivalTime      string   `json:"arrival_time"`
	AvailableSeats   int      `json:"available_seats"`
	BookedPassengers []string `json:"booked_passengers"`
}

// Route is "dep to arr", shared by labels and history lines.
func (f Flight) Route() string {
	return f.DepartureCity + " to " + f.ArrivalCity
}

// Label is the short form used in selection lists: "number | dep to arr".
func (f Flight) Label() string {
	return f.Number + " | " + f.Route()
}

// Summary renders the listing line:
// "AA100 | Boston (08:00) to Denver (11:30) | Seats: 4".
func (f Flight) Summary() string {
	return fmt.Sprintf("%s | %s (%s) to %s (%s) | Seats: %d",
		f.Number, f.DepartureCity, f.DepartureTime, f.ArrivalCity, f.ArrivalTime, f.AvailableSeats)
}

func (f Flight) HasPassenger(passengerID string) bool {
	for _, id := range f.BookedPassengers {
		if id == passengerID {
			return true
		}
	}
	return false
}

// Choice is an entry of a selection list. ID is what callers send back;
// Label is display only and is never parsed.
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
