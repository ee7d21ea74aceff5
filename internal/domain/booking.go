package domain

import (
	"fmt"
	"time"
)

type BookingAction string

const (
	BookingActionBooked    BookingAction = "BOOKED"
	BookingActionCancelled BookingAction = "CANCELLED"
)

// BookingRecord is one entry of the audit log. Passenger name and route are
// captured when the record is written so history stays readable after the
// passenger or flight is gone.
type BookingRecord struct {
	ID            string        `json:"id"`
	Action        BookingAction `json:"action"`
	PassengerID   string        `json:"passenger_id"`
	FlightNumber  string        `json:"flight_number"`
	PassengerName string        `json:"passenger_name"`
	Route         string        `json:"route"`
	Timestamp     time.Time     `json:"timestamp"`
}

// Describe renders the record as a history line.
func (r BookingRecord) Describe() string {
	at := r.Timestamp.Format(time.RFC1123)
	switch r.Action {
	case BookingActionBooked:
		return fmt.Sprintf("BOOKED: %s on %s (%s) at %s", r.PassengerName, r.FlightNumber, r.Route, at)
	case BookingActionCancelled:
		return fmt.Sprintf("CANCELLED: %s from %s at %s", r.PassengerName, r.FlightNumber, at)
	default:
		return fmt.Sprintf("%s: %s / %s at %s", r.Action, r.PassengerID, r.FlightNumber, at)
	}
}
