package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/airreservation/internal/kafka"
)

// Sender writes notification e-mails to out; there is no SMTP relay yet.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

// Send notifies the passenger about a booking or cancellation. Other event
// types and events without an address are ignored.
func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		return nil
	}
	var subject string
	switch event.Type {
	case kafka.EventBooked:
		subject = fmt.Sprintf("Your seat on %s (%s) is booked", event.FlightNumber, event.Route)
	case kafka.EventCancelled:
		subject = fmt.Sprintf("Your booking on %s was cancelled", event.FlightNumber)
	default:
		return nil
	}
	_, err := fmt.Fprintf(s.out, "send email to %s <%s>: %s\n", event.PassengerName, event.Email, subject)
	return err
}
