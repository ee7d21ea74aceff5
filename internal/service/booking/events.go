package booking

import (
	"context"

	"github.com/Domenick1991/airreservation/internal/kafka"
)

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// Cache is the part of the flight cache that roster changes must touch.
type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

// Events publishes booking events to the events topic and, when set, to the
// notifications topic. A nil *Events publishes nothing.
type Events struct {
	producer           Producer
	topic              string
	notificationsTopic string
	retries            int
}

type EventsOption func(*Events)

func WithNotificationsTopic(topic string) EventsOption {
	return func(e *Events) {
		e.notificationsTopic = topic
	}
}

func WithRetries(n int) EventsOption {
	return func(e *Events) {
		e.retries = n
	}
}

func NewEvents(producer Producer, topic string, opts ...EventsOption) *Events {
	e := &Events{
		producer: producer,
		topic:    topic,
		retries:  1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Publish keys messages by flight number so one flight's events stay ordered.
func (e *Events) Publish(ctx context.Context, event kafka.BookingEvent) error {
	if e == nil || e.producer == nil || e.topic == "" {
		return nil
	}
	key := event.FlightNumber
	if key == "" {
		key = event.PassengerID
	}
	if err := e.producer.PublishWithRetry(ctx, e.topic, key, event, e.retries); err != nil {
		return err
	}
	if e.notificationsTopic != "" {
		return e.producer.PublishWithRetry(ctx, e.notificationsTopic, key, event, e.retries)
	}
	return nil
}
