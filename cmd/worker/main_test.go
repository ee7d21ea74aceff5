package main

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/airreservation/internal/kafka"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventRepository) Append(ctx context.Context, event kafka.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, event kafka.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestHandler_ArchivesAndNotifies(t *testing.T) {
	archive := &MockEventRepository{}
	notifier := &MockNotifier{}
	handle := newHandler(archive, notifier)
	ctx := context.Background()

	msg := kafkaGo.Message{Value: []byte(`{"type":"booking_booked","passenger_id":"P1","flight_number":"AA100","available_seats":3,"occurred_at":"2026-03-14T09:30:00Z"}`)}
	archive.On("Append", ctx, mock.MatchedBy(func(e kafka.BookingEvent) bool { return e.PassengerID == "P1" })).Return(nil).Once()
	notifier.On("Send", ctx, mock.Anything).Return(errors.New("smtp down")).Once()

	assert.NoError(t, handle(ctx, msg))
	archive.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestHandler_ArchiveFailureStops(t *testing.T) {
	archive := &MockEventRepository{}
	notifier := &MockNotifier{}
	handle := newHandler(archive, notifier)
	ctx := context.Background()

	archive.On("Append", ctx, mock.Anything).Return(errors.New("db down")).Once()

	err := handle(ctx, kafkaGo.Message{Value: []byte(`{"type":"booking_cancelled","passenger_id":"P1"}`)})
	assert.Error(t, err)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandler_SkipsMalformed(t *testing.T) {
	notifier := &MockNotifier{}
	handle := newHandler(nil, notifier)

	assert.NoError(t, handle(context.Background(), kafkaGo.Message{Value: []byte("{")}))
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandler_ArchiveOnly(t *testing.T) {
	archive := &MockEventRepository{}
	handle := newHandler(archive, nil)
	ctx := context.Background()

	archive.On("Append", ctx, mock.Anything).Return(nil).Once()

	assert.NoError(t, handle(ctx, kafkaGo.Message{Value: []byte(`{"type":"booking_booked","record_id":"rec-1","passenger_id":"P1"}`)}))
	archive.AssertExpectations(t)
}

func TestHandler_NotifyOnly(t *testing.T) {
	notifier := &MockNotifier{}
	handle := newHandler(nil, notifier)
	ctx := context.Background()

	notifier.On("Send", ctx, mock.MatchedBy(func(e kafka.BookingEvent) bool { return e.RecordID == "rec-1" })).Return(nil).Once()

	assert.NoError(t, handle(ctx, kafkaGo.Message{Value: []byte(`{"type":"booking_booked","record_id":"rec-1","passenger_id":"P1"}`)}))
	notifier.AssertExpectations(t)
}
