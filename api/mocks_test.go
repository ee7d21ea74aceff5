package api

import (
	"context"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/registry"
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/stretchr/testify/mock"
)

type MockPassengerUseCase struct {
	mock.Mock
}

func (m *MockPassengerUseCase) Add(ctx context.Context, input registry.PassengerInput) (*domain.Passenger, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerUseCase) Update(ctx context.Context, id string, upd registry.PassengerUpdate) (*domain.Passenger, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPassengerUseCase) GetByID(ctx context.Context, id string) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerUseCase) Search(ctx context.Context, query string) []domain.Passenger {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Passenger)
}

func (m *MockPassengerUseCase) Choices(ctx context.Context) []domain.Choice {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Choice)
}

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Add(ctx context.Context, input registry.FlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, number string, upd registry.FlightUpdate) (*domain.Flight, error) {
	args := m.Called(ctx, number, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockFlightUseCase) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Search(ctx context.Context, query string) ([]domain.Flight, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Choices(ctx context.Context) []domain.Choice {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Choice)
}

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Book(ctx context.Context, passengerID, flightNumber string) (*domain.BookingRecord, error) {
	args := m.Called(ctx, passengerID, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRecord), args.Error(1)
}

func (m *MockBookingUseCase) Cancel(ctx context.Context, passengerID, flightNumber string) (*domain.BookingRecord, error) {
	args := m.Called(ctx, passengerID, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRecord), args.Error(1)
}

func (m *MockBookingUseCase) History(ctx context.Context) []domain.BookingRecord {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BookingRecord)
}

func (m *MockBookingUseCase) Roster(ctx context.Context, flightNumber string) (*booking.Roster, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Roster), args.Error(1)
}
