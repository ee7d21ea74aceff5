package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var bookedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestBookingHandler_book(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newTestContext("POST", "/api/bookings", []byte(`{"passenger_id":"P1","flight_number":"AA100"}`))
	rec := &domain.BookingRecord{ID: "rec-1", Action: domain.BookingActionBooked, PassengerID: "P1", FlightNumber: "AA100", PassengerName: "Ann Lee", Route: "Boston to Denver", Timestamp: bookedAt}
	mockService.On("Book", c.Request.Context(), "P1", "AA100").Return(rec, nil)

	handler.book(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response bookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, domain.BookingActionBooked, response.Action)
	assert.Equal(t, rec.Describe(), response.Description)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_book_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no capacity", fmt.Errorf("full: %w", domain.ErrNoCapacity), http.StatusConflict},
		{"not found", fmt.Errorf("passenger: %w", domain.ErrNotFound), http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService)
			c, w := newTestContext("POST", "/api/bookings", []byte(`{"passenger_id":"P1","flight_number":"AA100"}`))
			mockService.On("Book", c.Request.Context(), "P1", "AA100").Return(nil, tc.err)

			handler.book(c)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestBookingHandler_book_MissingIDs(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)
	c, w := newTestContext("POST", "/api/bookings", []byte(`{"passenger_id":"P1"}`))

	handler.book(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Book", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newTestContext("DELETE", "/api/bookings/AA100/P1", nil)
	c.Params = gin.Params{{Key: "flight", Value: "AA100"}, {Key: "passenger", Value: "P1"}}
	mockService.On("Cancel", c.Request.Context(), "P1", "AA100").Return(nil, fmt.Errorf("no booking: %w", domain.ErrNoSuchBooking))

	handler.cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var response errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "no_such_booking", response.Kind)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_history(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newTestContext("GET", "/api/bookings/history", nil)
	records := []domain.BookingRecord{
		{ID: "rec-1", Action: domain.BookingActionBooked, PassengerID: "P1", FlightNumber: "AA100", Timestamp: bookedAt},
		{ID: "rec-2", Action: domain.BookingActionCancelled, PassengerID: "P1", FlightNumber: "AA100", Timestamp: bookedAt},
	}
	mockService.On("History", c.Request.Context()).Return(records)

	handler.history(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []bookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "rec-1", response[0].ID)
	assert.Equal(t, domain.BookingActionCancelled, response[1].Action)
	mockService.AssertExpectations(t)
}
