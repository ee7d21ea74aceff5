package api

import (
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/Domenick1991/airreservation/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

// NewRouter mounts every handler under /api.
func NewRouter(passengerSvc passengers.PassengerUseCase, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	group := router.Group("/api")
	NewPassengerHandler(passengerSvc).Register(group.Group("/passengers"))
	NewFlightHandler(flightSvc, bookingSvc).Register(group.Group("/flights"))
	NewBookingHandler(bookingSvc).Register(group.Group("/bookings"))

	return router
}
