package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/registry"
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service  flights.FlightUseCase
	bookings booking.BookingUseCase
}

// Seats are decoded as json.Number so that fractional or oversized values
// reach registry.ParseSeats instead of failing JSON binding.
type createFlightRequest struct {
	Number        string      `json:"number"`
	DepartureCity string      `json:"departure_city"`
	ArrivalCity   string      `json:"arrival_city"`
	DepartureTime string      `json:"departure_time"`
	ArrivalTime   string      `json:"arrival_time"`
	Seats         json.Number `json:"seats"`
}

type updateFlightRequest struct {
	DepartureCity *string      `json:"departure_city"`
	ArrivalCity   *string      `json:"arrival_city"`
	DepartureTime *string      `json:"departure_time"`
	ArrivalTime   *string      `json:"arrival_time"`
	Seats         *json.Number `json:"seats"`
}

type flightResponse struct {
	domain.Flight
	Label   string `json:"label"`
	Summary string `json:"summary"`
}

func NewFlightHandler(service flights.FlightUseCase, bookings booking.BookingUseCase) *FlightHandler {
	return &FlightHandler{service: service, bookings: bookings}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.search)
	router.GET("/choices", h.choices)
	router.GET("/:number", h.get)
	router.GET("/:number/roster", h.roster)
	router.PATCH("/:number", h.update)
	router.DELETE("/:number", h.delete)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Seats == "" {
		writeError(c, fmt.Errorf("seats is required: %w", domain.ErrMissingField))
		return
	}
	seats, err := registry.ParseSeats(req.Seats.String())
	if err != nil {
		writeError(c, err)
		return
	}

	f, err := h.service.Add(c.Request.Context(), registry.FlightInput{
		Number:        req.Number,
		DepartureCity: req.DepartureCity,
		ArrivalCity:   req.ArrivalCity,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Seats:         seats,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(*f))
}

func (h *FlightHandler) search(c *gin.Context) {
	list, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]flightResponse, 0, len(list))
	for _, f := range list {
		resp = append(resp, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) choices(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Choices(c.Request.Context()))
}

func (h *FlightHandler) get(c *gin.Context) {
	f, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*f))
}

func (h *FlightHandler) roster(c *gin.Context) {
	roster, err := h.bookings.Roster(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

func (h *FlightHandler) update(c *gin.Context) {
	var req updateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	upd := registry.FlightUpdate{
		DepartureCity: req.DepartureCity,
		ArrivalCity:   req.ArrivalCity,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}
	if req.Seats != nil && *req.Seats != "" {
		seats, err := registry.ParseSeats(req.Seats.String())
		if err != nil {
			writeError(c, err)
			return
		}
		upd.Seats = &seats
	}

	f, err := h.service.Update(c.Request.Context(), c.Param("number"), upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*f))
}

func (h *FlightHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("number")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toFlightResponse(f domain.Flight) flightResponse {
	return flightResponse{Flight: f, Label: f.Label(), Summary: f.Summary()}
}
