package api

import (
	"net/http"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookingRequest struct {
	PassengerID  string `json:"passenger_id" binding:"required"`
	FlightNumber string `json:"flight_number" binding:"required"`
}

type bookingResponse struct {
	domain.BookingRecord
	Description string `json:"description"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.book)
	router.DELETE("/:flight/:passenger", h.cancel)
	router.GET("/history", h.history)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	rec, err := h.service.Book(c.Request.Context(), req.PassengerID, req.FlightNumber)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(*rec))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	rec, err := h.service.Cancel(c.Request.Context(), c.Param("passenger"), c.Param("flight"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(*rec))
}

func (h *BookingHandler) history(c *gin.Context) {
	records := h.service.History(c.Request.Context())
	resp := make([]bookingResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toBookingResponse(rec))
	}
	c.JSON(http.StatusOK, resp)
}

func toBookingResponse(rec domain.BookingRecord) bookingResponse {
	return bookingResponse{BookingRecord: rec, Description: rec.Describe()}
}
