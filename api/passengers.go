package api

import (
	"net/http"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/registry"
	"github.com/Domenick1991/airreservation/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service passengers.PassengerUseCase
}

type createPassengerRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type updatePassengerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type passengerResponse struct {
	domain.Passenger
	Label string `json:"label"`
}

func NewPassengerHandler(service passengers.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.search)
	router.GET("/choices", h.choices)
	router.GET("/:id", h.get)
	router.PATCH("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req createPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.service.Add(c.Request.Context(), registry.PassengerInput{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPassengerResponse(*p))
}

func (h *PassengerHandler) search(c *gin.Context) {
	list := h.service.Search(c.Request.Context(), c.Query("q"))
	resp := make([]passengerResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, toPassengerResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PassengerHandler) choices(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Choices(c.Request.Context()))
}

func (h *PassengerHandler) get(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(*p))
}

func (h *PassengerHandler) update(c *gin.Context) {
	var req updatePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), registry.PassengerUpdate{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(*p))
}

func (h *PassengerHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toPassengerResponse(p domain.Passenger) passengerResponse {
	return passengerResponse{Passenger: p, Label: p.Label()}
}
