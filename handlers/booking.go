package handlers

import (
	"net/http"

	"locallink/services/booking"
	"locallink/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateBookingHandler serves POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var input booking.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), principal, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateStatusHandler serves PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.UpdateStatus(c.Request.Context(), principal, c.Param("id"), input.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBookingHandler serves GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	b, err := h.Svc.GetBooking(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// MyBookingsHandler serves GET /api/bookings/my-bookings.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	bookings, err := h.Svc.MyBookings(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ProviderBookingsHandler serves GET /api/bookings/provider-bookings.
func (h *BookingHandler) ProviderBookingsHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	bookings, err := h.Svc.ProviderBookings(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
