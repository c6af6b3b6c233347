package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/middleware"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/services"
)

// BookingHandler handles seat-selection sessions and booking confirmation
type BookingHandler struct {
	service *services.BookingService
	logger  *logrus.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service *services.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		logger:  logger,
	}
}

// StartSession handles POST /api/v1/bookings/sessions
func (h *BookingHandler) StartSession(c *gin.Context) {
	var req models.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request format",
			"error":   err.Error(),
		})
		return
	}

	view, err := h.service.StartSession(middleware.PassengerID(c), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"session": view,
	})
}

// GetSession handles GET /api/v1/bookings/sessions/:id
func (h *BookingHandler) GetSession(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, err := h.service.GetSession(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"session": view,
	})
}

// ToggleSeat handles POST /api/v1/bookings/sessions/:id/seats/:seatId
func (h *BookingHandler) ToggleSeat(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, changed, err := h.service.ToggleSeat(sessionID, c.Param("seatId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	// An unchanged selection is a soft condition (blocked seat or capacity
	// reached), surfaced for the UI hint rather than as an error.
	message := "Seat selection updated"
	if !changed {
		message = "Seat could not be toggled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"changed": changed,
		"message": message,
		"session": view,
	})
}

// Confirm handles POST /api/v1/bookings/sessions/:id/confirm
func (h *BookingHandler) Confirm(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	booking, err := h.service.Confirm(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Booking confirmed",
		"booking": booking,
	})
}

// Abandon handles DELETE /api/v1/bookings/sessions/:id
func (h *BookingHandler) Abandon(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.service.Abandon(sessionID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session discarded",
	})
}

func (h *BookingHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid session id",
		})
		return uuid.Nil, false
	}
	return sessionID, true
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, repository.ErrRouteNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrSelectionIncomplete):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Select one seat per passenger before confirming",
		})
	case errors.Is(err, repository.ErrInsufficientBalance):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"status":  "error",
			"message": "Insufficient wallet balance. Please top up and try again.",
		})
	default:
		h.logger.WithError(err).Error("Booking operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Something went wrong. Please try again later.",
		})
	}
}
