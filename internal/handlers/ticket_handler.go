package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/middleware"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/services"
)

// TicketHandler handles ticket listing and e-ticket download
type TicketHandler struct {
	service *services.TicketService
	logger  *logrus.Logger
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(service *services.TicketService, logger *logrus.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		logger:  logger,
	}
}

// GetTickets handles GET /api/v1/tickets
func (h *TicketHandler) GetTickets(c *gin.Context) {
	tickets := h.service.Tickets(middleware.PassengerID(c))
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// GetTicket handles GET /api/v1/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, ok := h.ticketID(c)
	if !ok {
		return
	}

	ticket, err := h.service.TicketByID(ticketID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"ticket": ticket,
	})
}

// CancelTicket handles DELETE /api/v1/tickets/:id
func (h *TicketHandler) CancelTicket(c *gin.Context) {
	ticketID, ok := h.ticketID(c)
	if !ok {
		return
	}

	ticket, err := h.service.Cancel(ticketID)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotCancellable) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "This ticket can no longer be cancelled",
			})
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ticket cancelled and fare refunded to your wallet",
		"ticket":  ticket,
	})
}

// DownloadTicketPDF handles GET /api/v1/tickets/:id/pdf
func (h *TicketHandler) DownloadTicketPDF(c *gin.Context) {
	ticketID, ok := h.ticketID(c)
	if !ok {
		return
	}

	pdfBytes, filename, err := h.service.TicketPDF(ticketID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *TicketHandler) ticketID(c *gin.Context) (uuid.UUID, bool) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ticket id",
		})
		return uuid.Nil, false
	}
	return ticketID, true
}

func (h *TicketHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrBookingNotFound) || errors.Is(err, repository.ErrRouteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Ticket not found",
		})
		return
	}
	h.logger.WithError(err).Error("Ticket operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to load ticket",
	})
}
