package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/services"
)

// TrackingHandler serves simulated live-tracking positions for the map screen
type TrackingHandler struct {
	service *services.TrackingService
	logger  *logrus.Logger
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(service *services.TrackingService, logger *logrus.Logger) *TrackingHandler {
	return &TrackingHandler{
		service: service,
		logger:  logger,
	}
}

// GetPosition handles GET /api/v1/tracking/:routeId
func (h *TrackingHandler) GetPosition(c *gin.Context) {
	position, err := h.service.Position(c.Param("routeId"))
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) || errors.Is(err, repository.ErrRoutePathNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "No tracking data for this route",
			})
			return
		}
		h.logger.WithError(err).Error("Tracking lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load bus position",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"position": position,
	})
}
