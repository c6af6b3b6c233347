package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/services"
)

// SearchHandler handles HTTP requests for route search
type SearchHandler struct {
	service *services.SearchService
	logger  *logrus.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service *services.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		logger:  logger,
	}
}

// SearchRoutes handles POST /api/v1/search
func (h *SearchHandler) SearchRoutes(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid search request body")
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request format",
			"error":   err.Error(),
		})
		return
	}

	response, err := h.service.SearchRoutes(&req)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}

		h.logger.WithError(err).Error("Search failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to search for buses. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPopularRoutes handles GET /api/v1/search/popular
func (h *SearchHandler) GetPopularRoutes(c *gin.Context) {
	limit := queryInt(c, "limit", 10)

	routes := h.service.PopularRoutes(limit)
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"routes": routes,
		"count":  len(routes),
	})
}

// GetPlaceAutocomplete handles GET /api/v1/search/autocomplete
func (h *SearchHandler) GetPlaceAutocomplete(c *gin.Context) {
	searchTerm := c.Query("q")
	if searchTerm == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Search term 'q' is required",
		})
		return
	}

	limit := queryInt(c, "limit", 10)

	suggestions := h.service.PlaceAutocomplete(searchTerm, limit)
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

// queryInt reads a positive integer query parameter with a default
func queryInt(c *gin.Context, name string, defaultValue int) int {
	value := defaultValue
	if raw := c.Query(name); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			value = parsed
		}
	}
	return value
}
