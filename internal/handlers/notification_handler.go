package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
)

// NotificationHandler serves the notification screen
type NotificationHandler struct {
	repo   *repository.NotificationRepository
	logger *logrus.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(repo *repository.NotificationRepository, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{
		repo:   repo,
		logger: logger,
	}
}

// GetNotifications handles GET /api/v1/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	notifications := h.repo.List()
	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"notifications": notifications,
		"unread_count":  h.repo.UnreadCount(),
		"count":         len(notifications),
	})
}

// MarkRead handles POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notification, err := h.repo.MarkRead(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Notification not found",
			})
			return
		}
		h.logger.WithError(err).Error("Failed to mark notification read")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update notification",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"notification": notification,
	})
}
