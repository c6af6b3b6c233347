package models

import "time"

// NotificationCategory groups notifications for the notification screen tabs
type NotificationCategory string

const (
	NotificationBooking   NotificationCategory = "booking"
	NotificationPromotion NotificationCategory = "promotion"
	NotificationService   NotificationCategory = "service"
)

// Notification represents one entry on the passenger's notification screen
type Notification struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Body      string               `json:"body"`
	Category  NotificationCategory `json:"category"`
	Read      bool                 `json:"read"`
	CreatedAt time.Time            `json:"created_at"`
}
